package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback int
		want     int
	}{
		{"empty uses default", "", 10, 10},
		{"valid value", "25", 10, 25},
		{"garbage uses default", "abc", 10, 10},
		{"zero uses default", "0", 10, 10},
		{"negative uses default", "-5", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseInt(tt.value, tt.fallback))
		})
	}
}
