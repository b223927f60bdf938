package repository

import "errors"

// ErrNotFound is returned when a referenced entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidArgument is returned for malformed or missing client input.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrSlotFull is returned when a slot has no remaining capacity. It is an
// expected business outcome, not a system fault.
var ErrSlotFull = errors.New("slot is full")

// ErrTxFailed is returned when an atomic unit could not complete. The
// underlying storage error is logged, never surfaced to the caller.
var ErrTxFailed = errors.New("transaction failed")
