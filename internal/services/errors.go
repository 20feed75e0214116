package services

import "errors"

// ErrInvalidID is returned when a path identifier is not a valid ObjectID hex.
var ErrInvalidID = errors.New("invalid id format")

// ErrNotSettled is returned when a payslip is requested for a payment that is
// still pending.
var ErrNotSettled = errors.New("payment is not settled")
