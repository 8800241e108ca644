package payment

import "errors"

var (
	ErrDeclined      = errors.New("payment declined")
	ErrTimeout       = errors.New("payment gateway timed out")
	ErrInvalidMethod = errors.New("unsupported payment method")
	ErrInvalidAmount = errors.New("payment amount must be positive")
)
