package delivery

import "errors"

var (
	ErrInvalidPincode    = errors.New("please enter a valid 6-digit pincode")
	ErrFailedSavePincode = errors.New("failed to save pincode")
)
