package checkout

import "errors"

var (
	// -- Flow --
	ErrNothingSelected = errors.New("select at least one cart item to check out")
	ErrNoSession       = errors.New("checkout has not been started")
	ErrWrongStep       = errors.New("checkout is not at the required step")

	// -- Address --
	ErrAddressNotFound = errors.New("address not found")
	ErrNoAddress       = errors.New("no delivery address selected")

	// -- Storage Failures --
	ErrFailedLoadSession = errors.New("failed to load checkout session")
	ErrFailedSaveSession = errors.New("failed to save checkout session")
)
