package compare

import "errors"

var (
	ErrCompareFull       = errors.New("at most 4 products can be compared")
	ErrProductNotFound   = errors.New("product not found")
	ErrFailedLoadCompare = errors.New("failed to load comparison list")
	ErrFailedSaveCompare = errors.New("failed to save comparison list")
)
