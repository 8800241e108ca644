package catalog

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrUnknownSort     = errors.New("unknown sort key")
)
