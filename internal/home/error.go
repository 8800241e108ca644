package home

import "errors"

var (
	ErrFailedLoadVisit = errors.New("failed to load home visit flag")
	ErrFailedSaveVisit = errors.New("failed to save home visit flag")
)
