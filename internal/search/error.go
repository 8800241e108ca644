package search

import "errors"

var (
	ErrEmptyTerm        = errors.New("search term is empty")
	ErrFailedLoadRecent = errors.New("failed to load recent searches")
	ErrFailedSaveRecent = errors.New("failed to save recent searches")
)
