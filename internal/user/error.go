package user

import "errors"

var (
	ErrNotLoggedIn    = errors.New("not logged in")
	ErrFailedLoadUser = errors.New("failed to load user")
	ErrFailedSaveUser = errors.New("failed to save user")
)
