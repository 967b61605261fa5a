package errors

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")

	ErrResetTokenNotFound = errors.New("reset token not found")
)
