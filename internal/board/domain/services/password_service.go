// Package services содержит доменные правила для паролей.
package services

import "errors"

// Ошибки работы с паролями.
var (
	ErrHashingFailed   = errors.New("failed to hash password")
	ErrInvalidPassword = errors.New("invalid password")
	ErrPasswordTooLong = errors.New("password exceeds hashing input limit")
)

// Пароли длиной не более ShortPasswordLength символов отклоняются.
const ShortPasswordLength = 8

// MaxPasswordBytes - предел входа bcrypt.
const MaxPasswordBytes = 72
