package entities

import "errors"

// Ошибки домена пользователя.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)

// UsernameMaxLength - максимальная длина имени пользователя в символах.
const UsernameMaxLength = 120

// User представляет владельца объявлений.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}

// UserSummary - публичная проекция пользователя.
type UserSummary struct {
	Username       string `json:"username"`
	Advertisements int    `json:"advertisements"`
}
