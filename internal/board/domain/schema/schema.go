// Package schema описывает входные данные операций создания.
package schema

import "encoding/json"

// Имена полей тел запросов.
const (
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldHeadline    = "headline"
	FieldDescription = "description"
)

// Payload - сырое JSON-тело запроса по именам полей.
type Payload map[string]json.RawMessage

// UserInput - проверенные данные нового пользователя; пароль уже захэширован.
type UserInput struct {
	Username     string
	PasswordHash string
}

// AdvertisementInput - проверенные данные нового объявления.
type AdvertisementInput struct {
	Headline    string
	Description *string
}
