// Package services определяет порты инфраструктурных сервисов.
package services

import "context"

// PasswordService превращает пароль в хэш для хранения.
type PasswordService interface {
	Hash(ctx context.Context, password string) (string, error)
}
