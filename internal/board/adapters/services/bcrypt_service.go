// Package services содержит реализации инфраструктурных сервисов.
package services

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"adboard/internal/board/domain/services"
	svc "adboard/internal/board/ports/services"
)

const (
	errMsgFailedToGenerateHash = "failed to generate password hash"
	errMsgPasswordTooShort     = "password is too short"
)

// ServiceBcrypt хэширует пароли bcrypt.
type ServiceBcrypt struct {
	cost int
}

// NewBcrypt создает сервис с заданной стоимостью; значения вне
// допустимого диапазона заменяются стоимостью по умолчанию.
func NewBcrypt(cost int) svc.PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &ServiceBcrypt{cost: cost}
}

// Hash возвращает bcrypt-хэш пароля.
func (s *ServiceBcrypt) Hash(_ context.Context, password string) (string, error) {
	if utf8.RuneCountInString(password) <= services.ShortPasswordLength {
		return "", fmt.Errorf("%s: %w", errMsgPasswordTooShort, services.ErrInvalidPassword)
	}

	if len(password) > services.MaxPasswordBytes {
		return "", services.ErrPasswordTooLong
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", services.ErrPasswordTooLong
		}
		return "", fmt.Errorf("%s: %w: %w", errMsgFailedToGenerateHash, services.ErrHashingFailed, err)
	}

	return string(hashedBytes), nil
}
