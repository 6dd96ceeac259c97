package services

import (
	"adboard/internal/board/adapters/validation"
	"adboard/internal/board/ports/services"
)

// ServiceFactory создает инфраструктурные сервисы доски объявлений.
type ServiceFactory struct {
	validator services.SchemaValidator
}

// NewServiceFactory создает фабрику; валидатор хэширует пароли тем же сервисом.
func NewServiceFactory(bcryptCost int) *ServiceFactory {
	return &ServiceFactory{
		validator: validation.New(NewBcrypt(bcryptCost)),
	}
}

// Validator возвращает валидатор тел запросов.
func (f *ServiceFactory) Validator() services.SchemaValidator {
	return f.validator
}
