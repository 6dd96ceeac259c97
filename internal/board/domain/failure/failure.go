// Package failure описывает доменные ошибки, которые граница HTTP
// превращает в ответ {"status": "error", "message": ...}.
package failure

import (
	"errors"
	"fmt"
)

// Kind - вид доменной ошибки.
type Kind uint8

// Виды доменных ошибок.
const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindConflict
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindPersistence:
		return "persistence"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Violation - нарушение правила для одного поля.
type Violation struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// Типы нарушений.
const (
	TypeMissing   = "value_error.missing"
	TypeString    = "type_error.str"
	TypeObject    = "type_error.dict"
	TypeValue     = "value_error"
	TypeMinLength = "value_error.any_str.min_length"
	TypeMaxLength = "value_error.any_str.max_length"
)

// RootLoc - расположение нарушения, относящегося ко всему телу запроса.
const RootLoc = "__root__"

// Error - доменная ошибка: либо текстовое сообщение, либо список нарушений.
type Error struct {
	Kind       Kind
	Message    string
	Violations []Violation
	cause      error
}

func (e *Error) Error() string {
	if e.Kind == KindValidation {
		return fmt.Sprintf("%s: %d violation(s)", e.Kind, len(e.Violations))
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Payload возвращает значение поля message ответа.
func (e *Error) Payload() any {
	if e.Kind == KindValidation {
		return e.Violations
	}
	return e.Message
}

// Validation создает ошибку валидации со списком нарушений.
func Validation(violations ...Violation) *Error {
	return &Error{Kind: KindValidation, Violations: violations}
}

// NotFound создает ошибку отсутствующего ресурса.
func NotFound(message string, cause error) *Error {
	return &Error{Kind: KindNotFound, Message: message, cause: cause}
}

// Conflict создает ошибку нарушения уникальности.
func Conflict(message string, cause error) *Error {
	return &Error{Kind: KindConflict, Message: message, cause: cause}
}

// Persistence создает ошибку отказа хранилища принять запись.
func Persistence(message string, cause error) *Error {
	return &Error{Kind: KindPersistence, Message: message, cause: cause}
}

// As извлекает доменную ошибку из цепочки.
func As(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
