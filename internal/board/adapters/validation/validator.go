// Package validation проверяет тела запросов по декларативным схемам
// на базе go-playground/validator.
package validation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"adboard/internal/board/domain/failure"
	"adboard/internal/board/domain/schema"
	pwd "adboard/internal/board/domain/services"
	"adboard/internal/board/ports/services"
	"adboard/pkg/logger"
)

const (
	msgFieldRequired   = "field required"
	msgStringExpected  = "str type expected"
	msgPasswordShort   = "password too short"
	msgPasswordLong    = "password too long"
	msgHeadlineTooPoor = "Describe your advertisement headline a bit better"
	msgMinLength       = "ensure this value has at least %s characters"
	msgMaxLength       = "ensure this value has at most %s characters"
	msgRuleFailed      = "failed on the %s rule"

	errCtxHashPassword = "failed to hash password"
	errCtxSchema       = "invalid schema definition"
)

// Сообщения для правил, у которых есть собственный текст.
var ruleMessages = map[string]string{
	schema.FieldPassword + ".gt": msgPasswordShort,
	schema.FieldHeadline + ".gt": msgHeadlineTooPoor,
}

type userSchema struct {
	Username string `json:"username" validate:"min=1,max=120"`
	Password string `json:"password" validate:"gt=8"`
}

type advertisementSchema struct {
	Headline    string `json:"headline" validate:"gt=10,max=60"`
	Description string `json:"description" validate:"max=500"`
}

// Validator реализует services.SchemaValidator.
type Validator struct {
	validate  *validator.Validate
	passwords services.PasswordService
}

// New создает валидатор; passwords хэширует пароль прошедшего проверку пользователя.
func New(passwords services.PasswordService) services.SchemaValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v, passwords: passwords}
}

// ValidateUser проверяет тело создания пользователя и заменяет пароль его хэшем.
func (v *Validator) ValidateUser(ctx context.Context, payload schema.Payload) (*schema.UserInput, error) {
	log := logger.Log(ctx).With(zap.String("schema", "user"))

	if payload == nil {
		return nil, failure.Validation(notAnObject())
	}

	fields := newFieldSet(schema.FieldUsername, schema.FieldPassword)
	username, _ := fields.readString(payload, schema.FieldUsername, true)
	password, _ := fields.readString(payload, schema.FieldPassword, true)

	if err := fields.apply(v.validate, &userSchema{Username: username, Password: password}); err != nil {
		return nil, err
	}
	if fields.ok(schema.FieldPassword) && len(password) > pwd.MaxPasswordBytes {
		fields.add(schema.FieldPassword, failure.Violation{
			Loc: []string{schema.FieldPassword}, Msg: msgPasswordLong, Type: failure.TypeValue,
		})
	}
	if violations := fields.violations(); len(violations) > 0 {
		log.Debug(ctx, "user payload rejected", zap.Int("violations", len(violations)))
		return nil, failure.Validation(violations...)
	}

	hash, err := v.passwords.Hash(ctx, password)
	if err != nil {
		switch {
		case errors.Is(err, pwd.ErrPasswordTooLong):
			return nil, failure.Validation(failure.Violation{
				Loc: []string{schema.FieldPassword}, Msg: msgPasswordLong, Type: failure.TypeValue,
			})
		case errors.Is(err, pwd.ErrInvalidPassword):
			return nil, failure.Validation(failure.Violation{
				Loc: []string{schema.FieldPassword}, Msg: msgPasswordShort, Type: failure.TypeValue,
			})
		}
		log.Error(ctx, errCtxHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashPassword, err)
	}

	return &schema.UserInput{Username: username, PasswordHash: hash}, nil
}

// ValidateAdvertisement проверяет тело создания объявления.
// Отсутствующее или null описание не попадает в результат.
func (v *Validator) ValidateAdvertisement(ctx context.Context, payload schema.Payload) (*schema.AdvertisementInput, error) {
	log := logger.Log(ctx).With(zap.String("schema", "advertisement"))

	if payload == nil {
		return nil, failure.Validation(notAnObject())
	}

	fields := newFieldSet(schema.FieldHeadline, schema.FieldDescription)
	headline, _ := fields.readString(payload, schema.FieldHeadline, true)
	description, hasDescription := fields.readString(payload, schema.FieldDescription, false)

	if err := fields.apply(v.validate, &advertisementSchema{Headline: headline, Description: description}); err != nil {
		return nil, err
	}
	if violations := fields.violations(); len(violations) > 0 {
		log.Debug(ctx, "advertisement payload rejected", zap.Int("violations", len(violations)))
		return nil, failure.Validation(violations...)
	}

	input := &schema.AdvertisementInput{Headline: headline}
	if hasDescription {
		input.Description = &description
	}
	return input, nil
}

// fieldSet собирает нарушения по полям в порядке объявления схемы.
type fieldSet struct {
	order  []string
	failed map[string][]failure.Violation
}

func newFieldSet(order ...string) *fieldSet {
	return &fieldSet{order: order, failed: make(map[string][]failure.Violation, len(order))}
}

func (f *fieldSet) add(field string, violation failure.Violation) {
	f.failed[field] = append(f.failed[field], violation)
}

func (f *fieldSet) ok(field string) bool {
	return len(f.failed[field]) == 0
}

// readString достает строковое поле. Второе значение ложно, если поле
// отсутствует, равно null или имеет не строковый тип.
func (f *fieldSet) readString(payload schema.Payload, field string, required bool) (string, bool) {
	raw, found := payload[field]
	if !found || isNull(raw) {
		if required {
			f.add(field, failure.Violation{Loc: []string{field}, Msg: msgFieldRequired, Type: failure.TypeMissing})
		}
		return "", false
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		f.add(field, failure.Violation{Loc: []string{field}, Msg: msgStringExpected, Type: failure.TypeString})
		return "", false
	}
	return value, true
}

// apply прогоняет правила схемы; нарушения полей, уже отклоненных
// по наличию или типу, отбрасываются.
func (f *fieldSet) apply(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%s: %w", errCtxSchema, err)
	}

	for _, fe := range fieldErrors {
		if !f.ok(fe.Field()) {
			continue
		}
		f.add(fe.Field(), ruleViolation(fe))
	}
	return nil
}

func (f *fieldSet) violations() []failure.Violation {
	var out []failure.Violation
	for _, field := range f.order {
		out = append(out, f.failed[field]...)
	}
	return out
}

func ruleViolation(fe validator.FieldError) failure.Violation {
	loc := []string{fe.Field()}

	if msg, ok := ruleMessages[fe.Field()+"."+fe.Tag()]; ok {
		return failure.Violation{Loc: loc, Msg: msg, Type: failure.TypeValue}
	}

	switch fe.Tag() {
	case "max":
		return failure.Violation{Loc: loc, Msg: fmt.Sprintf(msgMaxLength, fe.Param()), Type: failure.TypeMaxLength}
	case "min":
		return failure.Violation{Loc: loc, Msg: fmt.Sprintf(msgMinLength, fe.Param()), Type: failure.TypeMinLength}
	default:
		return failure.Violation{Loc: loc, Msg: fmt.Sprintf(msgRuleFailed, fe.Tag()), Type: failure.TypeValue}
	}
}

func notAnObject() failure.Violation {
	return failure.Violation{Loc: []string{failure.RootLoc}, Msg: "value is not a valid dict", Type: failure.TypeObject}
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
