package rut

import (
	"reflect"

	"github.com/go-playground/validator/v10"

	dErrors "rutid/pkg/domain-errors"
)

// Tag is the struct tag name registered by RegisterValidation.
const Tag = "rut"

// structValidator is shared; building a validator is expensive and it is
// safe for concurrent use once configured.
var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New()
	if err := RegisterValidation(v); err != nil {
		panic(err)
	}
	return v
}

// RegisterValidation adds the "rut" tag to v. Tagged string fields pass when
// Validate accepts them; RUT fields pass unless zero. An empty string fails,
// so optional fields should combine it with omitempty.
func RegisterValidation(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if r, ok := field.Interface().(RUT); ok {
			return r.String()
		}
		return nil
	}, RUT{})
	return v.RegisterValidation(Tag, func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return false
		}
		return Validate(field.String())
	})
}

// ValidateStruct runs struct-tag validation on s with the "rut" tag
// available. Failures are invalid_input domain errors wrapping the
// validator's field errors.
func ValidateStruct(s any) error {
	if err := structValidator.Struct(s); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInvalidInput, "validation failed")
	}
	return nil
}
