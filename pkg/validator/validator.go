// Package validator wraps go-playground struct validation together
// with the custom rules the API's request and model types rely on.
package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// FieldError describes a single failed field check.
type FieldError struct {
	Field string
	Rule  string
	Param string
}

// Message renders the failure for a client-facing error body.
func (e FieldError) Message() string {
	if e.Param != "" {
		return fmt.Sprintf("field '%s' failed on rule '%s=%s'", e.Field, e.Rule, e.Param)
	}
	return fmt.Sprintf("field '%s' failed on rule '%s'", e.Field, e.Rule)
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()

	// uuid_required rejects the zero UUID, which "required" alone
	// cannot catch on a value type.
	v.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		id, ok := fl.Field().Interface().(uuid.UUID)
		return ok && id != uuid.Nil
	})

	return v
}

// ValidateStruct returns one FieldError per failed check, in struct
// field order, or nil when the value is clean.
func ValidateStruct(data interface{}) []FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var out []FieldError
	for _, fe := range err.(validator.ValidationErrors) {
		out = append(out, FieldError{
			Field: fe.StructNamespace(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}
