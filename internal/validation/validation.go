package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldError describes one violated field of a request body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the full list of violations found in one request.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + " " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(f.Tag.Get("query"), ",", 2)[0]
		}
		return name
	})

	// Amounts are compared numerically by gt/gte/lt; unparsable input
	// surfaces as its raw text and fails the money rule.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		m, ok := field.Interface().(dto.Money)
		if !ok {
			return nil
		}
		if !m.Valid() {
			return m.Raw
		}
		return m.InexactFloat64()
	}, dto.Money{})
	_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		switch fl.Field().Kind() {
		case reflect.Float32, reflect.Float64:
			return decimal.NewFromFloat(fl.Field().Float()).Exponent() >= -2
		case reflect.Int, reflect.Int64:
			return true
		}
		return false
	})
	return v
}

// Struct validates s and returns Errors listing every violated field, or nil.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fieldPath(fe), Message: message(fe)})
	}
	return out
}

// Field reports a single violation, for checks that cannot be expressed as tags.
func Field(field, msg string) Errors {
	return Errors{{Field: field, Message: msg}}
}

// FromDecodeError converts a JSON body decoding failure into field violations.
func FromDecodeError(err error) Errors {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return Field(typeErr.Field, "must be "+jsonKind(typeErr.Type))
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return Field("body", "must be valid JSON")
	}
	return Field("body", "contains an invalid value")
}

// Merge joins violation lists. When a field appears more than once the
// first message wins, so a type error is not repeated as "is required".
func Merge(lists ...Errors) Errors {
	var out Errors
	seen := make(map[string]bool)
	for _, list := range lists {
		for _, fe := range list {
			if seen[fe.Field] {
				continue
			}
			seen[fe.Field] = true
			out = append(out, fe)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func fieldPath(fe validator.FieldError) string {
	// Namespace is "<Struct>.<json path>"; drop the struct name.
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_with":
		return "is required when " + lowerFirst(fe.Param()) + " is provided"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			if fe.Param() == "1" {
				return "must not be empty"
			}
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lt":
		return "must be less than " + fe.Param()
	case "uuid":
		return "must be a valid UUID"
	case "datetime":
		return "must be an ISO-8601 datetime"
	case "oneof":
		return "must be one of: " + strings.Join(oneOfValues(fe.Param()), ", ")
	case "money":
		if fe.Kind() == reflect.String {
			return "must be a number"
		}
		return "must have at most two decimal places"
	}
	return "is invalid"
}

func oneOfValues(param string) []string {
	var values []string
	for _, part := range strings.Split(param, "'") {
		if p := strings.TrimSpace(part); p != "" {
			values = append(values, p)
		}
	}
	return values
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int32, reflect.Int64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "an array"
	}
	return "an object"
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
