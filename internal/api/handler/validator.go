package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/frontdesk/visitor-registry/internal/core/domain"
)

// usernamePattern allows Unicode letters and digits plus @ . + - _
var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)

var layoutNames = map[string]string{
	"2006-01-02": "YYYY-MM-DD",
	"15:04":      "HH:MM",
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// Failures are reported as *domain.ValidationError keyed by JSON field name.
func NewValidator() *echoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			verr := &domain.ValidationError{}
			for _, fe := range ve {
				verr.Add(fe.Field(), fieldError(fe))
			}
			return verr
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "required_if":
		if cond := strings.Fields(fe.Param()); len(cond) == 2 {
			return fmt.Sprintf("%s is required when %s is %s", field, strings.ToLower(cond[0]), cond[1])
		}
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "datetime":
		layout := fe.Param()
		if name, ok := layoutNames[layout]; ok {
			layout = name
		}
		return fmt.Sprintf("%s must use the format %s", field, layout)
	case "username":
		return field + " may contain only letters, digits and @/./+/-/_"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
