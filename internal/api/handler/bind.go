package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"

	"github.com/labstack/echo/v4"

	"github.com/frontdesk/visitor-registry/internal/core/domain"
)

// bindJSON binds the request body into req. A value of the wrong JSON type is
// reported as a field error; any other bind failure is a bare 400.
func bindJSON(c echo.Context, req any) error {
	err := c.Bind(req)
	if err == nil {
		return nil
	}

	cause := err
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Internal != nil {
		cause = he.Internal
	}

	var te *json.UnmarshalTypeError
	if errors.As(cause, &te) && te.Field != "" {
		return domain.NewValidationError(te.Field, te.Field+" must be a valid "+jsonTypeName(te.Type))
	}
	return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
}

func jsonTypeName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return "value"
	}
}
