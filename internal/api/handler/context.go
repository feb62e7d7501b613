package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/stockcart/storefront/internal/api/middleware"
	"github.com/stockcart/storefront/internal/core/domain"
)

// ctxUser returns the user injected by the Auth middleware. A missing user
// means the route was mounted without Auth; answer 401 rather than panic.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.ContextUser).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return user, nil
}

func ctxSessionID(c echo.Context) string {
	id, _ := c.Get(middleware.ContextSessionID).(string)
	return id
}

// paramID parses the named path parameter as an entity identity.
func paramID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// bindAndValidate decodes the body into req and runs the validator. A JSON
// value of the wrong type is reported as a field violation like any other
// schema failure.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var ute *json.UnmarshalTypeError
		if errors.As(err, &ute) && ute.Field != "" {
			return &ValidationError{Details: []FieldViolation{{
				Field:   ute.Field,
				Rule:    "type",
				Message: fmt.Sprintf("%s must be a %s, got %s", ute.Field, jsonKind(ute.Type), ute.Value),
			}}}
		}
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload").SetInternal(err)
	}
	return c.Validate(req)
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}
