package web

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Context carries the request scoped values through a handler chain. It
// embeds the gin context for direct access to the request and writer.
type Context struct {
	*gin.Context
	Ctx context.Context

	paramErrs []error
	queryErrs []error
}

// NewContext wraps a gin context for use by web handlers.
func NewContext(c *gin.Context) *Context {
	return &Context{Context: c, Ctx: c.Request.Context()}
}

// BindFunc decodes the request body (json or form) into data and checks
// that every field named in required is present. Field names refer to the
// Go struct fields, not their wire names.
func (c *Context) BindFunc(data interface{}, required ...string) error {
	if err := c.ShouldBind(data); err != nil {
		return NewRequestError(errors.Wrap(err, "parsing request body"), http.StatusBadRequest)
	}

	return RequireFields(data, required...)
}

// GetParam reads a path parameter as the requested kind. Conversion
// failures are collected and reported by ValidParam.
func (c *Context) GetParam(kind reflect.Kind, name string) interface{} {
	value := c.Param(name)

	switch kind {
	case reflect.Int:
		v, err := strconv.Atoi(value)
		if err != nil {
			c.paramErrs = append(c.paramErrs, fmt.Errorf("param %q must be an integer", name))
			return 0
		}
		return v
	case reflect.String:
		return value
	default:
		c.paramErrs = append(c.paramErrs, fmt.Errorf("unsupported param kind for %q", name))
		return nil
	}
}

// ValidParam reports any conversion error recorded by GetParam.
func (c *Context) ValidParam() error {
	if len(c.paramErrs) == 0 {
		return nil
	}
	return NewRequestError(c.paramErrs[0], http.StatusBadRequest)
}

// GetQueryFunc reads an optional query parameter as the requested kind.
// Missing parameters yield a typed nil so callers can use a type
// assertion, present parameters that fail to convert are reported by
// ValidQuery.
func (c *Context) GetQueryFunc(kind reflect.Kind, name string) interface{} {
	value, ok := c.GetQuery(name)

	switch kind {
	case reflect.Int:
		if !ok {
			return (*int)(nil)
		}
		v, err := strconv.Atoi(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, fmt.Errorf("query %q must be an integer", name))
			return (*int)(nil)
		}
		return &v
	case reflect.String:
		if !ok {
			return (*string)(nil)
		}
		return &value
	case reflect.Bool:
		if !ok {
			return (*bool)(nil)
		}
		v, err := strconv.ParseBool(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, fmt.Errorf("query %q must be a boolean", name))
			return (*bool)(nil)
		}
		return &v
	default:
		c.queryErrs = append(c.queryErrs, fmt.Errorf("unsupported query kind for %q", name))
		return nil
	}
}

// ValidQuery reports any conversion error recorded by GetQueryFunc.
func (c *Context) ValidQuery() error {
	if len(c.queryErrs) == 0 {
		return nil
	}
	return NewRequestError(c.queryErrs[0], http.StatusBadRequest)
}

// Respond writes data as the response with the given status code.
func (c *Context) Respond(data interface{}, status int) error {
	c.JSON(status, data)
	return nil
}

// RespondOK writes the standard success envelope.
func (c *Context) RespondOK(message string, data interface{}) error {
	return c.Respond(map[string]interface{}{
		"success": true,
		"message": message,
		"data":    data,
	}, http.StatusOK)
}

// RespondPage writes the standard success envelope with pagination
// metadata alongside the data.
func (c *Context) RespondPage(message string, data interface{}, p Pagination) error {
	return c.Respond(map[string]interface{}{
		"success":    true,
		"message":    message,
		"data":       data,
		"pagination": p,
	}, http.StatusOK)
}

// RespondError maps an error to its HTTP response. Request errors carry
// their own status, anything else is treated as an internal failure.
func (c *Context) RespondError(err error) error {
	var webErr *Error
	if errors.As(err, &webErr) {
		c.JSON(webErr.Status, map[string]interface{}{
			"message": webErr.Err.Error(),
		})
		return nil
	}

	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"message": "internal server error",
	})
	return nil
}

// RequireFields checks that the named struct fields of data are set.
// Pointer fields must be non-nil, value fields must be non-zero.
func RequireFields(data interface{}, required ...string) error {
	if len(required) == 0 {
		return nil
	}

	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return NewRequestError(errors.New("expected a struct for validation"), http.StatusInternalServerError)
	}

	var missing []string
	for _, name := range required {
		f := v.FieldByName(name)
		if !f.IsValid() {
			missing = append(missing, name)
			continue
		}
		if f.Kind() == reflect.Ptr {
			if f.IsNil() {
				missing = append(missing, name)
			}
			continue
		}
		if f.IsZero() {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return NewRequestError(
			fmt.Errorf("required fields are missing: %s", strings.Join(missing, ", ")),
			http.StatusBadRequest,
		)
	}

	return nil
}
