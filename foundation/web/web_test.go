package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondOKEnvelope(t *testing.T) {
	app := NewApp()
	app.Get("/ping", func(c *Context) error {
		return c.RespondOK("pong", map[string]int{"value": 7})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	app.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !body.Success {
		t.Error("success = false, want true")
	}
	if body.Message != "pong" {
		t.Errorf("message = %q, want %q", body.Message, "pong")
	}
	if string(body.Data) != `{"value":7}` {
		t.Errorf("data = %s, want {\"value\":7}", body.Data)
	}
}

func TestRespondPageEnvelope(t *testing.T) {
	app := NewApp()
	app.Get("/list", func(c *Context) error {
		return c.RespondPage("ok", []int{1, 2, 3}, NewPagination(3, 1, 10))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/list", nil)
	app.ServeHTTP(w, req)

	var body map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if _, ok := body["pagination"]; !ok {
		t.Error("response missing pagination field")
	}
}

func TestRespondErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"request error keeps its status", NewRequestError(errors.New("no such record"), http.StatusNotFound), http.StatusNotFound, "no such record"},
		{"bad request", NewRequestError(errors.New("missing field"), http.StatusBadRequest), http.StatusBadRequest, "missing field"},
		{"unknown error is internal", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
		{"wrapped request error unwraps", errors.Wrap(NewRequestError(errors.New("denied"), http.StatusForbidden), "handler"), http.StatusForbidden, "denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := NewApp()
			app.Get("/fail", func(c *Context) error {
				return tt.err
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/fail", nil)
			app.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var body struct {
				Message string `json:"message"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if body.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", body.Message, tt.wantMessage)
			}
		})
	}
}

func TestGetParamAndQuery(t *testing.T) {
	app := NewApp()
	app.Get("/items/:id", func(c *Context) error {
		id := c.GetParam(reflect.Int, "id")
		if err := c.ValidParam(); err != nil {
			return c.RespondError(err)
		}
		return c.RespondOK("ok", id)
	})

	t.Run("integer param", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/items/42", nil)
		app.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"data":42`) {
			t.Errorf("body = %s, want data 42", w.Body.String())
		}
	})

	t.Run("non integer param rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/items/abc", nil)
		app.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}

func TestRequireFields(t *testing.T) {
	type payload struct {
		Name  string
		Email *string
		Age   int
	}

	email := "a@b.c"

	tests := []struct {
		name     string
		data     payload
		required []string
		wantErr  bool
	}{
		{"all present", payload{Name: "n", Email: &email, Age: 1}, []string{"Name", "Email", "Age"}, false},
		{"nil pointer missing", payload{Name: "n"}, []string{"Email"}, true},
		{"zero value missing", payload{}, []string{"Name"}, true},
		{"nothing required", payload{}, nil, false},
		{"unknown field missing", payload{Name: "n"}, []string{"Nope"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireFields(&tt.data, tt.required...)
			if (err != nil) != tt.wantErr {
				t.Errorf("RequireFields() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var webErr *Error
				if !errors.As(err, &webErr) || webErr.Status != http.StatusBadRequest {
					t.Errorf("expected a 400 request error, got %v", err)
				}
			}
		})
	}
}
