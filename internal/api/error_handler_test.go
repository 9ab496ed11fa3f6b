package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/frontdesk/visitor-registry/internal/api/handler"
	"github.com/frontdesk/visitor-registry/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		wantCode  int
		wantMsg   string
		wantField string
	}{
		{"validation", domain.NewValidationError("username", "username is required"), http.StatusBadRequest, "validation failed", "username"},
		{"wrapped validation", fmt.Errorf("create: %w", domain.NewValidationError("role", "bad")), http.StatusBadRequest, "validation failed", "role"},
		{"user exists", domain.ErrUserExists, http.StatusBadRequest, "validation failed", "username"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials", ""},
		{"invalid token", fmt.Errorf("refresh: %w", domain.ErrInvalidToken), http.StatusUnauthorized, "invalid or expired token", ""},
		{"not found", domain.ErrUserNotFound, http.StatusNotFound, "not found", ""},
		{"echo error", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"), http.StatusUnauthorized, "missing authorization header", ""},
		{"unexpected", errors.New("connection reset by peer"), http.StatusInternalServerError, "internal server error", ""},
	}

	h := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			h(tc.err, c)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}

			var resp handler.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Error != tc.wantMsg {
				t.Fatalf("expected message %q, got %q", tc.wantMsg, resp.Error)
			}
			if tc.wantField != "" {
				if _, ok := resp.Fields[tc.wantField]; !ok {
					t.Fatalf("expected field %q in %v", tc.wantField, resp.Fields)
				}
			} else if len(resp.Fields) != 0 {
				t.Fatalf("unexpected fields: %v", resp.Fields)
			}
		})
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = c.String(http.StatusOK, "done")
	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late"), c)

	if rec.Code != http.StatusOK || rec.Body.String() != "done" {
		t.Fatalf("committed response was modified: %d %q", rec.Code, rec.Body.String())
	}
}
