package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/frontdesk/visitor-registry/internal/api/middleware"
	"github.com/frontdesk/visitor-registry/internal/core/domain"
	"github.com/frontdesk/visitor-registry/internal/core/ports"
)

type stubAuthService struct {
	loginFn   func(ctx context.Context, username, password string) (*domain.TokenPair, *domain.User, error)
	refreshFn func(ctx context.Context, refreshToken string) (string, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*domain.TokenPair, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	return s.refreshFn(ctx, refreshToken)
}

type stubUserService struct {
	createFn func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error)
	updateFn func(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error)
	getFn    func(ctx context.Context, id string) (*domain.User, error)
	listFn   func(ctx context.Context) ([]*domain.User, error)
}

func (s *stubUserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, in)
}

func (s *stubUserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) ListActiveVisitors(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

type stubVisitorService struct {
	createFn func(ctx context.Context, in ports.CreateVisitorInput) (*domain.Visitor, error)
	listFn   func(ctx context.Context) ([]*domain.Visitor, error)
}

func (s *stubVisitorService) Create(ctx context.Context, in ports.CreateVisitorInput) (*domain.Visitor, error) {
	return s.createFn(ctx, in)
}

func (s *stubVisitorService) List(ctx context.Context) ([]*domain.Visitor, error) {
	return s.listFn(ctx)
}

// newContext builds an echo.Context carrying a JSON body and the validator the
// router installs.
func newContext(method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// authenticate sets the claims the Auth middleware would inject.
func authenticate(c echo.Context, userID, role string) {
	c.Set(middleware.CtxUserID, userID)
	c.Set(middleware.CtxRole, role)
}

func mustHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	if he.Code != code {
		t.Fatalf("expected %d, got %d", code, he.Code)
	}
}

func mustValidationError(t *testing.T, err error, fields ...string) *domain.ValidationError {
	t.Helper()
	verr, ok := err.(*domain.ValidationError)
	if !ok {
		t.Fatalf("expected *domain.ValidationError, got %T (%v)", err, err)
	}
	for _, f := range fields {
		if _, ok := verr.Fields[f]; !ok {
			t.Fatalf("expected field %q in %v", f, verr.Fields)
		}
	}
	return verr
}
