package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/contactdesk/contacts-api/internal/core/domain"
)

type stubUserRepo struct {
	byToken map[string]*domain.User
	err     error
}

func (r *stubUserRepo) Create(context.Context, *domain.User) (*domain.User, error) {
	panic("not used")
}

func (r *stubUserRepo) FindByUsername(context.Context, string) (*domain.User, error) {
	panic("not used")
}

func (r *stubUserRepo) FindByToken(_ context.Context, token string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	if u, ok := r.byToken[token]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(context.Context, *domain.User) error {
	panic("not used")
}

func invokeAuth(t *testing.T, repo *stubUserRepo, token string) (error, echo.Context, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	next := func(c echo.Context) error {
		called = true
		return nil
	}

	err := Auth(repo)(next)(c)
	return err, c, called
}

func TestAuth_MissingHeader(t *testing.T) {
	repo := &stubUserRepo{byToken: map[string]*domain.User{}}

	err, _, called := invokeAuth(t, repo, "")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if called {
		t.Fatalf("handler must not run without a token")
	}
}

func TestAuth_UnknownToken(t *testing.T) {
	repo := &stubUserRepo{byToken: map[string]*domain.User{}}

	err, _, called := invokeAuth(t, repo, "no-such-token")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if called {
		t.Fatalf("handler must not run with an unknown token")
	}
}

func TestAuth_ValidTokenInjectsUser(t *testing.T) {
	user := &domain.User{ID: 7, Username: "alice", Token: "tok-123"}
	repo := &stubUserRepo{byToken: map[string]*domain.User{"tok-123": user}}

	err, c, called := invokeAuth(t, repo, "tok-123")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if !called {
		t.Fatalf("handler was not invoked")
	}

	got, ok := c.Get("user").(*domain.User)
	if !ok {
		t.Fatalf("user missing from request context")
	}
	if got.ID != 7 || got.Username != "alice" {
		t.Fatalf("wrong user injected: %+v", got)
	}
}

func TestAuth_RepositoryErrorPassesThrough(t *testing.T) {
	boom := errors.New("mongo unavailable")
	repo := &stubUserRepo{err: boom}

	err, _, called := invokeAuth(t, repo, "tok-123")
	if !errors.Is(err, boom) {
		t.Fatalf("expected repository error, got %v", err)
	}
	if errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("infrastructure failure must not masquerade as 401")
	}
	if called {
		t.Fatalf("handler must not run when the lookup fails")
	}
}
