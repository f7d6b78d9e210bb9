package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/contactdesk/contacts-api/internal/api/handler"
	"github.com/contactdesk/contacts-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, map[string]map[string][]string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/contacts/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body %q: %v", rec.Body.String(), err)
	}
	return rec.Code, body
}

func TestErrorHandler_DomainSentinels(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		field   string
		message string
	}{
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, "message", "Unauthorized"},
		{"stale identity", domain.ErrUserNotFound, http.StatusUnauthorized, "message", "Unauthorized"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "message", "username or password is wrong"},
		{"contact not found", domain.ErrContactNotFound, http.StatusNotFound, "message", "Contact not found."},
		{"address not found", domain.ErrAddressNotFound, http.StatusNotFound, "message", "Address not found."},
		{"username taken", domain.ErrUsernameTaken, http.StatusBadRequest, "username", "Username already registered."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := renderError(t, tc.err)
			if code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, code)
			}
			msgs := body["errors"][tc.field]
			if len(msgs) != 1 || msgs[0] != tc.message {
				t.Fatalf("expected %q under %q, got %v", tc.message, tc.field, body)
			}
		})
	}
}

func TestErrorHandler_WrappedSentinel(t *testing.T) {
	wrapped := errors.Join(errors.New("lookup failed"), domain.ErrContactNotFound)
	code, body := renderError(t, wrapped)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped sentinel, got %d", code)
	}
	if body["errors"]["message"][0] != "Contact not found." {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestErrorHandler_FieldErrors(t *testing.T) {
	fe := handler.FieldErrors{
		"username": {"username is required"},
		"password": {"password must be at least 6 characters"},
	}

	code, body := renderError(t, fe)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if body["errors"]["username"][0] != "username is required" {
		t.Fatalf("unexpected body: %v", body)
	}
	if body["errors"]["password"][0] != "password must be at least 6 characters" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid request body"))
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if body["errors"]["message"][0] != "invalid request body" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	code, body := renderError(t, errors.New("mongo: connection reset by peer"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	msgs := body["errors"]["message"]
	if len(msgs) != 1 || msgs[0] != "internal server error" {
		t.Fatalf("internal detail must not leak: %v", body)
	}
}

func TestErrorHandler_CommittedResponseUntouched(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := c.JSON(http.StatusOK, map[string]bool{"data": true}); err != nil {
		t.Fatalf("priming response failed: %v", err)
	}
	before := rec.Body.String()

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrContactNotFound, c)

	if rec.Body.String() != before {
		t.Fatalf("handler wrote to a committed response")
	}
}
