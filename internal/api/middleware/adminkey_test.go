package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runAdminKey(t *testing.T, configured, presented string) (int, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/unlock-account", nil)
	if presented != "" {
		req.Header.Set(adminKeyHeader, presented)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := AdminKey(configured)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code, called
}

func TestAdminKey_MatchingKey(t *testing.T) {
	code, called := runAdminKey(t, "hunter2", "hunter2")
	if !called || code != http.StatusOK {
		t.Fatalf("expected pass-through, got code=%d called=%v", code, called)
	}
}

func TestAdminKey_WrongKey(t *testing.T) {
	code, called := runAdminKey(t, "hunter2", "nope")
	if called || code != http.StatusForbidden {
		t.Fatalf("expected 403, got code=%d called=%v", code, called)
	}
}

func TestAdminKey_MissingHeader(t *testing.T) {
	code, called := runAdminKey(t, "hunter2", "")
	if called || code != http.StatusForbidden {
		t.Fatalf("expected 403, got code=%d called=%v", code, called)
	}
}

func TestAdminKey_EmptyConfiguredKeyDisablesEndpoint(t *testing.T) {
	code, called := runAdminKey(t, "", "anything")
	if called || code != http.StatusForbidden {
		t.Fatalf("expected 403 when disabled, got code=%d called=%v", code, called)
	}
}
