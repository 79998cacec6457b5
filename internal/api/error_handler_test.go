package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/qfnexora/finance-api/internal/core/domain"
)

func handle(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{domain.ErrEmailTaken, http.StatusBadRequest},
		{domain.ErrAlreadyVerified, http.StatusBadRequest},
		{domain.ErrNoPendingCode, http.StatusBadRequest},
		{domain.ErrNoPendingReset, http.StatusBadRequest},
		{domain.ErrCodeMismatch, http.StatusBadRequest},
		{domain.ErrCodeExpired, http.StatusBadRequest},
		{domain.ErrWrongPassword, http.StatusBadRequest},
		{domain.ErrMissingToken, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrInvalidOrExpiredToken, http.StatusUnauthorized},
		{domain.ErrAccountLocked, http.StatusForbidden},
		{domain.ErrEmailNotVerified, http.StatusForbidden},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrTransactionNotFound, http.StatusNotFound},
		{domain.ErrBudgetNotFound, http.StatusNotFound},
		{domain.ErrSavingPlanNotFound, http.StatusNotFound},
		{domain.ErrPlanNotEditable, http.StatusUnprocessableEntity},
		{domain.ErrDepositExceedsGoal, http.StatusUnprocessableEntity},
		{domain.ErrImmutableSource, http.StatusUnprocessableEntity},
		{domain.ErrOTPCooldown, http.StatusTooManyRequests},
		{domain.ErrOTPSendFailed, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := handle(t, tc.err)
		if rec.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"error"`) {
			t.Errorf("%v: expected the error envelope, got %s", tc.err, rec.Body.String())
		}
	}
}

func TestErrorHandler_WrappedErrorsStillMap(t *testing.T) {
	rec := handle(t, fmt.Errorf("login: %w", domain.ErrAccountLocked))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for wrapped lockout, got %d", rec.Code)
	}
}

func TestErrorHandler_EchoHTTPErrorPassesThrough(t *testing.T) {
	rec := handle(t, echo.NewHTTPError(http.StatusTeapot, "short and stout"))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "short and stout") {
		t.Fatalf("expected the HTTPError message, got %s", rec.Body.String())
	}
}

func TestErrorHandler_UnknownErrorIsGeneric(t *testing.T) {
	rec := handle(t, errors.New("mongo: socket reset with credentials attached"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "credentials") {
		t.Fatalf("internal details must not leak: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "internal server error") {
		t.Fatalf("expected generic message, got %s", rec.Body.String())
	}
}
