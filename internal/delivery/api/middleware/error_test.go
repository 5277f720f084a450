package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookstore/config"
	domainerrors "bookstore/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   struct {
		Code    string `json:"code"`
		Details any    `json:"details"`
	} `json:"error"`
}

func handleError(t *testing.T, env string, err error) (int, errorBody) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = env
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	m.HandleHTTPError(err, c)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	status, body := handleError(t, "development", errors.Wrap(domainerrors.ErrEmailInUse.WrapMessage("signup"), "tx"))

	assert.Equal(t, http.StatusConflict, status)
	assert.False(t, body.Success)
	assert.Equal(t, "EMAIL_IN_USE", body.Error.Code)
	assert.Equal(t, "Email already in use", body.Message)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	status, body := handleError(t, "development", echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))

	assert.Equal(t, http.StatusMethodNotAllowed, status)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

func TestErrorMiddleware_UnknownError(t *testing.T) {
	cause := errors.New("connection refused")

	status, body := handleError(t, "development", cause)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Equal(t, "connection refused", body.Error.Details)

	status, body = handleError(t, "production", cause)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Nil(t, body.Error.Details)
}

func TestErrorMiddleware_DatabaseErrorIsInternal(t *testing.T) {
	status, body := handleError(t, "production", domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "insert"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Nil(t, body.Error.Details)
}
