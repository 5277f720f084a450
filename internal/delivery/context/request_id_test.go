package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))

	c.SetRequest(req.WithContext(WithRequestID(req.Context(), "from-ctx")))
	assert.Equal(t, "from-ctx", GetRequestID(c))

	SetRequestID(c, "from-echo")
	assert.Equal(t, "from-echo", GetRequestID(c))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	scoped := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
}

func TestWithAccountID(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

	accountID := uuid.New()
	ctx = WithAccountID(ctx, accountID)

	got, ok := GetAccountIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, accountID, got)

	GetLogger(ctx).Info("hello")
	assert.Contains(t, buf.String(), "account_id="+accountID.String())

	_, ok = GetAccountIDFromContext(context.Background())
	assert.False(t, ok)
}
