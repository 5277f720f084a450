package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"bookstore/config"
	apimiddleware "bookstore/internal/delivery/api/middleware"
	"bookstore/internal/delivery/api/router"
	"bookstore/internal/delivery/api/router/handler"
	"bookstore/internal/delivery/middleware"
	"bookstore/internal/domain/service"
	"bookstore/internal/infra/auth"
	"bookstore/internal/infra/persistence/postgres"
	mockSvc "bookstore/internal/mocks/service"
	"bookstore/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testPassword = "Secret123"

var codePattern = regexp.MustCompile(`<h1>(\d+)</h1>`)

// captureMailer accepts every message and keeps it for inspection.
type captureMailer struct {
	mu       sync.Mutex
	messages []service.MailMessage
}

func (m *captureMailer) Send(_ context.Context, msg service.MailMessage) (*service.MailReceipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)

	return &service.MailReceipt{Accepted: []string{msg.To}}, nil
}

func (m *captureMailer) lastCode(t *testing.T, to string) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := len(m.messages) - 1; i >= 0; i-- {
		if m.messages[i].To != to {
			continue
		}
		match := codePattern.FindStringSubmatch(m.messages[i].HTML)
		require.Len(t, match, 2)

		return match[1]
	}
	t.Fatalf("no message sent to %s", to)

	return ""
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Token   string          `json:"token"`
	Error   *struct {
		Code    string `json:"code"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type testServer struct {
	echo   *echo.Echo
	mailer *captureMailer
}

func newTestServer(t *testing.T, env string) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = env
	cfg.Env.ServiceName = "bookstore-test"
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.SecretKey.Session = "session-secret"
	cfg.SecretKey.Signup = "signup-secret"
	cfg.SecretKey.Code = "code-secret"
	cfg.Auth = &config.AuthConfig{
		BcryptCost: bcrypt.MinCost,
		SessionTTL: 8 * time.Hour,
		SignupTTL:  7 * 24 * time.Hour,
		CodeTTL:    5 * time.Minute,
		CookieName: "Authorization",
	}
	cfg.PasswordStrength = &config.PasswordStrengthConfig{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		MaxLength:        72,
	}
	cfg.Catalog = &config.CatalogConfig{PageSize: 10}

	dsn := filepath.Join(t.TempDir(), "api.db") + "?_foreign_keys=on&_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, postgres.Migrate(db))

	accountRepo := postgres.NewAccountRepository(db)
	bookRepo := postgres.NewBookRepository(db)
	txManager := postgres.NewTransactionManager(db)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishAccountEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	hasher := auth.NewBcryptHasher(cfg)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	codes := auth.NewCodeManager(cfg, auth.NewHMACCodeHasher(cfg))
	mailer := &captureMailer{}

	accountUC := impl.NewAccountService(impl.AccountServiceParams{
		TxManager:      txManager,
		AccountRepo:    accountRepo,
		Hasher:         hasher,
		TokenService:   tokens,
		EventPublisher: publisher,
		Logger:         logger,
	})
	verificationUC := impl.NewVerificationService(impl.VerificationServiceParams{
		AccountRepo:    accountRepo,
		Hasher:         hasher,
		CodeManager:    codes,
		Mailer:         mailer,
		EventPublisher: publisher,
		Logger:         logger,
	})
	wishlistUC := impl.NewWishlistService(impl.WishlistServiceParams{
		AccountRepo: accountRepo,
		BookRepo:    bookRepo,
		Logger:      logger,
	})
	bookUC := impl.NewBookService(impl.BookServiceParams{
		TxManager: txManager,
		BookRepo:  bookRepo,
		Config:    cfg,
		Logger:    logger,
	})

	metrics := middleware.NewMetricsMiddleware(cfg)
	e := NewEcho(ServerParams{
		Cfg:               cfg,
		Logger:            logger,
		MetricsMiddleware: metrics,
		RouterParams: router.RouterParams{
			AccountHandler: handler.NewAccountHandler(handler.AccountHandlerParams{
				AccountUC: accountUC,
				Config:    cfg,
				Logger:    logger,
			}),
			VerificationHandler: handler.NewVerificationHandler(handler.VerificationHandlerParams{VerificationUC: verificationUC}),
			WishlistHandler:     handler.NewWishlistHandler(handler.WishlistHandlerParams{WishlistUC: wishlistUC}),
			BookHandler:         handler.NewBookHandler(handler.BookHandlerParams{BookUC: bookUC}),
			AuthMiddleware:      apimiddleware.NewAuthMiddleware(tokens, cfg),
			MetricsMiddleware:   metrics,
		},
	})

	return &testServer{echo: e, mailer: mailer}
}

func (s *testServer) do(t *testing.T, method, path string, body any, token string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func (s *testServer) signup(t *testing.T, email string) (handler.AccountResponse, string) {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/users", map[string]string{"email": email, "password": testPassword}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	env := decode(t, rec)
	var account handler.AccountResponse
	require.NoError(t, json.Unmarshal(env.Data, &account))

	return account, env.Token
}

func (s *testServer) signin(t *testing.T, email, password string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/users/signin", map[string]string{"email": email, "password": password}, "")
	if rec.Code != http.StatusOK {
		return rec, ""
	}

	return rec, decode(t, rec).Token
}

func (s *testServer) createBook(t *testing.T, token, title string) handler.BookResponse {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/books", map[string]any{
		"title":         title,
		"description":   "a book about " + title,
		"author":        "Frank Herbert",
		"genre":         "scifi",
		"price":         12.5,
		"stockQuantity": 4,
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var book handler.BookResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &book))

	return book
}

func TestAPI_SignupVerifySigninFlow(t *testing.T) {
	srv := newTestServer(t, "development")
	email := "reader@books.com"

	account, signupToken := srv.signup(t, email)
	assert.NotEmpty(t, signupToken)
	assert.False(t, account.Verified)

	rec := srv.do(t, http.MethodPost, "/api/users/send-verification-code", map[string]string{"email": email}, signupToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	code, err := strconv.Atoi(srv.mailer.lastCode(t, email))
	require.NoError(t, err)

	rec = srv.do(t, http.MethodPost, "/api/users/verify-verification-code", map[string]any{"email": email, "providedCode": code}, signupToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// A consumed code cannot be redeemed twice.
	rec = srv.do(t, http.MethodPost, "/api/users/verify-verification-code", map[string]any{"email": email, "providedCode": code}, signupToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decode(t, rec).Success)

	rec, sessionToken := srv.signin(t, email, testPassword)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotEmpty(t, sessionToken)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "Authorization", cookies[0].Name)
	assert.Equal(t, "Bearer "+sessionToken, cookies[0].Value)
	assert.False(t, cookies[0].HttpOnly)
	assert.False(t, cookies[0].Secure)

	rec = srv.do(t, http.MethodGet, "/api/users/me", nil, sessionToken)
	require.Equal(t, http.StatusOK, rec.Code)
	var me handler.AccountResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &me))
	assert.Equal(t, account.ID, me.ID)
	assert.True(t, me.Verified)

	rec = srv.do(t, http.MethodPost, "/api/users/change-password", map[string]string{
		"oldPassword": testPassword,
		"newPassword": "Changed456",
	}, sessionToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec, _ = srv.signin(t, email, testPassword)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec, _ = srv.signin(t, email, "Changed456")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_SignupDuplicateEmail(t *testing.T) {
	srv := newTestServer(t, "development")
	srv.signup(t, "reader@books.com")

	rec := srv.do(t, http.MethodPost, "/api/users", map[string]string{"email": "Reader@Books.com", "password": testPassword}, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "EMAIL_IN_USE", env.Error.Code)
}

func TestAPI_SigninFailuresAreIndistinguishable(t *testing.T) {
	srv := newTestServer(t, "development")
	srv.signup(t, "reader@books.com")

	wrongPassword := srv.do(t, http.MethodPost, "/api/users/signin",
		map[string]string{"email": "reader@books.com", "password": "Wrong1234"}, "", "X-Request-Id", "fixed")
	unknownEmail := srv.do(t, http.MethodPost, "/api/users/signin",
		map[string]string{"email": "nobody@books.com", "password": "Wrong1234"}, "", "X-Request-Id", "fixed")

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	assert.Empty(t, wrongPassword.Result().Cookies())
}

func TestAPI_ProductionCookieFlags(t *testing.T) {
	srv := newTestServer(t, "production")
	srv.signup(t, "reader@books.com")

	rec, _ := srv.signin(t, "reader@books.com", testPassword)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)

	rec = srv.do(t, http.MethodPost, "/api/users/signout", nil, decode(t, rec).Token)
	require.Equal(t, http.StatusOK, rec.Code)
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Empty(t, cleared[0].Value)
	assert.Negative(t, cleared[0].MaxAge)
}

func TestAPI_ChangePasswordRequiresVerifiedSession(t *testing.T) {
	srv := newTestServer(t, "development")
	srv.signup(t, "reader@books.com")
	_, token := srv.signin(t, "reader@books.com", testPassword)

	rec := srv.do(t, http.MethodPost, "/api/users/change-password", map[string]string{
		"oldPassword": testPassword,
		"newPassword": "Changed456",
	}, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "NOT_VERIFIED", decode(t, rec).Error.Code)
}

func TestAPI_SessionOnlyRoutesRejectSignupToken(t *testing.T) {
	srv := newTestServer(t, "development")
	_, signupToken := srv.signup(t, "reader@books.com")

	rec := srv.do(t, http.MethodGet, "/api/users/me", nil, signupToken)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/books", map[string]any{"title": "Dune", "description": "desert"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestAPI_CookieAuthentication(t *testing.T) {
	srv := newTestServer(t, "development")
	srv.signup(t, "reader@books.com")
	_, token := srv.signin(t, "reader@books.com", testPassword)

	rec := srv.do(t, http.MethodGet, "/api/users/me", nil, "", "Cookie", "Authorization=Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestAPI_VerificationRejectsOtherAccount(t *testing.T) {
	srv := newTestServer(t, "development")
	srv.signup(t, "victim@books.com")
	_, attackerToken := srv.signup(t, "attacker@books.com")

	rec := srv.do(t, http.MethodPost, "/api/users/send-verification-code", map[string]string{"email": "victim@books.com"}, attackerToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAPI_ForgotPasswordFlow(t *testing.T) {
	srv := newTestServer(t, "development")
	email := "reader@books.com"
	srv.signup(t, email)

	rec := srv.do(t, http.MethodPost, "/api/users/send-forgot-password-code", map[string]string{"email": email}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	code := srv.mailer.lastCode(t, email)
	rec = srv.do(t, http.MethodPost, "/api/users/verify-forgot-password-code", map[string]string{
		"email":        email,
		"providedCode": code,
		"newPassword":  "Reset7890",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec, _ = srv.signin(t, email, "Reset7890")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_ValidationMessage(t *testing.T) {
	srv := newTestServer(t, "development")

	rec := srv.do(t, http.MethodPost, "/api/users", map[string]string{"password": testPassword}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, `"email" is required`, env.Message)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	rec = srv.do(t, http.MethodPost, "/api/users", map[string]string{"email": "reader@books.com", "password": "weak"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, strings.HasPrefix(decode(t, rec).Message, `"password"`))
}

func TestAPI_Wishlist(t *testing.T) {
	srv := newTestServer(t, "development")
	srv.signup(t, "reader@books.com")
	_, token := srv.signin(t, "reader@books.com", testPassword)
	book := srv.createBook(t, token, "Dune")

	rec := srv.do(t, http.MethodPost, "/api/users/wishlist", map[string]string{"bookId": book.ID.String()}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = srv.do(t, http.MethodPost, "/api/users/wishlist", map[string]string{"bookId": book.ID.String()}, token)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ALREADY_IN_WISHLIST", decode(t, rec).Error.Code)

	rec = srv.do(t, http.MethodGet, "/api/users/wishlist", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	var books []handler.BookResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &books))
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)
	assert.Equal(t, "reader@books.com", books[0].Owner.Email)

	rec = srv.do(t, http.MethodDelete, "/api/users/wishlist/"+book.ID.String(), nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodDelete, "/api/users/wishlist/"+book.ID.String(), nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_IN_WISHLIST", decode(t, rec).Error.Code)
}

func TestAPI_BookOwnership(t *testing.T) {
	srv := newTestServer(t, "development")
	srv.signup(t, "owner@books.com")
	srv.signup(t, "other@books.com")
	_, ownerToken := srv.signin(t, "owner@books.com", testPassword)
	_, otherToken := srv.signin(t, "other@books.com", testPassword)

	book := srv.createBook(t, ownerToken, "Dune")
	path := "/api/books/" + book.ID.String()

	rec := srv.do(t, http.MethodPut, path, map[string]string{"title": "Stolen"}, otherToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)
	assert.Nil(t, env.Error.Details)

	rec = srv.do(t, http.MethodPut, path, map[string]string{"title": "Dune Messiah"}, ownerToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated handler.BookResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &updated))
	assert.Equal(t, "Dune Messiah", updated.Title)
	assert.Equal(t, "Frank Herbert", updated.Author)

	rec = srv.do(t, http.MethodDelete, path, nil, otherToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.do(t, http.MethodDelete, path, nil, ownerToken)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodGet, path, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "BOOK_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestAPI_ListBooks(t *testing.T) {
	srv := newTestServer(t, "development")
	srv.signup(t, "owner@books.com")
	_, token := srv.signin(t, "owner@books.com", testPassword)
	srv.createBook(t, token, "Dune")
	srv.createBook(t, token, "Children of Dune")
	srv.createBook(t, token, "Hyperion")

	rec := srv.do(t, http.MethodGet, "/api/books?title=dune", nil, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var books []handler.BookResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &books))
	assert.Len(t, books, 2)

	rec = srv.do(t, http.MethodGet, "/api/books/not-an-id", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_UnknownRouteAndMetrics(t *testing.T) {
	srv := newTestServer(t, "development")

	rec := srv.do(t, http.MethodGet, "/does/not/exist", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decode(t, rec)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Meta.RequestID)

	rec = srv.do(t, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total`)
	assert.Contains(t, rec.Body.String(), `route="/health"`)
}
