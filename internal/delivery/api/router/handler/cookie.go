package handler

import (
	"net/http"
	"time"

	"bookstore/config"

	"github.com/labstack/echo/v4"
)

// sessionCookie builds the cookie carrying the session token.
// Secure and HttpOnly are only set in production.
func sessionCookie(cfg *config.Config, token string, now time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.Auth.CookieName,
		Value:    "Bearer " + token,
		Path:     "/",
		Expires:  now.Add(cfg.Auth.SessionTTL),
		HttpOnly: cfg.IsProduction(),
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
}

func clearSessionCookie(c echo.Context, cfg *config.Config) {
	c.SetCookie(&http.Cookie{
		Name:     cfg.Auth.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: cfg.IsProduction(),
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}
