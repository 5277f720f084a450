package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"bookstore/config"
	"bookstore/internal/domain/service"
)

type hmacCodeHasher struct {
	secret []byte
}

// NewHMACCodeHasher keys code digests with secretKey.code.
func NewHMACCodeHasher(cfg *config.Config) service.CodeHasher {
	return newHMACCodeHasher(cfg.SecretKey.Code)
}

func newHMACCodeHasher(secret string) *hmacCodeHasher {
	return &hmacCodeHasher{secret: []byte(secret)}
}

// Hash returns the hex HMAC-SHA256 of the code.
func (h *hmacCodeHasher) Hash(code string) string {
	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(code))

	return hex.EncodeToString(mac.Sum(nil))
}
