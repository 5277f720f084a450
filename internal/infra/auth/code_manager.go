package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"math/big"
	"strconv"
	"time"

	"bookstore/config"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultCodeTTL = 5 * time.Minute
	codeUpperBound = 1_000_000
)

type codeManager struct {
	hasher   service.CodeHasher
	ttl      time.Duration
	now      func() time.Time
	generate func() (string, error)
}

// NewCodeManager issues six-digit codes that stay valid for auth.codeTTL.
func NewCodeManager(cfg *config.Config, hasher service.CodeHasher) service.CodeManager {
	ttl := defaultCodeTTL
	if cfg.Auth != nil && cfg.Auth.CodeTTL > 0 {
		ttl = cfg.Auth.CodeTTL
	}

	return &codeManager{
		hasher:   hasher,
		ttl:      ttl,
		now:      time.Now,
		generate: randomCode,
	}
}

// randomCode draws uniformly from [0, 999999] and renders it without padding.
func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeUpperBound))
	if err != nil {
		return "", errors.Wrap(err, "failed to read random code")
	}

	return strconv.FormatInt(n.Int64(), 10), nil
}

func (m *codeManager) Issue() (string, entity.IssuedCode, error) {
	plain, err := m.generate()
	if err != nil {
		return "", entity.IssuedCode{}, err
	}

	return plain, entity.IssuedCode{
		Hash:     m.hasher.Hash(plain),
		IssuedAt: m.now(),
	}, nil
}

func (m *codeManager) Verify(stored *entity.IssuedCode, provided string) error {
	if stored == nil || stored.Hash == "" {
		return domainerrors.ErrCodeMissing
	}

	// Exactly ttl after issuance is still valid.
	if m.now().Sub(stored.IssuedAt) > m.ttl {
		return domainerrors.ErrCodeExpired
	}

	if subtle.ConstantTimeCompare([]byte(m.hasher.Hash(provided)), []byte(stored.Hash)) != 1 {
		return domainerrors.ErrCodeMismatch
	}

	return nil
}
