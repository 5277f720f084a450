package handler

import (
	"encoding/json"
	"testing"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvidedCode_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ProvidedCode
		wantErr bool
	}{
		{name: "number", input: `{"providedCode": 482913}`, want: "482913"},
		{name: "string", input: `{"providedCode": "482913"}`, want: "482913"},
		{name: "unpadded small code", input: `{"providedCode": 42}`, want: "42"},
		{name: "missing", input: `{}`, want: ""},
		{name: "null", input: `{"providedCode": null}`, want: ""},
		{name: "boolean", input: `{"providedCode": true}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req VerifyCodeRequest
			err := json.Unmarshal([]byte(tt.input), &req)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.ProvidedCode)
		})
	}
}

func TestNewAccountResponse_OmitsSecrets(t *testing.T) {
	account := &entity.Account{
		ID:               uuid.New(),
		Email:            "reader@books.com",
		PasswordHash:     "$2a$12$secret",
		VerificationCode: &entity.IssuedCode{Hash: "code-hash"},
	}

	raw, err := json.Marshal(newAccountResponse(account))
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), "code-hash")
	assert.Contains(t, string(raw), `"wishlist":[]`)
}
