package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKid = "test-key"

func newJWKSServer(t *testing.T, key *rsa.PrivateKey) *httptest.Server {
	t.Helper()
	jwks := JWKS{Keys: []JWK{{
		Kid: testKid,
		Kty: "RSA",
		Alg: "RS256",
		Use: "sig",
		N:   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
		E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
	}}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(jwks)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = testKid
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func echoIdentity() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := IdentityFromContext(r.Context())
		_, _ = w.Write([]byte(id))
	})
}

func TestMiddleware_Header(t *testing.T) {
	h := Middleware(nil, nil)(echoIdentity())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(UserIDHeader, "u1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_BearerToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	srv := newJWKSServer(t, key)

	validator := NewJWTValidator(srv.URL, "https://issuer.example", "")
	h := Middleware(validator, nil)(echoIdentity())

	tests := []struct {
		name   string
		auth   string
		status int
		body   string
	}{
		{
			name:   "valid token",
			auth:   "Bearer " + signToken(t, key, jwt.MapClaims{"sub": "u1", "iss": "https://issuer.example", "exp": time.Now().Add(time.Hour).Unix()}),
			status: http.StatusOK,
			body:   "u1",
		},
		{
			name:   "wrong issuer",
			auth:   "Bearer " + signToken(t, key, jwt.MapClaims{"sub": "u1", "iss": "https://other.example", "exp": time.Now().Add(time.Hour).Unix()}),
			status: http.StatusUnauthorized,
		},
		{
			name:   "expired",
			auth:   "Bearer " + signToken(t, key, jwt.MapClaims{"sub": "u1", "iss": "https://issuer.example", "exp": time.Now().Add(-time.Hour).Unix()}),
			status: http.StatusUnauthorized,
		},
		{
			name:   "no subject",
			auth:   "Bearer " + signToken(t, key, jwt.MapClaims{"iss": "https://issuer.example"}),
			status: http.StatusUnauthorized,
		},
		{
			name:   "missing token",
			status: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(UserIDHeader, "ignored-when-tokens-are-required")
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}

func TestValidateToken_CustomClaim(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	srv := newJWKSServer(t, key)

	v := NewJWTValidator(srv.URL, "", "wallet_id")
	id, err := v.ValidateToken(t.Context(), signToken(t, key, jwt.MapClaims{"sub": "ignored", "wallet_id": "u7"}))
	require.NoError(t, err)
	assert.Equal(t, "u7", id)

	_, err = v.ValidateToken(t.Context(), signToken(t, key, jwt.MapClaims{"sub": "u1"}))
	assert.ErrorIs(t, err, ErrMissingIdentityClaim)
}

func TestIdentityFromContext_Empty(t *testing.T) {
	_, ok := IdentityFromContext(WithIdentity(t.Context(), ""))
	assert.False(t, ok)
}
