package v1handler

import (
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"metashare/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
)

// SecHandler verifies RS256 bearer tokens on v1 routes.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

// NewSecHandler parses the PEM-encoded RSA public key used to verify tokens.
func NewSecHandler(publicKeyPEM string) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{publicKey: key}, nil
}

// Middleware rejects requests without a valid bearer token.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			writeError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}

			return s.publicKey, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
		if err != nil || !token.Valid {
			writeError(w, r, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid bearer token"))

			return
		}

		next.ServeHTTP(w, r)
	})
}
