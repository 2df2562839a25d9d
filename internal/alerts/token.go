package alerts

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fraudwatch/pkg/log"
)

// TokenProvider yields the bearer token to attach to backend requests, or
// an empty string when no token should be attached.
type TokenProvider interface {
	Token() string
}

// StaticToken is a fixed token value.
type StaticToken string

// Token implements TokenProvider.
func (t StaticToken) Token() string { return string(t) }

// FileTokenStore reads the persisted bearer token from a file on every
// request, so a rotated token is picked up without restarting. A token
// that parses as a JWT and is already expired is not attached; opaque
// tokens are attached as-is.
type FileTokenStore struct {
	path   string
	logger log.Logger
}

// NewFileTokenStore creates a token store for the given path. An empty
// path yields an always-empty token.
func NewFileTokenStore(path string, logger log.Logger) *FileTokenStore {
	return &FileTokenStore{path: path, logger: logger}
}

// Token implements TokenProvider.
func (s *FileTokenStore) Token() string {
	if s.path == "" {
		return ""
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return ""
	}

	if expired(token) {
		if s.logger != nil {
			s.logger.Warn(context.Background(), "Persisted bearer token is expired, not attaching it")
		}
		return ""
	}

	return token
}

// expired reports whether the token is a JWT with an exp claim in the
// past. Claims are read unverified; signature validation is the backend's
// job.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
