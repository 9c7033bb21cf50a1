package session

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/uptrace/bunrouter"
	restTypes "github.com/voxelified/mellow-api/internal/rest/types"
	"github.com/voxelified/mellow-api/internal/setup/config"
	"go.uber.org/zap"
)

type sessionCtxKey struct{}

// Session identifies the authenticated caller of a request.
type Session struct {
	// UserID is the caller's Discord user ID, taken from the token subject.
	UserID uint64
}

// FromContext retrieves the session from the context.
func FromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionCtxKey{}).(*Session)
	return session, ok
}

// Middleware authenticates requests with a bearer JWT signed by the
// identity provider's shared HS256 secret.
type Middleware struct {
	secret []byte
	logger *zap.Logger
}

// New creates a new session middleware.
func New(config *config.Session, logger *zap.Logger) *Middleware {
	return &Middleware{
		secret: []byte(config.JWTSecret),
		logger: logger.Named("session"),
	}
}

// AsRESTMiddleware returns a bunrouter middleware handler that rejects
// requests without a valid session token.
func (m *Middleware) AsRESTMiddleware(next bunrouter.HandlerFunc) bunrouter.HandlerFunc {
	return func(w http.ResponseWriter, req bunrouter.Request) error {
		session, ok := m.authenticate(req.Header.Get("Authorization"))
		if !ok {
			return restTypes.WriteError(w, http.StatusUnauthorized, restTypes.ErrorUnauthenticated, nil)
		}

		ctx := context.WithValue(req.Context(), sessionCtxKey{}, session)

		return next(w, req.WithContext(ctx))
	}
}

// authenticate validates the Authorization header and extracts the session.
func (m *Middleware) authenticate(authHeader string) (*Session, bool) {
	tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || tokenString == "" {
		return nil, false
	}

	claims := jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, &claims,
		func(_ *jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		m.logger.Debug("Rejected session token", zap.Error(err))
		return nil, false
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		m.logger.Debug("Session token subject is not a user ID",
			zap.String("subject", claims.Subject))
		return nil, false
	}

	return &Session{UserID: userID}, true
}
