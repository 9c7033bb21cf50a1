package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bunrouter"
	"github.com/voxelified/mellow-api/internal/rest/middleware/session"
	"github.com/voxelified/mellow-api/internal/setup/config"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func newRouter(t *testing.T, gotSession **session.Session) *bunrouter.Router {
	t.Helper()

	m := session.New(&config.Session{JWTSecret: testSecret}, zap.NewNop())

	router := bunrouter.New(bunrouter.Use(m.AsRESTMiddleware))
	router.GET("/protected", func(w http.ResponseWriter, req bunrouter.Request) error {
		sess, ok := session.FromContext(req.Context())
		require.True(t, ok)
		*gotSession = sess

		w.WriteHeader(http.StatusOK)

		return nil
	})

	return router
}

func signToken(t *testing.T, secret, subject string, method jwt.SigningMethod) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, jwt.RegisteredClaims{Subject: subject}).
		SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestSessionMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		authHeader func(t *testing.T) string
		wantStatus int
		wantUserID uint64
	}{
		{
			name: "valid token",
			authHeader: func(t *testing.T) string {
				t.Helper()
				return "Bearer " + signToken(t, testSecret, "1234567890", jwt.SigningMethodHS256)
			},
			wantStatus: http.StatusOK,
			wantUserID: 1234567890,
		},
		{
			name:       "missing header",
			authHeader: func(*testing.T) string { return "" },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			authHeader: func(*testing.T) string { return "Basic abc" },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "wrong secret",
			authHeader: func(t *testing.T) string {
				t.Helper()
				return "Bearer " + signToken(t, "other-secret", "1234567890", jwt.SigningMethodHS256)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "unexpected signing method",
			authHeader: func(t *testing.T) string {
				t.Helper()
				return "Bearer " + signToken(t, testSecret, "1234567890", jwt.SigningMethodHS512)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "subject is not a user ID",
			authHeader: func(t *testing.T) string {
				t.Helper()
				return "Bearer " + signToken(t, testSecret, "not-a-number", jwt.SigningMethodHS256)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotSession *session.Session

			router := newRouter(t, &gotSession)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if header := tt.authHeader(t); header != "" {
				req.Header.Set("Authorization", header)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				require.NotNil(t, gotSession)
				assert.Equal(t, tt.wantUserID, gotSession.UserID)
			} else {
				assert.Nil(t, gotSession)
				assert.JSONEq(t, `{"error":"unauthenticated"}`, rec.Body.String())
			}
		})
	}
}
