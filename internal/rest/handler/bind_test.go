package handler

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bunrouter"
	"github.com/voxelified/mellow-api/internal/database"
	"github.com/voxelified/mellow-api/internal/database/types"
	"github.com/voxelified/mellow-api/internal/database/types/enum"
	"github.com/voxelified/mellow-api/internal/rest/middleware/session"
	"github.com/voxelified/mellow-api/internal/setup/config"
	"go.uber.org/zap"
)

const testJWTSecret = "test-secret"

// brokenClient is a database client whose every query fails, for testing
// the handlers' store failure paths.
type brokenClient struct {
	db   *bun.DB
	repo *database.Repository
}

func newBrokenClient(t *testing.T) *brokenClient {
	t.Helper()

	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithAddr("127.0.0.1:1"),
		pgdriver.WithInsecure(true),
	))

	db := bun.NewDB(sqldb, pgdialect.New())
	require.NoError(t, db.Close())

	return &brokenClient{
		db:   db,
		repo: database.NewRepository(db, zap.NewNop()),
	}
}

func (c *brokenClient) Model() *database.Repository { return c.repo }
func (c *brokenClient) Close() error                { return nil }
func (c *brokenClient) DB() *bun.DB                 { return c.db }

// allowAllGuard accepts every membership check.
type allowAllGuard struct{}

func (allowAllGuard) VerifyServerMembership(context.Context, uint64, uint64) error {
	return nil
}

func sessionToken(t *testing.T, subject string) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: subject}).
		SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	return "Bearer " + token
}

func newTestRouter(db database.Client) *bunrouter.Router {
	logger := zap.NewNop()

	bindHandler := NewBindHandler(db, allowAllGuard{}, logger)
	userHandler := NewUserHandler(db, logger)

	sessionMiddleware := session.New(&config.Session{JWTSecret: testJWTSecret}, logger)

	router := bunrouter.New(bunrouter.Use(sessionMiddleware.AsRESTMiddleware))
	router.GET("/servers/:serverID/binds", bindHandler.GetBinds)
	router.GET("/users/@me", userHandler.GetMe)

	return router
}

func TestStoreReadFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
	}{
		{name: "list binds", path: "/servers/42/binds"},
		{name: "profile load", path: "/users/@me"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := newTestRouter(newBrokenClient(t))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("Authorization", sessionToken(t, "7"))

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			// Failed store reads surface as external request errors
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"error":"external_request_error"}`, rec.Body.String())
		})
	}
}

func TestBindAuditMetadata(t *testing.T) {
	t.Parallel()

	record := &types.Bind{
		Name:             "Members",
		Type:             enum.BindTypeStatic,
		TargetIDs:        []string{"111", "222", "333"},
		RequirementsType: enum.BindRequirementsTypeMeetOne,
		Requirements: []*types.BindRequirement{
			{Type: enum.BindRequirementTypeHasRobloxGroupRole, Data: []string{"123456", "5"}},
			{Type: enum.BindRequirementTypeHasVerifiedUserLink},
		},
	}

	metadata := bindAuditMetadata(record)

	assert.Equal(t, map[string]any{
		"name":              "Members",
		"type":              "Static",
		"targets":           3,
		"requirements":      2,
		"requirements_type": "MeetOne",
	}, metadata)
}
