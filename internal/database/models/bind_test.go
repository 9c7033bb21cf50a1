package models_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/voxelified/mellow-api/internal/database"
	"github.com/voxelified/mellow-api/internal/database/types"
	"github.com/voxelified/mellow-api/internal/database/types/enum"
	"github.com/voxelified/mellow-api/internal/setup/config"
	"go.uber.org/zap"
)

// setupTestDB starts a throwaway Postgres container and connects with
// migrations applied.
func setupTestDB(t *testing.T) database.Client {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container-backed store test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("mellow_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		postgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pgContainer.Terminate(context.Background())
	})

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)

	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	client, err := database.NewConnection(ctx, &config.PostgreSQL{
		Host:         host,
		Port:         port.Int(),
		User:         "testuser",
		Password:     "testpass",
		DBName:       "mellow_test",
		MaxOpenConns: 4,
		MaxIdleConns: 4,
	}, zap.NewNop(), true)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}

func testBind(serverID uint64) *types.Bind {
	return &types.Bind{
		ServerID:         serverID,
		Name:             "Members",
		Type:             enum.BindTypeStatic,
		CreatorID:        7,
		TargetIDs:        []string{"111", "222"},
		RequirementsType: enum.BindRequirementsTypeMeetAll,
		Requirements: []*types.BindRequirement{
			{Type: enum.BindRequirementTypeHasRobloxGroupRole, Data: []string{"123456", "5"}},
			{Type: enum.BindRequirementTypeHasVerifiedUserLink, Data: []string{}},
		},
	}
}

func requirementData(requirements []*types.BindRequirement) [][]string {
	data := make([][]string, 0, len(requirements))
	for _, req := range requirements {
		data = append(data, req.Data)
	}

	return data
}

func TestCreateBindLinksRequirements(t *testing.T) {
	t.Parallel()

	client := setupTestDB(t)
	ctx := context.Background()

	record := testBind(42)
	require.NoError(t, client.Model().Bind().CreateBind(ctx, record))

	// Requirement rows must carry the new bind's ID
	require.NotEmpty(t, record.ID)
	for _, req := range record.Requirements {
		assert.NotEmpty(t, req.ID)
		assert.Equal(t, record.ID, req.BindID)
	}

	stored, err := client.Model().Bind().GetBindsByServer(ctx, 42)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, record.ID, stored[0].ID)
	assert.False(t, stored[0].CreatedAt.IsZero())
	require.Len(t, stored[0].Requirements, 2)

	for _, req := range stored[0].Requirements {
		assert.Equal(t, record.ID, req.BindID)
	}
}

func TestDeleteBindScopedToServer(t *testing.T) {
	t.Parallel()

	client := setupTestDB(t)
	ctx := context.Background()

	record := testBind(42)
	require.NoError(t, client.Model().Bind().CreateBind(ctx, record))

	// Deleting through another server must not touch the bind
	_, err := client.Model().Bind().DeleteBind(ctx, 43, record.ID)
	require.ErrorIs(t, err, types.ErrBindNotFound)

	stored, err := client.Model().Bind().GetBindsByServer(ctx, 42)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Len(t, stored[0].Requirements, 2)

	name, err := client.Model().Bind().DeleteBind(ctx, 42, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "Members", name)

	stored, err = client.Model().Bind().GetBindsByServer(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestUpdateBindReplacesRequirements(t *testing.T) {
	t.Parallel()

	client := setupTestDB(t)
	ctx := context.Background()

	record := testBind(42)
	require.NoError(t, client.Model().Bind().CreateBind(ctx, record))

	// Applying the same update twice must settle on the same requirement set
	for range 2 {
		update := testBind(42)
		update.ID = record.ID
		update.Name = "Veterans"
		update.Requirements = []*types.BindRequirement{
			{Type: enum.BindRequirementTypeHasRobloxGroupRankInRange, Data: []string{"123456", "10", "200"}},
		}

		require.NoError(t, client.Model().Bind().UpdateBind(ctx, update))

		stored, err := client.Model().Bind().GetBindsByServer(ctx, 42)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, "Veterans", stored[0].Name)
		require.Len(t, stored[0].Requirements, 1)
		assert.Equal(t, [][]string{{"123456", "10", "200"}}, requirementData(stored[0].Requirements))
	}

	// An update scoped to the wrong server leaves the bind untouched
	miss := testBind(43)
	miss.ID = record.ID
	require.ErrorIs(t, client.Model().Bind().UpdateBind(ctx, miss), types.ErrBindNotFound)
}
