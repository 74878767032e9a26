package investors

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jswiatek/kapital/internal/database"
)

func testRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := database.New(database.Config{
		Path:    fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
		Profile: database.ProfileCache,
		Name:    "clients_test",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewRepository(db.Conn(), zerolog.Nop())
	require.NoError(t, repo.EnsureSchema(context.Background()))
	return repo
}

func TestGetActiveNormalizesVotingStatus(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, Client{ID: "c1", Name: "Jan", VotingStatus: "tak", IsActive: true}))
	require.NoError(t, repo.Upsert(ctx, Client{ID: "c2", Name: "Anna", VotingStatus: "przeciw", IsActive: true}))
	require.NoError(t, repo.Upsert(ctx, Client{ID: "c3", Name: "Firma", VotingStatus: "???", IsActive: true}))

	clients, err := repo.GetActive(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 3)

	assert.Equal(t, VoteYes, clients[0].VotingStatus)
	assert.Equal(t, VoteNo, clients[1].VotingStatus)
	assert.Equal(t, VoteUndecided, clients[2].VotingStatus)
}

func TestGetActiveSkipsInactiveClients(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, Client{ID: "c1", Name: "Active", IsActive: true}))
	require.NoError(t, repo.Upsert(ctx, Client{ID: "c2", Name: "Gone", IsActive: false}))

	clients, err := repo.GetActive(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "c1", clients[0].ID)
}

func TestUpsertReplacesExistingRow(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, Client{ID: "c1", Name: "Old", IsActive: true}))
	require.NoError(t, repo.Upsert(ctx, Client{ID: "c1", Name: "New", Type: ClientCompany, IsActive: true}))

	clients, err := repo.GetActive(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "New", clients[0].Name)
	assert.Equal(t, ClientCompany, clients[0].Type)
}
