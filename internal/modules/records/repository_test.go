package records

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jswiatek/kapital/internal/database"
)

func testRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := database.New(database.Config{
		Path:    "file::memory:?cache=shared&mode=memory",
		Profile: database.ProfileCache,
		Name:    "records_test",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewRepository(db.Conn(), zerolog.Nop())
	require.NoError(t, repo.EnsureSchema(context.Background()))
	return repo
}

func TestRepositoryRoundTrip(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, CollectionBonds, RawRecord{
		"id":               "b-1",
		"remainingCapital": 100.0,
	}))
	require.NoError(t, repo.Insert(ctx, CollectionBonds, RawRecord{
		"id":                "b-2",
		"kapital_pozostaly": "200,50",
	}))
	require.NoError(t, repo.Insert(ctx, CollectionLoans, RawRecord{
		"id": "l-1",
	}))

	bonds, err := repo.FetchCollection(ctx, CollectionBonds)
	require.NoError(t, err)
	require.Len(t, bonds, 2)
	assert.Equal(t, "b-1", bonds[0]["id"])
	assert.Equal(t, "b-2", bonds[1]["id"])

	loans, err := repo.FetchCollection(ctx, CollectionLoans)
	require.NoError(t, err)
	assert.Len(t, loans, 1)

	empty, err := repo.FetchCollection(ctx, CollectionShares)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
