package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/CultureBotAI/assay-metadata/internal/oracle"
	"github.com/CultureBotAI/assay-metadata/internal/validate"
)

func setupRepo(t *testing.T) oracle.VerdictStore {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "verdicts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewVerdictRepository(db)
}

func TestVerdictRepository_GetMissing(t *testing.T) {
	repo := setupRepo(t)

	_, found, err := repo.Get(context.Background(), oracle.NamespacePubchem, "5793")
	require.NoError(t, err)
	require.False(t, found)
}

func TestVerdictRepository_PutThenGet(t *testing.T) {
	repo := setupRepo(t)
	verdict := oracle.Verdict{
		Namespace: oracle.NamespacePubchem,
		ID:        "5793",
		Status:    validate.StatusValid,
		Name:      "D-glucose",
		CheckedAt: time.Unix(1700000000, 0).UTC(),
	}

	require.NoError(t, repo.Put(context.Background(), verdict))

	got, found, err := repo.Get(context.Background(), oracle.NamespacePubchem, "5793")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, verdict, got)
}

func TestVerdictRepository_PutReplacesPriorVerdict(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, oracle.Verdict{
		Namespace: oracle.NamespaceKegg,
		ID:        "K01428",
		Status:    validate.StatusUnverified,
		Detail:    "timeout",
		CheckedAt: time.Unix(1700000000, 0).UTC(),
	}))
	require.NoError(t, repo.Put(ctx, oracle.Verdict{
		Namespace: oracle.NamespaceKegg,
		ID:        "K01428",
		Status:    validate.StatusValid,
		Name:      "urease subunit alpha",
		CheckedAt: time.Unix(1700000100, 0).UTC(),
	}))

	got, found, err := repo.Get(ctx, oracle.NamespaceKegg, "K01428")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, validate.StatusValid, got.Status)
	require.Equal(t, "urease subunit alpha", got.Name)
	require.Empty(t, got.Detail)
}

func TestVerdictRepository_NamespacesAreSegregated(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, oracle.Verdict{
		Namespace: oracle.NamespacePubchem,
		ID:        "1",
		Status:    validate.StatusValid,
		CheckedAt: time.Unix(1700000000, 0).UTC(),
	}))

	_, found, err := repo.Get(ctx, oracle.NamespaceKegg, "1")
	require.NoError(t, err)
	require.False(t, found)
}
