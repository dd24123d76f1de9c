package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rosterui/roster/internal/database/repository"
)

func openSeeded(t *testing.T) (context.Context, *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("migrations")
	require.NoError(t, err)
	require.NoError(t, RunMigrations(dbPath, migrations))

	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, SeedDefaults(ctx, db))
	return ctx, db
}

func TestSeedDefaultsIdempotent(t *testing.T) {
	t.Parallel()

	ctx, db := openSeeded(t)
	colRepo := repository.NewCollectionRepo(db)
	recRepo := repository.NewRecordRepo(db)

	require.NoError(t, SeedDefaults(ctx, db))

	cols, err := colRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, cols, 4)

	fruits, err := colRepo.ByName(ctx, "fruits")
	require.NoError(t, err)
	require.NotNil(t, fruits)
	require.Equal(t, "listbox", fruits.Kind)

	recs, err := recRepo.ListByCollection(ctx, fruits.ID)
	require.NoError(t, err)
	require.Len(t, recs, 8)
	require.Equal(t, "apple", recs[0].Label)
}

func TestRecordFlags(t *testing.T) {
	t.Parallel()

	ctx, db := openSeeded(t)
	colRepo := repository.NewCollectionRepo(db)
	recRepo := repository.NewRecordRepo(db)

	sizes, err := colRepo.ByName(ctx, "sizes")
	require.NoError(t, err)
	require.NotNil(t, sizes)

	recs, err := recRepo.ListByCollection(ctx, sizes.ID)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	require.NoError(t, recRepo.SetFlags(ctx, recs[1].ID, true, false))
	recs, err = recRepo.ListByCollection(ctx, sizes.ID)
	require.NoError(t, err)
	require.True(t, recs[1].Disabled)
	require.False(t, recs[1].Hidden)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	t.Parallel()

	ctx, db := openSeeded(t)
	colRepo := repository.NewCollectionRepo(db)

	before, err := colRepo.List(ctx)
	require.NoError(t, err)

	sentinel := errors.New("boom")
	err = WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM collections`); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	after, err := colRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before))
}

func TestCollectionDeleteCascades(t *testing.T) {
	t.Parallel()

	ctx, db := openSeeded(t)
	colRepo := repository.NewCollectionRepo(db)
	recRepo := repository.NewRecordRepo(db)

	sizes, err := colRepo.ByName(ctx, "sizes")
	require.NoError(t, err)
	require.NoError(t, colRepo.Delete(ctx, sizes.ID))

	recs, err := recRepo.ListByCollection(ctx, sizes.ID)
	require.NoError(t, err)
	require.Empty(t, recs)
}
