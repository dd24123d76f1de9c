package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/rosterui/roster/internal/database/repository"
)

// SeedDefaults ensures the demo collections exist for new databases.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	colRepo := repository.NewCollectionRepo(db)
	existing, err := colRepo.List(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}

	seeds := []struct {
		name   string
		kind   string
		labels []string
	}{
		{"fruits", "listbox", []string{"apple", "apricot", "banana", "cherry", "date", "elderberry", "fig", "grape"}},
		{"file actions", "menu", []string{"Open", "Save", "Save As", "Close", "Quit"}},
		{"sizes", "radiogroup", []string{"small", "medium", "large"}},
		{"languages", "combobox", []string{"go", "rust", "zig", "python", "haskell", "ocaml"}},
	}
	recRepo := repository.NewRecordRepo(db)
	for _, s := range seeds {
		colID := uuid.NewSHA1(uuid.NameSpaceOID, []byte("col:"+s.name)).String()
		col := repository.Collection{ID: colID, Name: s.name, Kind: s.kind}
		if err := colRepo.Upsert(ctx, col); err != nil {
			return err
		}
		for pos, label := range s.labels {
			rec := repository.Record{
				ID:           uuid.NewSHA1(uuid.NameSpaceOID, []byte("rec:"+s.name+":"+label)).String(),
				CollectionID: colID,
				Label:        label,
				Position:     pos,
			}
			if err := recRepo.Upsert(ctx, rec); err != nil {
				return err
			}
		}
	}
	return nil
}
