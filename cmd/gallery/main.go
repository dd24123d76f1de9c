package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rosterui/roster/internal/config"
	"github.com/rosterui/roster/internal/database"
	"github.com/rosterui/roster/internal/database/repository"
	"github.com/rosterui/roster/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path, migrationsPath()); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.SeedDefaults(ctx, db); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}

	repos := tui.Repos{
		Collections: repository.NewCollectionRepo(db),
		Records:     repository.NewRecordRepo(db),
	}

	p := tea.NewProgram(tui.New(ctx, cfg, repos), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func migrationsPath() string {
	if p := os.Getenv("ROSTER_MIGRATIONS"); p != "" {
		return p
	}
	return "internal/database/migrations"
}
