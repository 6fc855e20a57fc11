package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"gradebook/internal/config"
	"gradebook/internal/database"
	"gradebook/internal/fixture"
	"gradebook/internal/handler"
	"gradebook/internal/logger"
	"gradebook/internal/service"
	"gradebook/internal/store"
)

func main() {
	logger.Init()
	cfg := config.Load()

	st, err := openStore(cfg)
	if err != nil {
		slog.Error("failed to open store", "error", err)
		os.Exit(1)
	}

	roster := service.NewRosterService()
	reports := service.NewReportService(roster)
	importer := service.NewImportService(roster)

	if cfg.LoadOnStart {
		loaded, err := st.Load()
		switch {
		case err == nil:
			roster.Replace(loaded)
			slog.Info("roster loaded at startup", "students", roster.Len())
		case errors.Is(err, fs.ErrNotExist):
			slog.Warn("no saved roster yet, starting empty")
		default:
			slog.Error("mandatory startup load failed", "error", err)
			os.Exit(1)
		}
	}

	if roster.Len() == 0 && cfg.Seed != 0 {
		roster.Replace(fixture.NewBuilder(cfg.Seed).Students())
		slog.Info("seeded sample roster", "seed", cfg.Seed, "students", roster.Len())
	}

	menu := handler.NewMenuHandler(roster, reports, importer, st, cfg.Seed, os.Stdin, os.Stdout)
	if err := menu.Run(); err != nil {
		slog.Error("menu aborted", "error", err)
		os.Exit(1)
	}
}

func openStore(cfg config.Config) (store.Store, error) {
	if cfg.Store == "db" {
		db, err := database.Init(cfg.DBDSN)
		if err != nil {
			return nil, err
		}
		return store.NewDBStore(db), nil
	}
	return store.NewJSONStore(cfg.DataFile), nil
}
