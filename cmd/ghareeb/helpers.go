package main

import (
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/mushafapp/ghareeb/internal/config"
	"github.com/mushafapp/ghareeb/internal/database"
	"github.com/mushafapp/ghareeb/internal/glossary"
	"github.com/mushafapp/ghareeb/internal/mushaf"
	"github.com/mushafapp/ghareeb/internal/override"
	"github.com/mushafapp/ghareeb/internal/reader"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.Load() > %w", err)
	}
	return cfg, nil
}

// openReader builds the page service and the repositories behind it. The
// caller closes the returned database handle.
func openReader(cfg *config.Config) (*sqlx.DB, *reader.Service, *override.YAMLRepository, error) {
	db, err := database.Open(cfg.DatabaseFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("database.Open() > %w", err)
	}

	orderOverrides, err := override.NewYAMLRepository(cfg.OverridesDirectory)
	if err != nil {
		_ = db.Close()
		return nil, nil, nil, fmt.Errorf("override.NewYAMLRepository() > %w", err)
	}

	service := reader.NewService(
		mushaf.NewDBPageRepository(db),
		glossary.NewDBEntryRepository(db),
		glossary.NewDBOverrideRepository(db),
		orderOverrides,
	)
	return db, service, orderOverrides, nil
}

func parsePageNumber(arg string) (int, error) {
	pageNumber, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid page number %q", arg)
	}
	if pageNumber < 1 {
		return 0, fmt.Errorf("invalid page number %d: pages start at 1", pageNumber)
	}
	return pageNumber, nil
}
