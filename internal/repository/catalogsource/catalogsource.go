package catalogsource

import (
	"context"
	"fmt"

	"tool-rental-pos/internal/config"
	"tool-rental-pos/internal/logger"
	"tool-rental-pos/internal/repository"
	"tool-rental-pos/internal/repository/csvstore"
	"tool-rental-pos/internal/repository/postgres"
)

// Catalog is the tool catalog the services read from. It serves either a
// reloadable snapshot of its source or, for live postgres catalogs, the
// database itself.
type Catalog struct {
	repository.ToolRepository
	snapshot *repository.ReloadingCatalog
	close    func() error
}

// Reloadable reports whether Reload re-reads the source
func (c *Catalog) Reloadable() bool {
	return c.snapshot != nil
}

// Reload swaps in a fresh snapshot. Live catalogs have nothing to reload.
func (c *Catalog) Reload(ctx context.Context) error {
	if c.snapshot == nil {
		return nil
	}
	return c.snapshot.Reload(ctx)
}

// Close releases the source
func (c *Catalog) Close() error {
	return c.close()
}

// Open builds the catalog named by cfg. Snapshot catalogs load their first
// snapshot before returning.
func Open(ctx context.Context, cfg *config.Config) (*Catalog, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceCSV:
		logger.Info("Using CSV catalog", "tool_info", cfg.Catalog.ToolInfoPath, "tools_available", cfg.Catalog.ToolsAvailablePath)
		store := csvstore.NewStore(cfg.Catalog.ToolInfoPath, cfg.Catalog.ToolsAvailablePath)
		return snapshotOf(ctx, store, func() error { return nil })
	case config.CatalogSourcePostgres:
		logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database)
		db, err := postgres.Open(cfg.GetDatabaseConnectionString())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		logger.Info("Database connection established", "live", cfg.Catalog.Live)
		return postgresCatalog(ctx, postgres.NewStore(db), cfg.Catalog.Live, db.Close)
	default:
		return nil, fmt.Errorf("unsupported catalog source: %q", cfg.Catalog.Source)
	}
}

func postgresCatalog(ctx context.Context, store *postgres.Store, live bool, closeFn func() error) (*Catalog, error) {
	if live {
		return &Catalog{ToolRepository: store, close: closeFn}, nil
	}
	return snapshotOf(ctx, store, closeFn)
}

func snapshotOf(ctx context.Context, src repository.ToolSource, closeFn func() error) (*Catalog, error) {
	snapshot, err := repository.NewReloadingCatalog(ctx, src)
	if err != nil {
		closeFn()
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return &Catalog{ToolRepository: snapshot, snapshot: snapshot, close: closeFn}, nil
}
