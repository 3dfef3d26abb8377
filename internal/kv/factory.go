package kv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"employee-admin/internal/config"
)

// Open creates the Store named by cfg.Backend.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemory(), nil
	case config.BackendFile:
		return NewFile(cfg.DataDir)
	case config.BackendSQLite:
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite store")
		}
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir: %w", err)
		}
		return NewSQLite(filepath.Join(cfg.DataDir, "employee-admin.db"))
	case config.BackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("database_url required for postgres store")
		}
		return NewPostgres(ctx, cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Backend)
	}
}
