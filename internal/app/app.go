package app

import (
	"context"
	"errors"
	"fmt"

	"employee-admin/internal/config"
	"employee-admin/internal/employee"
	"employee-admin/internal/kv"
	"employee-admin/internal/session"

	"go.uber.org/zap"
)

// App is the application state shared by the HTTP handlers and the CLI:
// the login gate, the employee store and the backend it persists to.
// The caller must call Close when done.
type App struct {
	Config    config.AppConfig
	Logger    *zap.Logger
	Gate      *session.Gate
	Tokens    *session.Tokens
	Employees *employee.Store

	backend kv.Store
}

// New opens the configured backend and loads the employee snapshot.
// A snapshot that cannot be read is logged and the store starts empty.
func New(ctx context.Context, cfg config.AppConfig, logger *zap.Logger, opts ...employee.Option) (*App, error) {
	backend, err := kv.Open(ctx, cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.Store.Backend, err)
	}
	return NewWithBackend(ctx, cfg, logger, backend, opts...)
}

// NewWithBackend is New with an already opened backend. App takes ownership of it.
func NewWithBackend(ctx context.Context, cfg config.AppConfig, logger *zap.Logger, backend kv.Store, opts ...employee.Option) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	gate, err := session.NewGate()
	if err != nil {
		backend.Close()
		return nil, fmt.Errorf("creating session gate: %w", err)
	}

	opts = append([]employee.Option{employee.WithKey(cfg.Store.Key)}, opts...)
	store := employee.NewStore(backend, opts...)
	var repair *employee.RepairError
	switch err := store.Load(ctx); {
	case errors.As(err, &repair):
		for _, e := range repair.Dropped {
			logger.Warn("dropped invalid employee from snapshot",
				zap.Int64("id", e.ID),
				zap.String("name", e.Name),
				zap.String("gender", string(e.Gender)),
				zap.String("dob", e.DOB),
				zap.String("state", string(e.State)))
		}
		for id, fresh := range repair.Reassigned {
			logger.Warn("reassigned duplicate employee id",
				zap.Int64("id", id),
				zap.Int64s("new_ids", fresh))
		}
	case err != nil:
		logger.Warn("employee snapshot unreadable, starting empty",
			zap.String("backend", cfg.Store.Backend),
			zap.String("key", cfg.Store.Key),
			zap.Error(err))
	}
	logger.Info("employees loaded",
		zap.String("backend", cfg.Store.Backend),
		zap.Int("count", len(store.List())))

	if cfg.Session.JWTSecret == config.DevJWTSecret {
		logger.Warn("JWT_SECRET not set, using development secret")
	}

	return &App{
		Config:    cfg,
		Logger:    logger,
		Gate:      gate,
		Tokens:    session.NewTokens(cfg.Session.JWTSecret, cfg.Session.TTL),
		Employees: store,
		backend:   backend,
	}, nil
}

func (a *App) Close() error {
	return a.backend.Close()
}
