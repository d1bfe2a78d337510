package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/kanaz/internal/app"
	"github.com/abhisek/kanaz/internal/config"
	"github.com/abhisek/kanaz/internal/kana"
	"github.com/abhisek/kanaz/internal/logging"
	"github.com/abhisek/kanaz/internal/selection"
	"github.com/abhisek/kanaz/internal/store"
)

// env is everything a command needs once configuration has been resolved.
type env struct {
	logger    *zap.Logger
	store     *store.Store
	selection *selection.Store
}

func (e *env) Close() {
	e.store.Close()
	_ = e.logger.Sync()
}

// openEnv loads config, opens the store and restores the persisted selection.
// A corrupt selection is logged and replaced with an empty one.
func openEnv(cmd *cobra.Command) (*env, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := logging.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Debug("store opened", zap.String("path", dbPath))

	sel := selection.New(kana.Default(), st.KVRepo())
	sel.OnChange(func(ids []string) {
		logger.Debug("selection changed", zap.Strings("ids", ids))
	})
	if err := sel.Load(ctx); err != nil {
		if !errors.Is(err, selection.ErrCorrupt) {
			st.Close()
			return nil, fmt.Errorf("load selection: %w", err)
		}
		logger.Warn("discarding corrupt selection", zap.Error(err))
	}

	return &env{logger: logger, store: st, selection: sel}, nil
}

// runApp opens the store, restores the selection, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	e.logger.Info("starting", zap.Int("selected", e.selection.Len()))
	return app.Run(app.Options{
		Table:     kana.Default(),
		Selection: e.selection,
		Logger:    e.logger,
	})
}
