package cmd

import (
	"context"
	"exercisetracker/internal/config"
	"exercisetracker/pkg/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create tables or indexes in the configured store and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Migrate(cmd.Context())
	},
}

func Migrate(ctx context.Context) error {
	cfg, err := config.NewApp(envFile)
	if err != nil {
		return err
	}

	logger := log.NewZapLogger("exercise-tracker", log.ParseLevel(cfg.LogLevel))

	handle, err := openStore(ctx, cfg)
	if err != nil {
		logger.Errorw("failed to connect to store", "error", err, "backend", cfg.Backend())
		return err
	}

	return migrateStore(ctx, logger.With("backend", cfg.Backend()), handle)
}

// migrateStore ensures the schema and always closes the handle.
func migrateStore(ctx context.Context, logger *zap.SugaredLogger, handle storeHandle) error {
	defer func() {
		if err := handle.close(); err != nil {
			logger.Errorw("failed to close store", "error", err)
		}
	}()

	if err := handle.migrate(ctx); err != nil {
		logger.Errorw("failed to migrate store", "error", err)
		return err
	}

	logger.Infow("store migrated")
	return nil
}
