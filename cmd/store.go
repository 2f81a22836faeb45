package cmd

import (
	"context"
	"exercisetracker/internal/config"
	"exercisetracker/internal/core"
	"exercisetracker/internal/db"
	"exercisetracker/internal/docstore"
	"exercisetracker/internal/repository"
)

// storeHandle is an opened backend together with its lifecycle hooks.
type storeHandle struct {
	repo    core.Repository
	migrate func(ctx context.Context) error
	close   func() error
}

func openStore(ctx context.Context, cfg config.App) (storeHandle, error) {
	if cfg.Backend() == config.BackendMongo {
		docs, err := docstore.Connect(ctx, cfg.DBConnectionURL, cfg.DBName)
		if err != nil {
			return storeHandle{}, err
		}

		return storeHandle{
			repo:    docs,
			migrate: docs.Migrate,
			close: func() error {
				return docs.Close(context.Background())
			},
		}, nil
	}

	dbConn, err := db.NewGormDB(cfg.DBConnectionURL)
	if err != nil {
		return storeHandle{}, err
	}

	repo := repository.NewExerciseRepository(dbConn)
	return storeHandle{
		repo:    repo,
		migrate: repo.Migrate,
		close:   dbConn.Close,
	}, nil
}
