package repository

import (
	"context"
	"exercisetracker/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateModels(models ...any) error
	Insert(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAll(ctx context.Context, entities any) error
	Find(ctx context.Context, query db.Query, entities any) error
}
