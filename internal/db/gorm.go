package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

const uniqueViolationCode = "23505"

// Query selects rows where Column equals Value. When RangeColumn is set, From
// and To bound it inclusively; either bound may be nil.
type Query struct {
	Column      string
	Value       any
	RangeColumn string
	From        *time.Time
	To          *time.Time
	OrderBy     string
	Limit       int
}

type GormDB struct {
	DB *gorm.DB
}

func NewGormDB(dsn string) (*GormDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &GormDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		DB: db,
	}, nil
}

func (g *GormDB) MigrateModels(models ...any) error {
	err := g.DB.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (g *GormDB) Insert(ctx context.Context, record any) error {
	err := g.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert to table: %w", ErrDuplicateKey)
		}
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (g *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := g.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (g *GormDB) GetAll(ctx context.Context, entities any) error {
	err := g.DB.WithContext(ctx).Find(entities).Error
	if err != nil {
		return fmt.Errorf("getting all records: %w", err)
	}
	return nil
}

func (g *GormDB) Find(ctx context.Context, q Query, entities any) error {
	tx := g.DB.WithContext(ctx).Where(fmt.Sprintf("%s = ?", q.Column), q.Value)

	if q.RangeColumn != "" {
		if q.From != nil {
			tx = tx.Where(fmt.Sprintf("%s >= ?", q.RangeColumn), *q.From)
		}
		if q.To != nil {
			tx = tx.Where(fmt.Sprintf("%s <= ?", q.RangeColumn), *q.To)
		}
	}

	if q.OrderBy != "" {
		tx = tx.Order(q.OrderBy)
	}

	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	if err := tx.Find(entities).Error; err != nil {
		return fmt.Errorf("getting records by %q: %w", q.Column, err)
	}
	return nil
}

func (g *GormDB) Ping(ctx context.Context) error {
	sqlDB, err := g.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

func (g *GormDB) Close() error {
	sqlDB, err := g.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
