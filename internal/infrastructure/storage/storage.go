package storage

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"carcost/internal/config"
	"carcost/internal/domain/garage"
	"carcost/internal/infrastructure/migration"
	"carcost/internal/infrastructure/storage/memory"
	"carcost/internal/infrastructure/storage/postgres"
	"carcost/internal/infrastructure/storage/sqlite"
)

// Storage - хранилище "ключ-значение" для гаража с освобождаемыми ресурсами
type Storage interface {
	garage.KeyValue
	Close() error
}

type pgStorage struct {
	*postgres.KVRepository
	storage *postgres.Storage
}

func (p *pgStorage) Close() error {
	return p.storage.Close()
}

// New открывает хранилище по конфигурации: PostgreSQL, если задан DATABASE_URI,
// иначе файл SQLite.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (Storage, error) {
	if cfg.UsePostgres() {
		pg, err := postgres.New(ctx, cfg.DB.DatabaseURI, migration.DefaultEngine)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		log.Info("using postgres storage")
		return &pgStorage{
			KVRepository: postgres.NewKVRepository(pg, log),
			storage:      pg,
		}, nil
	}

	s, err := sqlite.New(cfg.DB.DataPath, log)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	log.Info("using sqlite storage", "path", cfg.DB.DataPath)
	return s, nil
}

// NewOrMemory как New, но при ошибке откатывается на хранилище в памяти
func NewOrMemory(ctx context.Context, cfg *config.Config, log *slog.Logger) Storage {
	s, err := New(ctx, cfg, log)
	if err != nil {
		log.Warn("Не удалось открыть хранилище, используем память", "error", err)
		return memory.New()
	}
	return s
}
