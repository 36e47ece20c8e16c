package kvstore

import (
	"context"
	"fmt"

	"contractor_pro/internal/config"
	"contractor_pro/internal/infrastructure/database"
	"contractor_pro/internal/usecase/interfaces"
	"contractor_pro/pkg/logger"

	"gorm.io/gorm"
)

// Open builds the backend selected by cfg.Backend. The returned close
// function releases its connections and is never nil.
func Open(ctx context.Context, cfg config.StorageConfig, log logger.Logger) (interfaces.IKeyValueStore, func() error, error) {
	noop := func() error { return nil }
	log = log.WithComponent("kvstore").WithFields(map[string]interface{}{"backend": cfg.Backend})

	switch cfg.Backend {
	case config.BackendMemory:
		log.Warnf("using in-memory storage; data is lost on restart")
		return NewMemoryStore(), noop, nil

	case config.BackendSQLite, config.BackendPostgres:
		open := func() (*GormStore, error) {
			if cfg.Backend == config.BackendPostgres {
				db, err := database.OpenPostgres(cfg.DatabaseDSN)
				if err != nil {
					return nil, err
				}
				return openGormStore(db, cfg.KVTable)
			}
			db, err := database.OpenSQLite(cfg.SQLitePath)
			if err != nil {
				return nil, err
			}
			return openGormStore(db, cfg.KVTable)
		}
		store, err := open()
		if err != nil {
			return nil, noop, err
		}
		log.Infof("sql storage ready table=%s", cfg.KVTable)
		return store, store.Close, nil

	case config.BackendRedis:
		rdb, err := database.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, noop, err
		}
		log.Infof("redis storage ready prefix=%s", cfg.RedisPrefix)
		return NewRedisStore(rdb, cfg.RedisPrefix), rdb.Close, nil

	case config.BackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create dynamodb client: %w", err)
		}
		store := NewDynamoStore(ddb, cfg.KVTable)
		if err := store.EnsureTable(ctx); err != nil {
			return nil, noop, fmt.Errorf("failed to ensure dynamodb table %s: %w", cfg.KVTable, err)
		}
		log.Infof("dynamodb storage ready table=%s", cfg.KVTable)
		return store, noop, nil
	}

	return nil, noop, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Backend)
}

// openGormStore is NewGormStore that closes db when the migration fails.
func openGormStore(db *gorm.DB, table string) (*GormStore, error) {
	store, err := NewGormStore(db, table)
	if err != nil {
		if sqlDB, derr := db.DB(); derr == nil {
			_ = sqlDB.Close()
		}
		return nil, fmt.Errorf("migrate kv table %q: %w", table, err)
	}
	return store, nil
}
