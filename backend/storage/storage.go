// Package storage provides the key-value facility the progress store persists
// its serialized record into. Every driver stores opaque string values under
// string keys.
package storage

import (
	"context"
	"fmt"

	"vedaverse/backend/config"
)

// Storage is a string key-value store.
type Storage interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Open returns the driver selected by cfg.StorageDriver.
func Open(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		return NewMemoryStorage(), nil
	case config.DriverFile:
		return NewFileStorage(cfg.DataFile), nil
	case config.DriverSQLite:
		return OpenSQLite(ctx, cfg.SQLitePath)
	case config.DriverPostgres:
		return OpenPostgres(cfg.PostgresDSN())
	case config.DriverRedis:
		return OpenRedis(ctx, RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
