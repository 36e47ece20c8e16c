package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"contractor_pro/internal/domain/entities"
	"contractor_pro/internal/infrastructure/metrics"
	"contractor_pro/internal/usecase/interfaces"
	"contractor_pro/pkg/logger"
)

var ErrUnknownStorageKey = errors.New("unknown storage key")

// Storage serializes values to JSON text in an IKeyValueStore.
//
// Reads are best effort: LoadItem never fails, it falls back.
type Storage struct {
	kv  interfaces.IKeyValueStore
	log logger.Logger
}

func NewStorage(kv interfaces.IKeyValueStore, log logger.Logger) *Storage {
	if kv == nil {
		panic("repository: NewStorage requires a key/value store")
	}
	return &Storage{kv: kv, log: log.WithComponent("storage")}
}

// LoadItem returns the value stored under key, or fallback when the key is
// unknown, absent, unreadable or not valid JSON for T.
func LoadItem[T any](ctx context.Context, s *Storage, key entities.StorageKey, fallback T) T {
	log := s.log.WithFields(map[string]interface{}{"key": key.String()})

	if !key.IsValid() {
		metrics.LoadFallbacksTotal.WithLabelValues(key.String(), "unknown_key").Inc()
		log.Warnf("load of unknown key; using fallback")
		return fallback
	}

	raw, ok, err := s.kv.Get(ctx, key.String())
	if err != nil {
		metrics.LoadFallbacksTotal.WithLabelValues(key.String(), "read_error").Inc()
		log.WithError(err).Warnf("read failed; using fallback")
		return fallback
	}
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" || raw == "null" {
		metrics.LoadFallbacksTotal.WithLabelValues(key.String(), "absent").Inc()
		log.Debugf("no stored value; using fallback")
		return fallback
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		metrics.LoadFallbacksTotal.WithLabelValues(key.String(), "decode_error").Inc()
		log.WithError(err).Warnf("stored value is not valid; using fallback")
		return fallback
	}
	return v
}

// SaveItem serializes value and overwrites whatever key held.
func SaveItem[T any](ctx context.Context, s *Storage, key entities.StorageKey, value T) error {
	if !key.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownStorageKey, key)
	}
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key.String(), string(b)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
