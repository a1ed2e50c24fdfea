package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"warehouse-route-service/internal/domain"
	"warehouse-route-service/internal/platform/obs"

	"github.com/redis/go-redis/v9"
)

const defaultRedisKeyPrefix = "warehouse-route"

// Redis-backed implementation of the WarehouseStore port.
//
// Each session is one list of JSON entries. Every add pushes the entry and
// refreshes the key TTL in a single MULTI/EXEC, so Redis drops the whole
// working set once the session has been idle for TTL.
type RedisWarehouseStore struct {
	Client redis.UniversalClient
	TTL    time.Duration
	Prefix string
}

func NewRedisWarehouseStore(client redis.UniversalClient, ttl time.Duration) *RedisWarehouseStore {
	return &RedisWarehouseStore{Client: client, TTL: ttl, Prefix: defaultRedisKeyPrefix}
}

func (s *RedisWarehouseStore) key(sessionID string) string {
	prefix := s.Prefix
	if prefix == "" {
		prefix = defaultRedisKeyPrefix
	}
	return fmt.Sprintf("%s:session:%s:warehouses", prefix, sessionID)
}

func (s *RedisWarehouseStore) AddWarehouse(ctx context.Context, sessionID string, w domain.Warehouse) (err error) {
	defer obs.Time(ctx, "store.redis.AddWarehouse")(&err)

	if s.Client == nil {
		return errors.New("redis warehouse store: client is nil")
	}
	if err := checkAdd(sessionID, w); err != nil {
		return err
	}

	payload, err := json.Marshal(toRecord(w))
	if err != nil {
		return fmt.Errorf("add warehouse: encode %q: %w", w.Name, err)
	}

	key := s.key(sessionID)
	pipe := s.Client.TxPipeline()
	pipe.RPush(ctx, key, payload)
	pipe.Expire(ctx, key, s.TTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("add warehouse: session %q: %w", sessionID, err)
	}

	return nil
}

func (s *RedisWarehouseStore) ListWarehouses(ctx context.Context, sessionID string) (_ []domain.Warehouse, err error) {
	defer obs.Time(ctx, "store.redis.ListWarehouses")(&err)

	if s.Client == nil {
		return nil, errors.New("redis warehouse store: client is nil")
	}
	if sessionID == "" {
		return nil, errors.New("list warehouses: session id must not be empty")
	}

	vals, err := s.Client.LRange(ctx, s.key(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list warehouses: session %q: %w", sessionID, err)
	}

	out := make([]domain.Warehouse, 0, len(vals))
	for i, v := range vals {
		var rec warehouseRecord
		if err := json.Unmarshal([]byte(v), &rec); err != nil {
			return nil, fmt.Errorf("list warehouses: decode entry %d of session %q: %w", i, sessionID, err)
		}
		out = append(out, rec.toDomain())
	}

	return out, nil
}

func (s *RedisWarehouseStore) ClearWarehouses(ctx context.Context, sessionID string) (err error) {
	defer obs.Time(ctx, "store.redis.ClearWarehouses")(&err)

	if s.Client == nil {
		return errors.New("redis warehouse store: client is nil")
	}
	if sessionID == "" {
		return errors.New("clear warehouses: session id must not be empty")
	}

	if err := s.Client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear warehouses: session %q: %w", sessionID, err)
	}
	return nil
}
