package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DC-NERI/innWise-sub001/services/logger"
)

// GetFromRedis loads a cached JSON value into dest.
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, dest interface{}) error {
	val, err := rdb.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// SetToRedis caches value as JSON with a TTL.
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, data, ttl).Err()
}

// DeleteFromRedis drops cache keys; used for invalidation after writes.
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return rdb.Del(ctx, keys...).Err()
}

// RoomBoardCacheKey is the cache key for a branch's room status board.
func RoomBoardCacheKey(tenantID, branchID uint) string {
	return fmt.Sprintf("roomboard:%d:%d", tenantID, branchID)
}

// RateListCacheKey is the cache key for a branch's active rate list.
func RateListCacheKey(tenantID, branchID uint) string {
	return fmt.Sprintf("rates:%d:%d", tenantID, branchID)
}

// BoardInvalidator drops the cached room status board for a branch. Every
// write that changes what the board shows (room assignment, check-in,
// checkout, cancellation, cleaning status, catalog edits) must call it after
// the commit so readers never sit on a stale board for the full TTL.
type BoardInvalidator interface {
	InvalidateRoomBoard(tenantID, branchID uint)
}

type redisBoardInvalidator struct {
	rdb    *redis.Client
	logger logger.Logger
}

// NewBoardInvalidator returns a BoardInvalidator backed by rdb. A nil client
// yields a no-op, for deployments running without Redis.
func NewBoardInvalidator(rdb *redis.Client, log logger.Logger) BoardInvalidator {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &redisBoardInvalidator{rdb: rdb, logger: log}
}

func (i *redisBoardInvalidator) InvalidateRoomBoard(tenantID, branchID uint) {
	if i.rdb == nil {
		return
	}
	if err := DeleteFromRedis(context.Background(), i.rdb, RoomBoardCacheKey(tenantID, branchID)); err != nil {
		i.logger.Error("failed to invalidate room board cache: %v", err)
	}
}

type noopBoardInvalidator struct{}

func (noopBoardInvalidator) InvalidateRoomBoard(tenantID, branchID uint) {}
