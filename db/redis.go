// db/redis.go
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pcbinspect/client/config"
	logger "github.com/pcbinspect/client/logging"
)

const redisKeyPrefix = "pcbctl:"

// RedisStore keeps encrypted values in Redis, for terminals that share one session slot.
type RedisStore struct {
	client *redis.Client
	sealer *sealer
	ttl    time.Duration
}

func InitRedis(ctx context.Context, cfg config.RedisConfiguration, encryptionKey string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := client.Ping(pingCtx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	store, err := NewRedisStore(client, []byte(encryptionKey), cfg.SessionTTL)
	if err != nil {
		client.Close()
		return nil, err
	}

	logger.Info("Successfully connected to Redis", zap.String("addr", cfg.Addr))
	return store, nil
}

func NewRedisStore(client *redis.Client, encryptionKey []byte, ttl time.Duration) (*RedisStore, error) {
	s, err := newSealer(encryptionKey)
	if err != nil {
		return nil, err
	}
	return &RedisStore{client: client, sealer: s, ttl: ttl}, nil
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	encrypted, err := r.client.Get(ctx, redisKeyPrefix+key).Result()
	if err == redis.Nil {
		logger.Debug("Key not found in Redis", zap.String("key", key))
		return "", false, nil
	} else if err != nil {
		return "", false, storageErr("read", key, err)
	}

	plain, err := r.sealer.open(encrypted)
	if err != nil {
		return "", false, storageErr("decrypt", key, err)
	}
	return string(plain), true, nil
}

func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	encrypted, err := r.sealer.seal([]byte(value))
	if err != nil {
		return storageErr("encrypt", key, err)
	}
	if err := r.client.Set(ctx, redisKeyPrefix+key, encrypted, r.ttl).Err(); err != nil {
		return storageErr("write", key, err)
	}
	logger.Debug("Value stored in Redis", zap.String("key", key))
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return storageErr("delete", key, err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
