// db/redis.go
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/logging"
)

var RedisClient *redis.Client

func InitRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

// RedisRateLimiter is a sliding-window limiter shared by every gateway
// instance pointing at the same Redis.
type RedisRateLimiter struct {
	Client redis.Cmdable
	Limit  int
	Per    time.Duration
}

func NewRedisRateLimiter(client redis.Cmdable, limit int, per time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{Client: client, Limit: limit, Per: per}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	pipe := l.Client.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-l.Per.Nanoseconds()))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: fmt.Sprintf("%d-%s", now, uuid.NewString())})
	card := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, l.Per)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := card.Val()
	allowed := count <= int64(l.Limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", l.Limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}
