package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Enabled 是否启用了 Redis
func Enabled() bool {
	return Rdb != nil
}

// SetWithExpiration 设置键值对并设置过期时间
func SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if Rdb == nil {
		return nil
	}
	return Rdb.Set(ctx, key, value, expiration).Err()
}

// GetValue 获取字符串类型的值，键不存在时返回空串
func GetValue(ctx context.Context, key string) (string, error) {
	if Rdb == nil {
		return "", nil
	}
	value, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// GetBytes 获取原始字节，键不存在时返回 nil
func GetBytes(ctx context.Context, key string) ([]byte, error) {
	if Rdb == nil {
		return nil, nil
	}
	value, err := Rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return value, nil
}

// DeleteKey 删除一个或多个键
func DeleteKey(ctx context.Context, keys ...string) error {
	if Rdb == nil || len(keys) == 0 {
		return nil
	}
	return Rdb.Del(ctx, keys...).Err()
}

// Incr 对多个计数器加一
func Incr(ctx context.Context, keys ...string) error {
	if Rdb == nil || len(keys) == 0 {
		return nil
	}
	pipe := Rdb.Pipeline()
	for _, key := range keys {
		pipe.Incr(ctx, key)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// GetRdbClient 获取redis客户端
func GetRdbClient() *redis.Client {
	return Rdb
}
