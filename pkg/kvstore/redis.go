package kvstore

import (
	"context"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/redis"
)

// Redis 基于 Redis 字符串键的实现
type Redis struct {
	client *redis.Client
}

// NewRedis 创建 Redis 网关
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.client.GetSlot(ctx, key)
	if redis.IsNil(err) {
		return nil, ErrSlotNotFound
	}
	return v, err
}

func (r *Redis) Put(ctx context.Context, key string, value []byte) error {
	return r.client.SetSlot(ctx, key, value)
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.DeleteSlot(ctx, key)
}

// Close 不关闭共享客户端，由创建方负责
func (r *Redis) Close() error { return nil }
