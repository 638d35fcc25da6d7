package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/config"
)

// ErrNil 键不存在
var ErrNil = goredis.Nil

// Client Redis 客户端封装
// 用于持久化网关的槽位读写与登录限流
type Client struct {
	rdb    goredis.UniversalClient
	prefix string
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, prefix: cfg.KeyPrefix, logger: logger}, nil
}

// ── 槽位读写 ──

const slotPrefix = "slot:"

// GetSlot 读取槽位；不存在时返回 ErrNil
func (c *Client) GetSlot(ctx context.Context, key string) ([]byte, error) {
	return c.rdb.Get(ctx, c.prefix+slotPrefix+key).Bytes()
}

// SetSlot 写入槽位，不设过期
func (c *Client) SetSlot(ctx context.Context, key string, value []byte) error {
	return c.rdb.Set(ctx, c.prefix+slotPrefix+key, value, 0).Err()
}

// DeleteSlot 删除槽位
func (c *Client) DeleteSlot(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, c.prefix+slotPrefix+key).Err()
}

// ── 限流 ──

const rateLimitPrefix = "rate_limit:"

// CheckRateLimit 滑动窗口计数：窗口内请求数未达 limit 时放行并记录本次请求
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := time.Now().UnixNano()
	fullKey := c.prefix + rateLimitPrefix + key

	pipe := c.rdb.TxPipeline()
	pipe.ZRemRangeByScore(ctx, fullKey, "0", strconv.FormatInt(now-window.Nanoseconds(), 10))
	card := pipe.ZCard(ctx, fullKey)
	pipe.ZAdd(ctx, fullKey, goredis.Z{Score: float64(now), Member: now})
	pipe.Expire(ctx, fullKey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	return card.Val() < int64(limit), nil
}

// IsNil 判断是否为键不存在
func IsNil(err error) bool {
	return errors.Is(err, goredis.Nil)
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}
