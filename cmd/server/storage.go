package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/config"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/database"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/kvstore"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/redis"
)

// openGateway 按 storage.driver 打开持久化网关
// 返回的 rdb 仅在 redis 驱动或启用限流时非 nil，由调用方关闭
func openGateway(cfg *config.Config, logger *zap.Logger) (kvstore.Gateway, *redis.Client, error) {
	var rdb *redis.Client
	if cfg.Storage.Driver == config.DriverRedis || cfg.RateLimit.Enabled {
		client, err := redis.NewClient(&cfg.Storage.Redis, logger)
		switch {
		case err == nil:
			rdb = client
		case cfg.Storage.Driver == config.DriverRedis:
			return nil, nil, err
		default:
			// 仅限流依赖 Redis 时降级运行
			logger.Warn("Redis 连接失败，登录限流将不可用", zap.Error(err))
		}
	}

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		logger.Warn("使用内存存储，进程退出后数据丢失")
		return kvstore.NewMemory(), rdb, nil

	case config.DriverFile:
		gw, err := kvstore.NewFile(cfg.Storage.Dir)
		if err != nil {
			return nil, rdb, err
		}
		logger.Info("使用文件存储", zap.String("dir", cfg.Storage.Dir))
		return gw, rdb, nil

	case config.DriverSQLite, config.DriverPostgres:
		db, err := database.NewDB(&cfg.Storage, cfg.Log.Level, logger)
		if err != nil {
			return nil, rdb, err
		}
		if err := database.Migrate(db, cfg.Storage.Driver, logger); err != nil {
			return nil, rdb, err
		}
		return kvstore.NewGorm(db), rdb, nil

	case config.DriverRedis:
		return kvstore.NewRedis(rdb), rdb, nil
	}

	return nil, rdb, fmt.Errorf("不支持的 storage.driver %q", cfg.Storage.Driver)
}
