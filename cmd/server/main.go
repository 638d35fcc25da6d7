package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/config"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/api/handler"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/api/middleware"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/api/router"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/repository"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/service"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/jwt"
	applogger "github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/logger"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load(os.Getenv("ROSTER_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("storage", cfg.Storage.Driver),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 打开持久化网关并加载全部槽位
	gw, rdb, err := openGateway(cfg, logger)
	if err != nil {
		logger.Fatal("持久化网关初始化失败", zap.Error(err))
	}

	store, err := repository.Open(context.Background(), gw)
	if err != nil {
		logger.Fatal("加载数据失败", zap.Error(err))
	}
	counts := store.Counts()
	logger.Info("数据加载完成",
		zap.Int("staff", counts[repository.SlotStaff]),
		zap.Int("shifts", counts[repository.SlotShifts]),
		zap.Int("assignments", counts[repository.SlotAssignments]),
		zap.Int("users", counts[repository.SlotUsers]),
	)

	// 4. 初始化 JWT 管理器
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 5. 依赖注入: Repository → Service → Handler
	repo := repository.NewRepository(store)
	svc, err := service.NewService(cfg, repo, jwtMgr, logger)
	if err != nil {
		logger.Fatal("初始化业务层失败", zap.Error(err))
	}
	h := handler.NewHandler(svc, handler.NewHealthHandler(cfg.Storage.Driver, store))

	// 6. 初始化路由
	var limiter middleware.RateLimiter
	if rdb != nil {
		limiter = rdb
	}
	gin.SetMode(gin.ReleaseMode)
	engine := router.Setup(cfg, h, svc.Auth, limiter, logger)

	// 7. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 8. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	// 关闭持久化网关
	if err := gw.Close(); err != nil {
		logger.Error("关闭持久化网关失败", zap.Error(err))
	}

	// 关闭 Redis 连接
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("服务器已关闭")
}
