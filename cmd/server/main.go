package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "serial_novel/docs"
	_ "serial_novel/internal/domain/chapter"
	_ "serial_novel/internal/domain/comment"
	_ "serial_novel/internal/domain/common"
	_ "serial_novel/internal/domain/reaction"
	_ "serial_novel/internal/domain/review"
	_ "serial_novel/internal/domain/update"
	"serial_novel/internal/pkg/config"
	"serial_novel/internal/pkg/middleware"
	"serial_novel/internal/pkg/registry"
	"serial_novel/pkg/database"
	"serial_novel/pkg/logger"
	"serial_novel/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title Serial Novel API
// @version 1.0
// @description 连载小说站点接口：章节、评论、书评、动态与点赞
// @BasePath /
func main() {
	// 1. 配置与日志
	config.LoadConfig()
	cfg := config.GlobalConfig

	if err := logger.Init(cfg.Server.Mode, cfg.App.Debug); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	// 2. 存储
	db := database.InitDatabase()
	reader := database.InitReader(db)
	rdb := database.InitRedis()

	// 3. 路由与中间件
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowOrigins))
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metrics.GetGlobalCollector()))
		registerPoolStats(db, reader)
	}

	// 4. 模块注册
	if err := registry.InitModules(&registry.ModuleContext{
		DB:     db,
		Reader: reader,
		Redis:  rdb,
		Router: r,
	}); err != nil {
		logger.L().Fatal("failed to init modules", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.L().Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Error("forced shutdown", zap.Error(err))
	}

	if err := rdb.Close(); err != nil {
		logger.L().Warn("redis close", zap.Error(err))
	}
	if err := reader.Close(); err != nil {
		logger.L().Warn("reader close", zap.Error(err))
	}
	logger.L().Info("server exited")
}

// registerPoolStats 导出写库与只读库的连接池指标
func registerPoolStats(db *gorm.DB, reader *sqlx.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.L().Warn("pool stats unavailable", zap.Error(err))
		return
	}
	if err := database.RegisterPoolStats(prometheus.DefaultRegisterer, "writer", sqlDB); err != nil {
		logger.L().Warn("pool stats unavailable", zap.Error(err))
	}
	// 未配置副本时 reader 与写库共用连接池
	if reader.DB == sqlDB {
		return
	}
	if err := database.RegisterPoolStats(prometheus.DefaultRegisterer, "reader", reader.DB); err != nil {
		logger.L().Warn("pool stats unavailable", zap.Error(err))
	}
}
