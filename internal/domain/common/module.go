package common

import (
	"context"
	"net/http"
	"time"

	"serial_novel/internal/pkg/config"
	"serial_novel/internal/pkg/registry"
	"serial_novel/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// CommonModule 通用功能模块
type CommonModule struct{}

func init() {
	registry.Register(&CommonModule{})
}

func (m *CommonModule) Name() string {
	return "common"
}

func (m *CommonModule) Priority() int {
	return 100 // 最后初始化
}

func (m *CommonModule) Init(ctx *registry.ModuleContext) error {
	setupRoutes(ctx.Router, &healthChecker{db: ctx.DB, redis: ctx.Redis})
	return nil
}

func setupRoutes(r *gin.Engine, h *healthChecker) {
	r.GET("/health", h.Health)

	if config.GlobalConfig.Metrics.Enabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// 生产环境不暴露接口文档
	if config.GlobalConfig.Server.Mode != "release" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

type healthChecker struct {
	db    *gorm.DB
	redis *redis.Client
}

// HealthStatus 依赖检查结果
type HealthStatus struct {
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

// Health 健康检查
// @Summary 健康检查
// @Description 数据库不可用时返回 503，缓存不可用只降级
// @Tags Common
// @Produce json
// @Success 200 {object} HealthStatus
// @Router /health [get]
func (h *healthChecker) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := HealthStatus{Database: "up", Cache: "up"}
	if err := h.pingDB(ctx); err != nil {
		status.Database = "down"
	}
	if h.redis == nil {
		status.Cache = "disabled"
	} else if err := h.redis.Ping(ctx).Err(); err != nil {
		status.Cache = "degraded"
	}

	if status.Database != "up" {
		c.JSON(http.StatusServiceUnavailable, response.Response{
			Code:    response.ErrServerInternal,
			Message: "database unavailable",
			Data:    status,
		})
		return
	}
	response.Success(c, status)
}

func (h *healthChecker) pingDB(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
