package chapter

import (
	"context"

	"serial_novel/internal/domain/chapter/handler"
	"serial_novel/internal/domain/chapter/repository"
	"serial_novel/internal/domain/chapter/service"
	"serial_novel/internal/pkg/config"
	"serial_novel/internal/pkg/registry"
	"serial_novel/pkg/cache"
	"serial_novel/pkg/logger"

	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

// ChapterModule 章节模块
type ChapterModule struct{}

func init() {
	registry.Register(&ChapterModule{})
}

func (m *ChapterModule) Name() string {
	return "chapter"
}

func (m *ChapterModule) Priority() int {
	return 1
}

func (m *ChapterModule) Init(ctx *registry.ModuleContext) error {
	// 1. 依赖注入
	repo := repository.NewChapterRepository(ctx.DB, ctx.Reader)
	svc := service.NewChapterService(repo, newCache(ctx))
	h := handler.NewChapterHandler(svc)

	// 2. 路由注册
	setupRoutes(ctx.Router, h)

	// 3. 后台预热章节列表
	go func() {
		if err := cache.Warmup(context.Background(), "chapters", svc.Warm, cache.DefaultWarmupConfig()); err != nil {
			logger.L().Warn("chapter cache warmup skipped", zap.Error(err))
		}
	}()

	return nil
}

// 没有 Redis 时退回进程内缓存
func newCache(ctx *registry.ModuleContext) cache.CacheService {
	if ctx.Redis == nil {
		return cache.NewMemoryCache()
	}
	return cache.NewRedisCache(ctx.Redis, config.GlobalConfig.App.Env)
}

func setupRoutes(r *gin.Engine, h *handler.ChapterHandler) {
	r.GET("/book1", h.Overview)
	r.GET("/book1/chapters", h.List)
	r.GET("/read_chapter", h.Read)
}
