package review

import (
	chapterRepo "serial_novel/internal/domain/chapter/repository"
	"serial_novel/internal/domain/review/handler"
	"serial_novel/internal/domain/review/repository"
	"serial_novel/internal/domain/review/service"
	"serial_novel/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// ReviewModule 书评模块
type ReviewModule struct{}

func init() {
	registry.Register(&ReviewModule{})
}

func (m *ReviewModule) Name() string {
	return "review"
}

func (m *ReviewModule) Priority() int {
	return 10
}

func (m *ReviewModule) Init(ctx *registry.ModuleContext) error {
	repo := repository.NewReviewRepository(ctx.DB, ctx.Reader)
	chapters := chapterRepo.NewChapterRepository(ctx.DB, ctx.Reader)
	h := handler.NewReviewHandler(service.NewReviewService(repo, chapters))

	setupRoutes(ctx.Router, h)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.ReviewHandler) {
	g := r.Group("/book1/reviews")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.POST("/reply", h.Reply)
}
