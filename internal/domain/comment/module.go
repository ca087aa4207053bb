package comment

import (
	chapterRepo "serial_novel/internal/domain/chapter/repository"
	"serial_novel/internal/domain/comment/handler"
	"serial_novel/internal/domain/comment/repository"
	"serial_novel/internal/domain/comment/service"
	"serial_novel/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// CommentModule 章节评论模块
type CommentModule struct{}

func init() {
	registry.Register(&CommentModule{})
}

func (m *CommentModule) Name() string {
	return "comment"
}

func (m *CommentModule) Priority() int {
	return 10
}

func (m *CommentModule) Init(ctx *registry.ModuleContext) error {
	// 1. 依赖注入
	repo := repository.NewCommentRepository(ctx.DB, ctx.Reader)
	chapters := chapterRepo.NewChapterRepository(ctx.DB, ctx.Reader)
	svc := service.NewCommentService(repo, chapters)
	h := handler.NewCommentHandler(svc)

	// 2. 路由注册
	setupRoutes(ctx.Router, h)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.CommentHandler) {
	g := r.Group("/read_chapter")
	g.GET("/comments/:chapter_no", h.GetTree)
	g.POST("/comment", h.AddComment)
	g.POST("/reply", h.AddReply)
}
