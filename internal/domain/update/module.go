package update

import (
	"serial_novel/internal/domain/update/handler"
	"serial_novel/internal/domain/update/repository"
	"serial_novel/internal/domain/update/service"
	"serial_novel/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// UpdateModule 社区动态模块
type UpdateModule struct{}

func init() {
	registry.Register(&UpdateModule{})
}

func (m *UpdateModule) Name() string {
	return "update"
}

func (m *UpdateModule) Priority() int {
	return 10
}

func (m *UpdateModule) Init(ctx *registry.ModuleContext) error {
	repo := repository.NewUpdateRepository(ctx.DB, ctx.Reader)
	h := handler.NewUpdateHandler(service.NewUpdateService(repo))

	setupRoutes(ctx.Router, h)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.UpdateHandler) {
	r.GET("/update", h.List)
	r.GET("/update_news/:id", h.Get)
	r.POST("/update_news/comment", h.AddComment)
}
