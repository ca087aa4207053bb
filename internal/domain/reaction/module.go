package reaction

import (
	"serial_novel/internal/domain/reaction/handler"
	"serial_novel/internal/domain/reaction/repository"
	"serial_novel/internal/domain/reaction/service"
	"serial_novel/internal/pkg/config"
	"serial_novel/internal/pkg/registry"
	"serial_novel/pkg/model"

	"github.com/gin-gonic/gin"
)

// ReactionModule 点赞模块
type ReactionModule struct{}

func init() {
	registry.Register(&ReactionModule{})
}

func (m *ReactionModule) Name() string {
	return "reaction"
}

func (m *ReactionModule) Priority() int {
	return 10
}

func (m *ReactionModule) Init(ctx *registry.ModuleContext) error {
	// 1. 依赖注入
	repo := repository.NewLedgerRepository(ctx.DB)
	svc := service.NewLedgerService(repo, config.GlobalConfig.Cookie.MaxAge)
	h := handler.NewReactionHandler(svc)

	// 2. 路由注册
	setupRoutes(ctx.Router, h)

	return nil
}

// 路径沿用站点前端脚本里写死的地址
func setupRoutes(r *gin.Engine, h *handler.ReactionHandler) {
	r.POST("/read_chapter/like/:id", h.Toggle(model.KindComment))
	r.POST("/book1/reviews/like/:id", h.Toggle(model.KindReview))
	r.POST("/book1/reviews/reply/like/:id", h.Toggle(model.KindReviewReply))
	r.POST("/update/like/:id", h.Toggle(model.KindUpdate))
	r.POST("/update_news/like/:id", h.Toggle(model.KindUpdateComment))

	r.GET("/reactions/:kind/:id", h.GetState)
}
