package handler

import (
	"serial_novel/internal/domain/reaction/service"
	"serial_novel/internal/pkg/visitor"
	"serial_novel/pkg/model"
	"serial_novel/pkg/response"

	"github.com/gin-gonic/gin"
)

type ReactionHandler struct {
	service service.LedgerService
	marks   func(c *gin.Context) visitor.MarkStore
}

func NewReactionHandler(s service.LedgerService) *ReactionHandler {
	return &ReactionHandler{
		service: s,
		marks:   func(c *gin.Context) visitor.MarkStore { return visitor.FromContext(c) },
	}
}

// Toggle 返回指定类型的点赞切换处理函数
// @Summary 点赞 / 取消点赞
// @Description 根据访客 cookie 决定方向，成功后写回 liked_<kind>_<id> cookie
// @Tags Reaction
// @Produce json
// @Param id path int true "目标ID"
// @Success 200 {object} model.ToggleResult
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /read_chapter/like/{id} [post]
// @Router /book1/reviews/like/{id} [post]
// @Router /book1/reviews/reply/like/{id} [post]
// @Router /update/like/{id} [post]
// @Router /update_news/like/{id} [post]
func (h *ReactionHandler) Toggle(kind model.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := h.service.ToggleLike(c.Request.Context(), kind, c.Param("id"), h.marks(c))
		if err != nil {
			response.Failure(c, err)
			return
		}
		response.OK(c, gin.H{"likes": res.Likes, "liked": res.Liked})
	}
}

// GetState 查询点赞状态
// @Summary 点赞状态
// @Tags Reaction
// @Produce json
// @Param kind path string true "comment | review | review_reply | update | update_comment"
// @Param id path int true "目标ID"
// @Success 200 {object} model.ToggleResult
// @Router /reactions/{kind}/{id} [get]
func (h *ReactionHandler) GetState(c *gin.Context) {
	kind, err := model.ParseItemKind(c.Param("kind"))
	if err != nil {
		response.Failure(c, err)
		return
	}

	res, err := h.service.GetState(c.Request.Context(), kind, c.Param("id"), h.marks(c))
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.OK(c, gin.H{"likes": res.Likes, "liked": res.Liked})
}
