package handler

import (
	"net/http"

	"serial_novel/internal/domain/update/service"
	"serial_novel/internal/pkg/visitor"
	"serial_novel/pkg/response"

	"github.com/gin-gonic/gin"
)

type UpdateHandler struct {
	service service.UpdateService
}

func NewUpdateHandler(s service.UpdateService) *UpdateHandler {
	return &UpdateHandler{service: s}
}

// CommentInput 动态评论输入
type CommentInput struct {
	UpdateID int64  `json:"update_id" form:"update_id" binding:"required"`
	Name     string `json:"name" form:"name"`
	Content  string `json:"content" form:"content"`
}

// List 动态列表
// @Summary 社区动态
// @Tags Update
// @Produce json
// @Success 200 {array} model.UpdateSummary
// @Router /update [get]
func (h *UpdateHandler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context(), visitor.FromContext(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, list)
}

// Get 动态详情
// @Summary 动态详情
// @Tags Update
// @Produce json
// @Param id path int true "动态ID"
// @Success 200 {object} model.UpdateDetail
// @Router /update_news/{id} [get]
func (h *UpdateHandler) Get(c *gin.Context) {
	detail, err := h.service.Get(c.Request.Context(), c.Param("id"), visitor.FromContext(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, detail)
}

// AddComment 评论动态，返回新评论供前端直接插入
// @Summary 评论动态
// @Tags Update
// @Accept json
// @Produce json
// @Param input body CommentInput true "评论"
// @Success 201 {object} model.UpdateComment
// @Router /update_news/comment [post]
func (h *UpdateHandler) AddComment(c *gin.Context) {
	var input CommentInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), service.CommentInput{
		UpdateID: input.UpdateID,
		Name:     input.Name,
		Content:  input.Content,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, comment)
}
