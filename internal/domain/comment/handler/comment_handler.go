package handler

import (
	"net/http"

	"serial_novel/internal/domain/comment/service"
	"serial_novel/internal/pkg/visitor"
	"serial_novel/pkg/response"
	"serial_novel/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	service service.CommentService
}

func NewCommentHandler(s service.CommentService) *CommentHandler {
	return &CommentHandler{service: s}
}

// CommentInput 发表评论输入
type CommentInput struct {
	ChapterNo int64  `json:"chapter_no" form:"chapter_no" binding:"required"`
	Name      string `json:"name" form:"name"`
	Content   string `json:"content" form:"content"`
}

// ReplyInput 回复输入
type ReplyInput struct {
	CommentID int64  `json:"comment_id" form:"comment_id" binding:"required"`
	Name      string `json:"name" form:"name"`
	Content   string `json:"content" form:"content"`
}

// GetTree 章节评论树
// @Summary 章节评论
// @Description 一级评论按时间升序，回复挂在一级评论下，liked 来自访客 cookie
// @Tags Comment
// @Produce json
// @Param chapter_no path int true "章节号"
// @Success 200 {array} model.CommentNode
// @Router /read_chapter/comments/{chapter_no} [get]
func (h *CommentHandler) GetTree(c *gin.Context) {
	chapterNo, err := utils.ParseID("chapter_no", c.Param("chapter_no"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	tree, err := h.service.BuildCommentTree(c.Request.Context(), chapterNo, visitor.FromContext(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, tree)
}

// AddComment 发表评论
// @Summary 发表评论
// @Tags Comment
// @Accept json
// @Produce json
// @Param input body CommentInput true "评论内容"
// @Success 201 {object} model.Comment
// @Router /read_chapter/comment [post]
func (h *CommentHandler) AddComment(c *gin.Context) {
	var input CommentInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), service.CommentInput{
		ChapterNo: input.ChapterNo,
		Name:      input.Name,
		Content:   input.Content,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, comment)
}

// AddReply 回复评论
// @Summary 回复评论
// @Tags Comment
// @Accept json
// @Produce json
// @Param input body ReplyInput true "回复内容"
// @Success 201 {object} model.Comment
// @Router /read_chapter/reply [post]
func (h *CommentHandler) AddReply(c *gin.Context) {
	var input ReplyInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	reply, err := h.service.AddReply(c.Request.Context(), service.ReplyInput{
		CommentID: input.CommentID,
		Name:      input.Name,
		Content:   input.Content,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, reply)
}
