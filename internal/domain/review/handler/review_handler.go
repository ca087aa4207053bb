package handler

import (
	"net/http"

	"serial_novel/internal/domain/review/service"
	"serial_novel/internal/pkg/visitor"
	"serial_novel/pkg/response"
	"serial_novel/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	service service.ReviewService
}

func NewReviewHandler(s service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: s}
}

// ReviewInput 书评输入，chapter 由表单取值，前端以字符串提交
type ReviewInput struct {
	Chapter string `json:"chapter" form:"chapter"`
	Author  string `json:"author" form:"author"`
	Content string `json:"content" form:"content"`
	Stars   int    `json:"stars" form:"stars"`
}

// ReplyInput 书评回复输入
type ReplyInput struct {
	ReviewSNo string `json:"review_s_no" form:"review_s_no"`
	Name      string `json:"name" form:"name"`
	Content   string `json:"content" form:"content"`
}

// List 书评列表
// @Summary 书评列表
// @Description 最新书评在前，回复按时间升序
// @Tags Review
// @Produce json
// @Success 200 {object} model.ReviewPage
// @Router /book1/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	page, err := h.service.ListReviews(c.Request.Context(), visitor.FromContext(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, page)
}

// Create 发表书评，直接返回新书评
// @Summary 发表书评
// @Tags Review
// @Accept json
// @Produce json
// @Param input body ReviewInput true "书评"
// @Success 201 {object} model.Review
// @Router /book1/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var input ReviewInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}
	chapterNo, err := utils.ParseID("chapter", input.Chapter)
	if err != nil {
		response.FromError(c, err)
		return
	}

	review, err := h.service.CreateReview(c.Request.Context(), service.ReviewInput{
		ChapterNo: chapterNo,
		Author:    input.Author,
		Content:   input.Content,
		Stars:     input.Stars,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// Reply 回复书评
// @Summary 回复书评
// @Tags Review
// @Accept x-www-form-urlencoded
// @Produce json
// @Param review_s_no formData int true "书评ID"
// @Param name formData string true "昵称"
// @Param content formData string true "内容"
// @Success 200 {object} map[string]interface{}
// @Router /book1/reviews/reply [post]
func (h *ReviewHandler) Reply(c *gin.Context) {
	var input ReplyInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}
	reviewID, err := utils.ParseID("review_s_no", input.ReviewSNo)
	if err != nil {
		response.Failure(c, err)
		return
	}

	reply, err := h.service.CreateReply(c.Request.Context(), service.ReplyInput{
		ReviewID: reviewID,
		Name:     input.Name,
		Content:  input.Content,
	})
	if err != nil {
		response.Failure(c, err)
		return
	}
	response.OK(c, gin.H{"reply": reply})
}
