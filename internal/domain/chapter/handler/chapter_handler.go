package handler

import (
	"serial_novel/internal/domain/chapter/service"
	"serial_novel/pkg/response"

	"github.com/gin-gonic/gin"
)

type ChapterHandler struct {
	service service.ChapterService
}

func NewChapterHandler(s service.ChapterService) *ChapterHandler {
	return &ChapterHandler{service: s}
}

// Overview 书籍概要
// @Summary 书籍概要
// @Tags Chapter
// @Produce json
// @Success 200 {object} model.Overview
// @Router /book1 [get]
func (h *ChapterHandler) Overview(c *gin.Context) {
	ov, err := h.service.Overview(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, ov)
}

// List 章节目录
// @Summary 章节目录
// @Tags Chapter
// @Produce json
// @Success 200 {object} model.ChapterList
// @Router /book1/chapters [get]
func (h *ChapterHandler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, list)
}

// Read 阅读章节
// @Summary 阅读章节
// @Tags Chapter
// @Produce json
// @Param chapter_no query int true "章节号"
// @Success 200 {object} model.ChapterDetail
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /read_chapter [get]
func (h *ChapterHandler) Read(c *gin.Context) {
	detail, err := h.service.Get(c.Request.Context(), c.Query("chapter_no"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, detail)
}
