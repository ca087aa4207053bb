package response

import (
	"errors"
	"net/http"

	"serial_novel/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`    // 业务码
	Message string      `json:"message"` // 提示信息
	Data    interface{} `json:"data"`    // 数据
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Message: "success",
		Data:    data,
	})
}

// Created 创建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    CodeSuccess,
		Message: "success",
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, httpCode int, errCode int, msg string) {
	c.JSON(httpCode, Response{
		Code:    errCode,
		Message: msg,
		Data:    nil,
	})
}

// FromError 按错误分类选择 HTTP 状态与业务码
func FromError(c *gin.Context, err error) {
	status, code := Classify(err)
	Error(c, status, code, messageOf(status, err))
}

// Classify 错误 -> (HTTP 状态, 业务码)
func Classify(err error) (int, int) {
	switch {
	case errors.Is(err, errs.ErrInvalidArgument):
		return http.StatusBadRequest, ErrInvalidParam
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, ErrNotFound
	default:
		return http.StatusInternalServerError, ErrServerInternal
	}
}

// 存储错误不把驱动信息暴露给访客
func messageOf(status int, err error) string {
	if status == http.StatusInternalServerError {
		return "Server error"
	}
	return err.Error()
}

// --- 前端脚本直接读取 success 字段的接口 ---

// OK 写出 {"success": true, ...fields}
func OK(c *gin.Context, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Failure 写出 {"success": false, "message": ...}，状态码由错误分类决定
func Failure(c *gin.Context, err error) {
	status, _ := Classify(err)
	c.JSON(status, gin.H{
		"success": false,
		"message": messageOf(status, err),
	})
}
