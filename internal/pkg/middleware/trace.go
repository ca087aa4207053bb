package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader 请求追踪头
const RequestIDHeader = "X-Request-ID"

// requestIDKey gin.Context 中保存请求 ID 的键
const requestIDKey = "RequestID"

// TraceMiddleware 为每个请求分配追踪 ID，上游已带则沿用
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}

// RequestID 读取当前请求的追踪 ID
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
