package visitor

import (
	"net/http"
	"time"

	"serial_novel/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const markedValue = "true"

// CookieStore 基于请求 cookie 的标记存储
// 本次请求内的写入会覆盖请求里带来的旧值
type CookieStore struct {
	c       *gin.Context
	cfg     config.CookieConfig
	written map[string]bool
}

// NewCookieStore 创建 cookie 标记存储
func NewCookieStore(c *gin.Context, cfg config.CookieConfig) *CookieStore {
	if cfg.Path == "" {
		cfg.Path = "/"
	}
	return &CookieStore{c: c, cfg: cfg, written: make(map[string]bool)}
}

// FromContext 使用全局 cookie 配置
func FromContext(c *gin.Context) *CookieStore {
	return NewCookieStore(c, config.GlobalConfig.Cookie)
}

func (s *CookieStore) Has(key string) bool {
	if v, ok := s.written[key]; ok {
		return v
	}
	v, err := s.c.Cookie(CookieName(key))
	if err != nil {
		return false
	}
	return v == markedValue
}

func (s *CookieStore) Set(key string, ttl time.Duration) {
	if ttl <= 0 {
		ttl = s.cfg.MaxAge
	}
	if ttl <= 0 {
		ttl = MarkTTL
	}
	s.c.SetSameSite(http.SameSiteLaxMode)
	// 前端脚本需要读取该 cookie 以恢复按钮状态，因此不设置 HttpOnly
	s.c.SetCookie(CookieName(key), markedValue, int(ttl/time.Second), s.cfg.Path, s.cfg.Domain, s.cfg.Secure, false)
	s.written[key] = true
}

func (s *CookieStore) Clear(key string) {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(CookieName(key), "", -1, s.cfg.Path, s.cfg.Domain, s.cfg.Secure, false)
	s.written[key] = false
}
