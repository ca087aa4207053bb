// Package visitor 保存匿名访客的点赞标记
//
// 站点没有账号体系，"是否已点赞" 只存在访客自己的 cookie 里。
// 清除 cookie 或换浏览器都会重置点赞状态，这是接受的取舍。
package visitor

import (
	"strconv"
	"strings"
	"time"

	"serial_novel/pkg/model"
)

// MarkTTL 点赞标记的默认有效期
const MarkTTL = 365 * 24 * time.Hour

// MarkKey 逻辑键: kind + ":" + id
func MarkKey(kind model.ItemKind, id int64) string {
	return string(kind) + ":" + strconv.FormatInt(id, 10)
}

// CookieName cookie 名不允许出现 ':'，换成 liked_<kind>_<id>
func CookieName(key string) string {
	return "liked_" + strings.ReplaceAll(key, ":", "_")
}

// MarkReader 只读访问，构建评论树时使用
type MarkReader interface {
	// Has 缺失的标记等同于 false
	Has(key string) bool
}

// MarkStore 点赞切换时需要写回标记
type MarkStore interface {
	MarkReader
	Set(key string, ttl time.Duration)
	Clear(key string)
}

// Liked 便捷函数，nil reader 视为没有任何标记
func Liked(r MarkReader, kind model.ItemKind, id int64) bool {
	if r == nil {
		return false
	}
	return r.Has(MarkKey(kind, id))
}
