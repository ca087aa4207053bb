package model

import "serial_novel/pkg/errs"

// ItemKind 可点赞内容的类型
type ItemKind string

const (
	KindComment       ItemKind = "comment"        // 章节评论及其回复
	KindReview        ItemKind = "review"         // 书评
	KindReviewReply   ItemKind = "review_reply"   // 书评回复
	KindUpdate        ItemKind = "update"         // 社区动态
	KindUpdateComment ItemKind = "update_comment" // 动态评论
)

// 每种类型对应唯一一张表，表名只来自这里，不会拼接用户输入
var kindTables = map[ItemKind]string{
	KindComment:       "chapter_comments",
	KindReview:        "reviews",
	KindReviewReply:   "review_replies",
	KindUpdate:        "updates",
	KindUpdateComment: "update_comments",
}

// Table 返回类型对应的表名
func (k ItemKind) Table() (string, bool) {
	t, ok := kindTables[k]
	return t, ok
}

// Valid 是否为已知类型
func (k ItemKind) Valid() bool {
	_, ok := kindTables[k]
	return ok
}

// ParseItemKind 解析类型字符串
func ParseItemKind(s string) (ItemKind, error) {
	k := ItemKind(s)
	if !k.Valid() {
		return "", errs.Invalid("unknown item kind %q", s)
	}
	return k, nil
}
