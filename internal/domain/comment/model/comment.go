package model

import (
	"serial_novel/internal/pkg/thread"
	"serial_novel/pkg/model"
)

// Comment 章节评论，ParentID 非空时为回复
// 回复只挂在一级评论下，ParentID 永远指向一级评论
type Comment struct {
	model.BaseModel
	ChapterNo int64  `gorm:"index;not null" db:"chapter_no" json:"chapter_no"`
	Name      string `gorm:"size:60;not null" db:"name" json:"name"`
	Content   string `gorm:"type:text;not null" db:"content" json:"content"`
	ParentID  *int64 `gorm:"index" db:"parent_id" json:"parent_id"`
	Likes     int64  `gorm:"not null;default:0" db:"likes" json:"likes"`
}

func (Comment) TableName() string {
	return "chapter_comments"
}

func (c Comment) RowID() int64            { return c.ID }
func (c Comment) RowKind() model.ItemKind { return model.KindComment }

func (c Comment) RowParentID() int64 {
	if c.ParentID == nil {
		return 0
	}
	return *c.ParentID
}

// CommentNode 评论树节点
type CommentNode = thread.Node[Comment, Comment]
