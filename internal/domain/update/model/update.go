package model

import (
	"serial_novel/pkg/model"
)

// Update 社区动态（作者公告）
type Update struct {
	model.BaseModel
	Title   string `gorm:"size:200;not null" db:"title" json:"title"`
	Content string `gorm:"type:text;not null" db:"content" json:"content"`
	Likes   int64  `gorm:"not null;default:0" db:"likes" json:"likes"`
}

func (Update) TableName() string {
	return "updates"
}

// UpdateComment 动态下的评论，只有一层
type UpdateComment struct {
	model.BaseModel
	UpdateID int64  `gorm:"index;not null" db:"update_id" json:"update_id"`
	Name     string `gorm:"size:60;not null" db:"name" json:"name"`
	Content  string `gorm:"type:text;not null" db:"content" json:"content"`
	Likes    int64  `gorm:"not null;default:0" db:"likes" json:"likes"`
}

func (UpdateComment) TableName() string {
	return "update_comments"
}

// PreviewLen 列表页正文预览长度
const PreviewLen = 160

// UpdateSummary 动态列表项
type UpdateSummary struct {
	Update
	DaysAgo string `json:"days_ago"`
	Preview string `json:"preview"`
	Liked   bool   `json:"liked"`
}

// CommentView 动态评论
type CommentView struct {
	UpdateComment
	Date  string `json:"date"`
	Liked bool   `json:"liked"`
}

// UpdateDetail 动态详情页
type UpdateDetail struct {
	Update
	Date     string        `json:"date"`
	DaysAgo  string        `json:"days_ago"`
	Liked    bool          `json:"liked"`
	Comments []CommentView `json:"comments"`
}
