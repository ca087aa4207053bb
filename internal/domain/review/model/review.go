package model

import (
	"serial_novel/internal/pkg/thread"
	"serial_novel/pkg/model"
)

// Review 书评
type Review struct {
	model.BaseModel
	ChapterNo int64  `gorm:"index;not null" db:"chapter_no" json:"chapter_no"`
	Name      string `gorm:"size:60;not null" db:"name" json:"name"`
	Review    string `gorm:"type:text;not null" db:"review" json:"review"`
	Stars     int    `gorm:"not null" db:"stars" json:"stars"`
	Likes     int64  `gorm:"not null;default:0" db:"likes" json:"likes"`
}

func (Review) TableName() string {
	return "reviews"
}

func (r Review) RowID() int64            { return r.ID }
func (r Review) RowKind() model.ItemKind { return model.KindReview }

// ReviewReply 书评回复
type ReviewReply struct {
	model.BaseModel
	ReviewID int64  `gorm:"index;not null" db:"review_id" json:"review_id"`
	Name     string `gorm:"size:60;not null" db:"name" json:"name"`
	Content  string `gorm:"type:text;not null" db:"content" json:"content"`
	Likes    int64  `gorm:"not null;default:0" db:"likes" json:"likes"`
}

func (ReviewReply) TableName() string {
	return "review_replies"
}

func (r ReviewReply) RowID() int64            { return r.ID }
func (r ReviewReply) RowKind() model.ItemKind { return model.KindReviewReply }
func (r ReviewReply) RowParentID() int64      { return r.ReviewID }

// ReviewNode 书评及其回复
type ReviewNode = thread.Node[Review, ReviewReply]

// ReviewPage 书评页
type ReviewPage struct {
	Reviews      []ReviewNode `json:"reviews"`
	Total        int          `json:"total"`
	AverageStars float64      `json:"average_stars"`
}

// 星级范围
const (
	MinStars = 1
	MaxStars = 5
)
