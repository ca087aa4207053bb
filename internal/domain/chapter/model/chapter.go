package model

import (
	"fmt"

	"serial_novel/pkg/model"
)

// Chapter 章节，正文以 Google Drive 文件的形式嵌入
type Chapter struct {
	model.BaseModel
	ChapterNo   int64  `gorm:"uniqueIndex;not null" db:"chapter_no" json:"chapter_no"`
	Title       string `gorm:"size:200" db:"title" json:"title"`
	DriveFileID string `gorm:"size:128;not null" db:"drive_file_id" json:"drive_file_id"`
}

func (Chapter) TableName() string {
	return "chapters"
}

// EmbedURL Drive 预览地址
func (c Chapter) EmbedURL() string {
	return fmt.Sprintf("https://drive.google.com/file/d/%s/preview", c.DriveFileID)
}

// ChapterView 列表项，附带发布时间的相对描述
type ChapterView struct {
	Chapter
	DaysAgo string `json:"days_ago"`
}

// ChapterList 章节目录
type ChapterList struct {
	Chapters []ChapterView `json:"chapters"`
	Total    int           `json:"total_chapters"`
	Latest   *ChapterView  `json:"latest_chapter"`
}

// Overview 书籍首页概要
type Overview struct {
	TotalChapters int      `json:"total_chapters"`
	LatestChapter *Chapter `json:"latest_chapter"`
	DaysAgoText   string   `json:"days_ago_text"`
}

// ChapterDetail 阅读页
type ChapterDetail struct {
	Chapter
	PDFEmbedURL string `json:"pdf_embed_url"`
}
