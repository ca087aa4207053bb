package repository

import (
	"context"
	"errors"

	"serial_novel/internal/domain/chapter/model"
	"serial_novel/pkg/database"
	"serial_novel/pkg/errs"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

type ChapterRepository interface {
	// ListAll 按发布时间升序返回全部章节
	ListAll(ctx context.Context) ([]model.Chapter, error)
	GetByNo(ctx context.Context, chapterNo int64) (*model.Chapter, error)
	Exists(ctx context.Context, chapterNo int64) (bool, error)
}

type chapterRepository struct {
	db     *gorm.DB
	reader *sqlx.DB
}

func NewChapterRepository(db *gorm.DB, reader *sqlx.DB) ChapterRepository {
	return &chapterRepository{db: db, reader: reader}
}

var chapterColumns = []string{"id", "chapter_no", "title", "drive_file_id", "created_at"}

func (r *chapterRepository) ListAll(ctx context.Context) ([]model.Chapter, error) {
	q := database.Builder.Select(chapterColumns...).
		From(model.Chapter{}.TableName()).
		OrderBy("created_at ASC", "id ASC")

	var chapters []model.Chapter
	if err := database.SelectAll(ctx, r.reader, &chapters, q); err != nil {
		return nil, errs.Storage("list chapters", err)
	}
	return chapters, nil
}

func (r *chapterRepository) GetByNo(ctx context.Context, chapterNo int64) (*model.Chapter, error) {
	var chapter model.Chapter
	err := r.db.WithContext(ctx).Where("chapter_no = ?", chapterNo).First(&chapter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFound("chapter", chapterNo)
	}
	if err != nil {
		return nil, errs.Storage("get chapter", err)
	}
	return &chapter, nil
}

func (r *chapterRepository) Exists(ctx context.Context, chapterNo int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Chapter{}).Where("chapter_no = ?", chapterNo).Count(&count).Error
	if err != nil {
		return false, errs.Storage("check chapter", err)
	}
	return count > 0, nil
}
