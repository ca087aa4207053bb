package repository

import (
	"context"
	"errors"

	"serial_novel/internal/domain/comment/model"
	"serial_novel/pkg/database"
	"serial_novel/pkg/errs"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id int64) (*model.Comment, error)
	// ListTopLevel 章节下的一级评论，按创建时间升序
	ListTopLevel(ctx context.Context, chapterNo int64) ([]model.Comment, error)
	// ListReplies 章节下的全部回复，按创建时间升序
	ListReplies(ctx context.Context, chapterNo int64) ([]model.Comment, error)
}

type commentRepository struct {
	db     *gorm.DB
	reader *sqlx.DB
}

func NewCommentRepository(db *gorm.DB, reader *sqlx.DB) CommentRepository {
	return &commentRepository{db: db, reader: reader}
}

var commentColumns = []string{"id", "chapter_no", "name", "content", "parent_id", "likes", "created_at"}

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return errs.Storage("create comment", err)
	}
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFound("comment", id)
	}
	if err != nil {
		return nil, errs.Storage("get comment", err)
	}
	return &comment, nil
}

func (r *commentRepository) ListTopLevel(ctx context.Context, chapterNo int64) ([]model.Comment, error) {
	return r.list(ctx, "list comments", sq.And{
		sq.Eq{"chapter_no": chapterNo},
		sq.Eq{"parent_id": nil},
	})
}

func (r *commentRepository) ListReplies(ctx context.Context, chapterNo int64) ([]model.Comment, error) {
	return r.list(ctx, "list replies", sq.And{
		sq.Eq{"chapter_no": chapterNo},
		sq.NotEq{"parent_id": nil},
	})
}

func (r *commentRepository) list(ctx context.Context, op string, where sq.Sqlizer) ([]model.Comment, error) {
	q := database.Builder.Select(commentColumns...).
		From(model.Comment{}.TableName()).
		Where(where).
		OrderBy("created_at ASC", "id ASC")

	comments := []model.Comment{}
	if err := database.SelectAll(ctx, r.reader, &comments, q); err != nil {
		return nil, errs.Storage(op, err)
	}
	return comments, nil
}
