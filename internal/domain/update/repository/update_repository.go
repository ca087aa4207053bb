package repository

import (
	"context"
	"errors"

	"serial_novel/internal/domain/update/model"
	"serial_novel/pkg/database"
	"serial_novel/pkg/errs"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

type UpdateRepository interface {
	// ListUpdates 最新的动态在前
	ListUpdates(ctx context.Context) ([]model.Update, error)
	GetUpdate(ctx context.Context, id int64) (*model.Update, error)
	// ListComments 最新的评论在前
	ListComments(ctx context.Context, updateID int64) ([]model.UpdateComment, error)
	CreateComment(ctx context.Context, comment *model.UpdateComment) error
}

type updateRepository struct {
	db     *gorm.DB
	reader *sqlx.DB
}

func NewUpdateRepository(db *gorm.DB, reader *sqlx.DB) UpdateRepository {
	return &updateRepository{db: db, reader: reader}
}

func (r *updateRepository) ListUpdates(ctx context.Context) ([]model.Update, error) {
	q := database.Builder.
		Select("id", "title", "content", "likes", "created_at").
		From(model.Update{}.TableName()).
		OrderBy("created_at DESC", "id DESC")

	updates := []model.Update{}
	if err := database.SelectAll(ctx, r.reader, &updates, q); err != nil {
		return nil, errs.Storage("list updates", err)
	}
	return updates, nil
}

func (r *updateRepository) GetUpdate(ctx context.Context, id int64) (*model.Update, error) {
	var update model.Update
	err := r.db.WithContext(ctx).First(&update, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFound("update", id)
	}
	if err != nil {
		return nil, errs.Storage("get update", err)
	}
	return &update, nil
}

func (r *updateRepository) ListComments(ctx context.Context, updateID int64) ([]model.UpdateComment, error) {
	q := database.Builder.
		Select("id", "update_id", "name", "content", "likes", "created_at").
		From(model.UpdateComment{}.TableName()).
		Where(sq.Eq{"update_id": updateID}).
		OrderBy("created_at DESC", "id DESC")

	comments := []model.UpdateComment{}
	if err := database.SelectAll(ctx, r.reader, &comments, q); err != nil {
		return nil, errs.Storage("list update comments", err)
	}
	return comments, nil
}

func (r *updateRepository) CreateComment(ctx context.Context, comment *model.UpdateComment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return errs.Storage("create update comment", err)
	}
	return nil
}
