package repository

import (
	"context"
	"errors"

	"serial_novel/internal/domain/review/model"
	"serial_novel/pkg/database"
	"serial_novel/pkg/errs"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	CreateReview(ctx context.Context, review *model.Review) error
	CreateReply(ctx context.Context, reply *model.ReviewReply) error
	GetReview(ctx context.Context, id int64) (*model.Review, error)
	// ListReviews 最新的书评在前
	ListReviews(ctx context.Context) ([]model.Review, error)
	// ListReplies 给定书评下的回复，按创建时间升序
	ListReplies(ctx context.Context, reviewIDs []int64) ([]model.ReviewReply, error)
}

type reviewRepository struct {
	db     *gorm.DB
	reader *sqlx.DB
}

func NewReviewRepository(db *gorm.DB, reader *sqlx.DB) ReviewRepository {
	return &reviewRepository{db: db, reader: reader}
}

func (r *reviewRepository) CreateReview(ctx context.Context, review *model.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return errs.Storage("create review", err)
	}
	return nil
}

func (r *reviewRepository) CreateReply(ctx context.Context, reply *model.ReviewReply) error {
	if err := r.db.WithContext(ctx).Create(reply).Error; err != nil {
		return errs.Storage("create review reply", err)
	}
	return nil
}

func (r *reviewRepository) GetReview(ctx context.Context, id int64) (*model.Review, error) {
	var review model.Review
	err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFound("review", id)
	}
	if err != nil {
		return nil, errs.Storage("get review", err)
	}
	return &review, nil
}

func (r *reviewRepository) ListReviews(ctx context.Context) ([]model.Review, error) {
	q := database.Builder.
		Select("id", "chapter_no", "name", "review", "stars", "likes", "created_at").
		From(model.Review{}.TableName()).
		OrderBy("created_at DESC", "id DESC")

	reviews := []model.Review{}
	if err := database.SelectAll(ctx, r.reader, &reviews, q); err != nil {
		return nil, errs.Storage("list reviews", err)
	}
	return reviews, nil
}

func (r *reviewRepository) ListReplies(ctx context.Context, reviewIDs []int64) ([]model.ReviewReply, error) {
	replies := []model.ReviewReply{}
	if len(reviewIDs) == 0 {
		return replies, nil
	}

	q := database.Builder.
		Select("id", "review_id", "name", "content", "likes", "created_at").
		From(model.ReviewReply{}.TableName()).
		Where(sq.Eq{"review_id": reviewIDs}).
		OrderBy("created_at ASC", "id ASC")

	if err := database.SelectAll(ctx, r.reader, &replies, q); err != nil {
		return nil, errs.Storage("list review replies", err)
	}
	return replies, nil
}
