package service

import (
	"context"

	"serial_novel/internal/domain/review/model"
	"serial_novel/internal/domain/review/repository"
	"serial_novel/internal/pkg/thread"
	"serial_novel/internal/pkg/visitor"
	"serial_novel/pkg/errs"
	"serial_novel/pkg/logger"
	"serial_novel/pkg/metrics"
	pkgModel "serial_novel/pkg/model"
	"serial_novel/pkg/utils"

	"go.uber.org/zap"
)

// ChapterChecker 校验章节是否存在
type ChapterChecker interface {
	Exists(ctx context.Context, chapterNo int64) (bool, error)
}

// ReviewInput 发表书评
type ReviewInput struct {
	ChapterNo int64
	Author    string
	Content   string
	Stars     int
}

// ReplyInput 回复书评
type ReplyInput struct {
	ReviewID int64
	Name     string
	Content  string
}

type ReviewService interface {
	ListReviews(ctx context.Context, marks visitor.MarkReader) (*model.ReviewPage, error)
	CreateReview(ctx context.Context, in ReviewInput) (*model.Review, error)
	CreateReply(ctx context.Context, in ReplyInput) (*model.ReviewReply, error)
}

type reviewService struct {
	repo     repository.ReviewRepository
	chapters ChapterChecker
	metrics  *metrics.MetricsCollector
}

func NewReviewService(repo repository.ReviewRepository, chapters ChapterChecker) ReviewService {
	return &reviewService{
		repo:     repo,
		chapters: chapters,
		metrics:  metrics.GetGlobalCollector(),
	}
}

func (s *reviewService) ListReviews(ctx context.Context, marks visitor.MarkReader) (*model.ReviewPage, error) {
	reviews, err := s.repo.ListReviews(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(reviews))
	totalStars := 0
	for i, r := range reviews {
		ids[i] = r.ID
		totalStars += r.Stars
	}

	replies, err := s.repo.ListReplies(ctx, ids)
	if err != nil {
		return nil, err
	}

	tree, stats := thread.Build(reviews, replies, marks)
	if stats.Orphans > 0 {
		s.metrics.RecordOrphanReplies(string(pkgModel.KindReviewReply), stats.Orphans)
		logger.L().Warn("dropped orphan review replies", zap.Int("count", stats.Orphans))
	}

	page := &model.ReviewPage{Reviews: tree, Total: len(reviews)}
	if len(reviews) > 0 {
		page.AverageStars = float64(totalStars) / float64(len(reviews))
	}
	return page, nil
}

func (s *reviewService) CreateReview(ctx context.Context, in ReviewInput) (*model.Review, error) {
	if in.ChapterNo <= 0 {
		return nil, errs.Invalid("chapter must be a positive integer")
	}
	if in.Stars < model.MinStars || in.Stars > model.MaxStars {
		return nil, errs.Invalid("stars must be between %d and %d", model.MinStars, model.MaxStars)
	}
	author, err := utils.RequireText("author", in.Author, pkgModel.NameMaxLen)
	if err != nil {
		return nil, err
	}
	content, err := utils.RequireText("content", in.Content, pkgModel.ContentMaxLen)
	if err != nil {
		return nil, err
	}

	ok, err := s.chapters.Exists(ctx, in.ChapterNo)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NotFound("chapter", in.ChapterNo)
	}

	review := &model.Review{
		ChapterNo: in.ChapterNo,
		Name:      author,
		Review:    content,
		Stars:     in.Stars,
	}
	if err := s.repo.CreateReview(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) CreateReply(ctx context.Context, in ReplyInput) (*model.ReviewReply, error) {
	if in.ReviewID <= 0 {
		return nil, errs.Invalid("review_s_no must be a positive integer")
	}
	name, err := utils.RequireText("name", in.Name, pkgModel.NameMaxLen)
	if err != nil {
		return nil, err
	}
	content, err := utils.RequireText("content", in.Content, pkgModel.ContentMaxLen)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetReview(ctx, in.ReviewID); err != nil {
		return nil, err
	}

	reply := &model.ReviewReply{ReviewID: in.ReviewID, Name: name, Content: content}
	if err := s.repo.CreateReply(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}
