package service

import (
	"context"
	"time"

	reactionModel "serial_novel/internal/domain/reaction/model"
	"serial_novel/internal/domain/reaction/repository"
	"serial_novel/internal/pkg/visitor"
	"serial_novel/pkg/errs"
	"serial_novel/pkg/logger"
	"serial_novel/pkg/metrics"
	"serial_novel/pkg/model"
	"serial_novel/pkg/utils"

	"go.uber.org/zap"
)

type LedgerService interface {
	// ToggleLike 按访客标记决定点赞或取消，每次调用都会翻转状态
	ToggleLike(ctx context.Context, kind model.ItemKind, rawID string, marks visitor.MarkStore) (*reactionModel.ToggleResult, error)
	// GetState 读取计数与访客是否已点赞，不产生任何写入
	GetState(ctx context.Context, kind model.ItemKind, rawID string, marks visitor.MarkReader) (*reactionModel.ToggleResult, error)
}

type ledgerService struct {
	repo    repository.LedgerRepository
	markTTL time.Duration
	metrics *metrics.MetricsCollector
}

// NewLedgerService markTTL <= 0 时使用 visitor.MarkTTL
func NewLedgerService(repo repository.LedgerRepository, markTTL time.Duration) LedgerService {
	if markTTL <= 0 {
		markTTL = visitor.MarkTTL
	}
	return &ledgerService{
		repo:    repo,
		markTTL: markTTL,
		metrics: metrics.GetGlobalCollector(),
	}
}

func (s *ledgerService) ToggleLike(ctx context.Context, kind model.ItemKind, rawID string, marks visitor.MarkStore) (*reactionModel.ToggleResult, error) {
	id, err := parseTarget(kind, rawID)
	if err != nil {
		return nil, err
	}

	key := visitor.MarkKey(kind, id)
	wasLiked := marks.Has(key)
	delta := 1
	if wasLiked {
		delta = -1
	}

	likes, err := s.repo.AdjustLikes(ctx, kind, id, delta)
	if err != nil {
		logger.L().Warn("toggle like failed",
			zap.String("kind", string(kind)),
			zap.Int64("id", id),
			zap.Error(err),
		)
		return nil, err
	}

	// 只有计数写入成功后才更新访客标记
	liked := !wasLiked
	if liked {
		marks.Set(key, s.markTTL)
	} else {
		marks.Clear(key)
	}

	s.metrics.RecordLikeToggle(string(kind), liked)
	logger.L().Info("like toggled",
		zap.String("kind", string(kind)),
		zap.Int64("id", id),
		zap.Bool("liked", liked),
		zap.Int64("likes", likes),
	)

	return &reactionModel.ToggleResult{Likes: likes, Liked: liked}, nil
}

func (s *ledgerService) GetState(ctx context.Context, kind model.ItemKind, rawID string, marks visitor.MarkReader) (*reactionModel.ToggleResult, error) {
	id, err := parseTarget(kind, rawID)
	if err != nil {
		return nil, err
	}

	likes, err := s.repo.GetLikes(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	return &reactionModel.ToggleResult{Likes: likes, Liked: visitor.Liked(marks, kind, id)}, nil
}

func parseTarget(kind model.ItemKind, rawID string) (int64, error) {
	if !kind.Valid() {
		return 0, errs.Invalid("unknown item kind %q", kind)
	}
	return utils.ParseID("id", rawID)
}
