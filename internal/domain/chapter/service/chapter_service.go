package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"serial_novel/internal/domain/chapter/model"
	"serial_novel/internal/domain/chapter/repository"
	"serial_novel/pkg/cache"
	"serial_novel/pkg/errs"
	"serial_novel/pkg/logger"
	"serial_novel/pkg/metrics"
	"serial_novel/pkg/utils"

	"go.uber.org/zap"
)

// 缓存键常量
const (
	ChapterCacheKeyPrefix = "chapters:"
	ChapterListCacheKey   = ChapterCacheKeyPrefix + "all"
	ChapterListCacheTTL   = time.Minute * 10
)

type ChapterService interface {
	Overview(ctx context.Context) (*model.Overview, error)
	List(ctx context.Context) (*model.ChapterList, error)
	// Get rawNo 来自查询参数 chapter_no
	Get(ctx context.Context, rawNo string) (*model.ChapterDetail, error)
	// Warm 从数据库刷新章节列表缓存
	Warm(ctx context.Context) error
}

type chapterService struct {
	repo    repository.ChapterRepository
	cache   cache.CacheService
	metrics *metrics.MetricsCollector
	now     func() time.Time
}

func NewChapterService(repo repository.ChapterRepository, c cache.CacheService) ChapterService {
	return &chapterService{
		repo:    repo,
		cache:   c,
		metrics: metrics.GetGlobalCollector(),
		now:     time.Now,
	}
}

// loadChapters 先读缓存，缓存不可用时回源数据库
// 相对时间在读取之后计算，不进入缓存
func (s *chapterService) loadChapters(ctx context.Context) ([]model.Chapter, error) {
	var chapters []model.Chapter
	err := s.cache.Get(ctx, ChapterListCacheKey, &chapters)
	if err == nil {
		s.metrics.RecordCache(ChapterCacheKeyPrefix, true)
		return chapters, nil
	}
	s.metrics.RecordCache(ChapterCacheKeyPrefix, false)
	if !errors.Is(err, cache.ErrCacheMiss) {
		logger.L().Warn("chapter cache read failed", zap.Error(err))
	}

	chapters, err = s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, ChapterListCacheKey, chapters, ChapterListCacheTTL); err != nil {
		logger.L().Warn("chapter cache write failed", zap.Error(err))
	}
	return chapters, nil
}

func (s *chapterService) Warm(ctx context.Context) error {
	chapters, err := s.repo.ListAll(ctx)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, ChapterListCacheKey, chapters, ChapterListCacheTTL)
}

func (s *chapterService) Overview(ctx context.Context) (*model.Overview, error) {
	chapters, err := s.loadChapters(ctx)
	if err != nil {
		return nil, err
	}

	overview := &model.Overview{TotalChapters: len(chapters)}
	if len(chapters) > 0 {
		latest := chapters[len(chapters)-1]
		overview.LatestChapter = &latest
		overview.DaysAgoText = utils.DaysAgoText(latest.CreatedAt, s.now())
	}
	return overview, nil
}

func (s *chapterService) List(ctx context.Context) (*model.ChapterList, error) {
	chapters, err := s.loadChapters(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	list := &model.ChapterList{
		Chapters: make([]model.ChapterView, 0, len(chapters)),
		Total:    len(chapters),
	}
	for _, ch := range chapters {
		list.Chapters = append(list.Chapters, model.ChapterView{
			Chapter: ch,
			DaysAgo: utils.DaysAgoText(ch.CreatedAt, now),
		})
	}
	if n := len(list.Chapters); n > 0 {
		latest := list.Chapters[n-1]
		list.Latest = &latest
	}
	return list, nil
}

func (s *chapterService) Get(ctx context.Context, rawNo string) (*model.ChapterDetail, error) {
	if strings.TrimSpace(rawNo) == "" {
		return nil, errs.Invalid("chapter_no is required")
	}
	no, err := utils.ParseID("chapter_no", rawNo)
	if err != nil {
		return nil, err
	}

	chapter, err := s.repo.GetByNo(ctx, no)
	if err != nil {
		return nil, err
	}
	return &model.ChapterDetail{Chapter: *chapter, PDFEmbedURL: chapter.EmbedURL()}, nil
}
