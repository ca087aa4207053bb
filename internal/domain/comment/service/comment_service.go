package service

import (
	"context"

	"serial_novel/internal/domain/comment/model"
	"serial_novel/internal/domain/comment/repository"
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

// CommentInput 发表评论
type CommentInput struct {
	ChapterNo int64
	Name      string
	Content   string
}

// ReplyInput 回复评论
type ReplyInput struct {
	CommentID int64
	Name      string
	Content   string
}

type CommentService interface {
	// BuildCommentTree 章节评论树，任何存储错误都不会返回半棵树
	BuildCommentTree(ctx context.Context, chapterNo int64, marks visitor.MarkReader) ([]model.CommentNode, error)
	AddComment(ctx context.Context, in CommentInput) (*model.Comment, error)
	// AddReply 回复一条回复时，新回复挂到其一级评论下
	AddReply(ctx context.Context, in ReplyInput) (*model.Comment, error)
}

type commentService struct {
	repo     repository.CommentRepository
	chapters ChapterChecker
	metrics  *metrics.MetricsCollector
}

func NewCommentService(repo repository.CommentRepository, chapters ChapterChecker) CommentService {
	return &commentService{
		repo:     repo,
		chapters: chapters,
		metrics:  metrics.GetGlobalCollector(),
	}
}

func (s *commentService) BuildCommentTree(ctx context.Context, chapterNo int64, marks visitor.MarkReader) ([]model.CommentNode, error) {
	top, err := s.repo.ListTopLevel(ctx, chapterNo)
	if err != nil {
		return nil, err
	}
	replies, err := s.repo.ListReplies(ctx, chapterNo)
	if err != nil {
		return nil, err
	}

	tree, stats := thread.Build(top, replies, marks)
	if stats.Orphans > 0 {
		s.metrics.RecordOrphanReplies(string(pkgModel.KindComment), stats.Orphans)
		logger.L().Warn("dropped orphan replies",
			zap.Int64("chapter_no", chapterNo),
			zap.Int("count", stats.Orphans),
		)
	}
	return tree, nil
}

func (s *commentService) AddComment(ctx context.Context, in CommentInput) (*model.Comment, error) {
	if in.ChapterNo <= 0 {
		return nil, errs.Invalid("chapter_no must be a positive integer")
	}
	name, content, err := validateText(in.Name, in.Content)
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

	comment := &model.Comment{ChapterNo: in.ChapterNo, Name: name, Content: content}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) AddReply(ctx context.Context, in ReplyInput) (*model.Comment, error) {
	if in.CommentID <= 0 {
		return nil, errs.Invalid("comment_id must be a positive integer")
	}
	name, content, err := validateText(in.Name, in.Content)
	if err != nil {
		return nil, err
	}

	parent, err := s.repo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	rootID := parent.ID
	if parent.ParentID != nil {
		rootID = *parent.ParentID
	}

	reply := &model.Comment{
		ChapterNo: parent.ChapterNo,
		Name:      name,
		Content:   content,
		ParentID:  &rootID,
	}
	if err := s.repo.Create(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func validateText(name, content string) (string, string, error) {
	name, err := utils.RequireText("name", name, pkgModel.NameMaxLen)
	if err != nil {
		return "", "", err
	}
	content, err = utils.RequireText("content", content, pkgModel.ContentMaxLen)
	if err != nil {
		return "", "", err
	}
	return name, content, nil
}
