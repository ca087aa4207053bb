package service

import (
	"context"
	"time"

	"serial_novel/internal/domain/update/model"
	"serial_novel/internal/domain/update/repository"
	"serial_novel/internal/pkg/visitor"
	"serial_novel/pkg/errs"
	pkgModel "serial_novel/pkg/model"
	"serial_novel/pkg/utils"
)

// CommentInput 动态评论输入
type CommentInput struct {
	UpdateID int64
	Name     string
	Content  string
}

type UpdateService interface {
	List(ctx context.Context, marks visitor.MarkReader) ([]model.UpdateSummary, error)
	Get(ctx context.Context, rawID string, marks visitor.MarkReader) (*model.UpdateDetail, error)
	AddComment(ctx context.Context, in CommentInput) (*model.UpdateComment, error)
}

type updateService struct {
	repo repository.UpdateRepository
	now  func() time.Time
}

func NewUpdateService(repo repository.UpdateRepository) UpdateService {
	return &updateService{repo: repo, now: time.Now}
}

func (s *updateService) List(ctx context.Context, marks visitor.MarkReader) ([]model.UpdateSummary, error) {
	updates, err := s.repo.ListUpdates(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]model.UpdateSummary, 0, len(updates))
	for _, u := range updates {
		out = append(out, model.UpdateSummary{
			Update:  u,
			DaysAgo: utils.DaysAgoText(u.CreatedAt, now),
			Preview: utils.Truncate(u.Content, model.PreviewLen),
			Liked:   visitor.Liked(marks, pkgModel.KindUpdate, u.ID),
		})
	}
	return out, nil
}

func (s *updateService) Get(ctx context.Context, rawID string, marks visitor.MarkReader) (*model.UpdateDetail, error) {
	id, err := utils.ParseID("id", rawID)
	if err != nil {
		return nil, err
	}

	update, err := s.repo.GetUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	comments, err := s.repo.ListComments(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &model.UpdateDetail{
		Update:   *update,
		Date:     utils.ShortDate(update.CreatedAt),
		DaysAgo:  utils.DaysAgoText(update.CreatedAt, s.now()),
		Liked:    visitor.Liked(marks, pkgModel.KindUpdate, update.ID),
		Comments: make([]model.CommentView, 0, len(comments)),
	}
	for _, c := range comments {
		detail.Comments = append(detail.Comments, model.CommentView{
			UpdateComment: c,
			Date:          utils.ShortDate(c.CreatedAt),
			Liked:         visitor.Liked(marks, pkgModel.KindUpdateComment, c.ID),
		})
	}
	return detail, nil
}

func (s *updateService) AddComment(ctx context.Context, in CommentInput) (*model.UpdateComment, error) {
	if in.UpdateID <= 0 {
		return nil, errs.Invalid("update_id must be a positive integer")
	}
	name, err := utils.RequireText("name", in.Name, pkgModel.NameMaxLen)
	if err != nil {
		return nil, err
	}
	content, err := utils.RequireText("content", in.Content, pkgModel.ContentMaxLen)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetUpdate(ctx, in.UpdateID); err != nil {
		return nil, err
	}

	comment := &model.UpdateComment{UpdateID: in.UpdateID, Name: name, Content: content}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
