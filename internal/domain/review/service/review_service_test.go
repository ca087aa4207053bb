package service

import (
	"context"
	"testing"
	"time"

	"serial_novel/internal/domain/review/model"
	"serial_novel/internal/pkg/visitor"
	"serial_novel/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockReviewRepository is a mock of ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) CreateReview(ctx context.Context, review *model.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) CreateReply(ctx context.Context, reply *model.ReviewReply) error {
	args := m.Called(ctx, reply)
	return args.Error(0)
}

func (m *MockReviewRepository) GetReview(ctx context.Context, id int64) (*model.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *MockReviewRepository) ListReviews(ctx context.Context) ([]model.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Review), args.Error(1)
}

func (m *MockReviewRepository) ListReplies(ctx context.Context, reviewIDs []int64) ([]model.ReviewReply, error) {
	args := m.Called(ctx, reviewIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ReviewReply), args.Error(1)
}

type chapterSet map[int64]bool

func (c chapterSet) Exists(ctx context.Context, chapterNo int64) (bool, error) {
	return c[chapterNo], nil
}

func review(id int64, stars int) model.Review {
	r := model.Review{ChapterNo: 1, Name: "n", Review: "r", Stars: stars}
	r.ID = id
	return r
}

func reply(id, reviewID int64) model.ReviewReply {
	r := model.ReviewReply{ReviewID: reviewID, Name: "n", Content: "c"}
	r.ID = id
	return r
}

func TestListReviews(t *testing.T) {
	repo := new(MockReviewRepository)
	svc := NewReviewService(repo, chapterSet{})

	repo.On("ListReviews", mock.Anything).Return([]model.Review{review(2, 4), review(1, 5)}, nil)
	repo.On("ListReplies", mock.Anything, []int64{2, 1}).
		Return([]model.ReviewReply{reply(10, 1), reply(11, 2), reply(12, 1)}, nil)

	marks := visitor.NewMemoryStore()
	marks.Set("review:2", time.Hour)
	marks.Set("review_reply:12", time.Hour)

	page, err := svc.ListReviews(context.Background(), marks)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.InDelta(t, 4.5, page.AverageStars, 0.0001)

	require.Len(t, page.Reviews, 2)
	assert.Equal(t, int64(2), page.Reviews[0].Item.ID)
	assert.True(t, page.Reviews[0].Liked)
	require.Len(t, page.Reviews[1].Replies, 2)
	assert.Equal(t, int64(10), page.Reviews[1].Replies[0].Item.ID)
	assert.True(t, page.Reviews[1].Replies[1].Liked)
}

func TestListReviewsEmpty(t *testing.T) {
	repo := new(MockReviewRepository)
	svc := NewReviewService(repo, chapterSet{})

	repo.On("ListReviews", mock.Anything).Return([]model.Review{}, nil)
	repo.On("ListReplies", mock.Anything, []int64{}).Return([]model.ReviewReply{}, nil)

	page, err := svc.ListReviews(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, page.Reviews)
	assert.Zero(t, page.AverageStars)
}

func TestCreateReview(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		repo := new(MockReviewRepository)
		svc := NewReviewService(repo, chapterSet{1: true})
		repo.On("CreateReview", mock.Anything, mock.AnythingOfType("*model.Review")).Return(nil)

		r, err := svc.CreateReview(ctx, ReviewInput{ChapterNo: 1, Author: "Ada", Content: "brilliant", Stars: 5})
		require.NoError(t, err)
		assert.Equal(t, "brilliant", r.Review)
		assert.Equal(t, 5, r.Stars)
	})

	t.Run("stars out of range", func(t *testing.T) {
		svc := NewReviewService(new(MockReviewRepository), chapterSet{1: true})
		for _, stars := range []int{0, 6, -1} {
			_, err := svc.CreateReview(ctx, ReviewInput{ChapterNo: 1, Author: "a", Content: "b", Stars: stars})
			assert.ErrorIs(t, err, errs.ErrInvalidArgument)
		}
	})

	t.Run("unknown chapter", func(t *testing.T) {
		svc := NewReviewService(new(MockReviewRepository), chapterSet{})
		_, err := svc.CreateReview(ctx, ReviewInput{ChapterNo: 3, Author: "a", Content: "b", Stars: 3})
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestCreateReply(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		repo := new(MockReviewRepository)
		svc := NewReviewService(repo, chapterSet{})
		r := review(4, 3)
		repo.On("GetReview", mock.Anything, int64(4)).Return(&r, nil)
		repo.On("CreateReply", mock.Anything, mock.AnythingOfType("*model.ReviewReply")).Return(nil)

		got, err := svc.CreateReply(ctx, ReplyInput{ReviewID: 4, Name: "Bo", Content: " thanks "})
		require.NoError(t, err)
		assert.Equal(t, "thanks", got.Content)
		assert.Equal(t, int64(4), got.ReviewID)
	})

	t.Run("missing review", func(t *testing.T) {
		repo := new(MockReviewRepository)
		svc := NewReviewService(repo, chapterSet{})
		repo.On("GetReview", mock.Anything, int64(9)).Return(nil, errs.NotFound("review", 9))

		_, err := svc.CreateReply(ctx, ReplyInput{ReviewID: 9, Name: "Bo", Content: "x"})
		assert.ErrorIs(t, err, errs.ErrNotFound)
		repo.AssertNotCalled(t, "CreateReply", mock.Anything, mock.Anything)
	})
}
