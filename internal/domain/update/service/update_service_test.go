package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"serial_novel/internal/domain/update/model"
	"serial_novel/internal/pkg/visitor"
	"serial_novel/pkg/errs"
	pkgModel "serial_novel/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUpdateRepository is a mock of UpdateRepository
type MockUpdateRepository struct {
	mock.Mock
}

func (m *MockUpdateRepository) ListUpdates(ctx context.Context) ([]model.Update, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Update), args.Error(1)
}

func (m *MockUpdateRepository) GetUpdate(ctx context.Context, id int64) (*model.Update, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Update), args.Error(1)
}

func (m *MockUpdateRepository) ListComments(ctx context.Context, updateID int64) ([]model.UpdateComment, error) {
	args := m.Called(ctx, updateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UpdateComment), args.Error(1)
}

func (m *MockUpdateRepository) CreateComment(ctx context.Context, comment *model.UpdateComment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

var now = time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)

func newService(repo *MockUpdateRepository) *updateService {
	svc := NewUpdateService(repo).(*updateService)
	svc.now = func() time.Time { return now }
	return svc
}

func update(id int64, content string, age time.Duration) model.Update {
	u := model.Update{Title: "t", Content: content}
	u.ID = id
	u.CreatedAt = now.Add(-age)
	return u
}

func TestList(t *testing.T) {
	repo := new(MockUpdateRepository)
	svc := newService(repo)

	long := strings.Repeat("a", 200)
	repo.On("ListUpdates", mock.Anything).Return([]model.Update{
		update(2, long, 2*24*time.Hour),
		update(1, "short note", 0),
	}, nil)

	marks := visitor.NewMemoryStore()
	marks.Set(visitor.MarkKey(pkgModel.KindUpdate, 1), time.Hour)

	list, err := svc.List(context.Background(), marks)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "2 days ago", list[0].DaysAgo)
	assert.Equal(t, strings.Repeat("a", model.PreviewLen)+"...", list[0].Preview)
	assert.False(t, list[0].Liked)

	assert.Equal(t, "today", list[1].DaysAgo)
	assert.Equal(t, "short note", list[1].Preview)
	assert.True(t, list[1].Liked)
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("detail with comments", func(t *testing.T) {
		repo := new(MockUpdateRepository)
		svc := newService(repo)
		u := update(3, "body", 24*time.Hour)

		c1 := model.UpdateComment{UpdateID: 3, Name: "Ada", Content: "newest"}
		c1.ID = 21
		c1.CreatedAt = now
		c2 := model.UpdateComment{UpdateID: 3, Name: "Bo", Content: "older"}
		c2.ID = 20
		c2.CreatedAt = now.Add(-time.Hour)

		repo.On("GetUpdate", mock.Anything, int64(3)).Return(&u, nil)
		repo.On("ListComments", mock.Anything, int64(3)).Return([]model.UpdateComment{c1, c2}, nil)

		marks := visitor.NewMemoryStore()
		marks.Set(visitor.MarkKey(pkgModel.KindUpdateComment, 20), time.Hour)

		detail, err := svc.Get(ctx, "3", marks)
		require.NoError(t, err)
		assert.Equal(t, "1 day ago", detail.DaysAgo)
		assert.Equal(t, "Jun 30, 2024", detail.Date)
		require.Len(t, detail.Comments, 2)
		assert.Equal(t, int64(21), detail.Comments[0].ID)
		assert.False(t, detail.Comments[0].Liked)
		assert.True(t, detail.Comments[1].Liked)
	})

	t.Run("bad id", func(t *testing.T) {
		svc := newService(new(MockUpdateRepository))
		_, err := svc.Get(ctx, "x", nil)
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	})

	t.Run("missing update", func(t *testing.T) {
		repo := new(MockUpdateRepository)
		svc := newService(repo)
		repo.On("GetUpdate", mock.Anything, int64(8)).Return(nil, errs.NotFound("update", 8))

		_, err := svc.Get(ctx, "8", nil)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		repo := new(MockUpdateRepository)
		svc := newService(repo)
		u := update(3, "body", 0)
		repo.On("GetUpdate", mock.Anything, int64(3)).Return(&u, nil)
		repo.On("CreateComment", mock.Anything, mock.AnythingOfType("*model.UpdateComment")).Return(nil)

		c, err := svc.AddComment(ctx, CommentInput{UpdateID: 3, Name: "Ada", Content: "nice"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), c.UpdateID)
	})

	t.Run("unknown update", func(t *testing.T) {
		repo := new(MockUpdateRepository)
		svc := newService(repo)
		repo.On("GetUpdate", mock.Anything, int64(4)).Return(nil, errs.NotFound("update", 4))

		_, err := svc.AddComment(ctx, CommentInput{UpdateID: 4, Name: "Ada", Content: "nice"})
		assert.ErrorIs(t, err, errs.ErrNotFound)
		repo.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything)
	})

	t.Run("invalid input", func(t *testing.T) {
		svc := newService(new(MockUpdateRepository))
		_, err := svc.AddComment(ctx, CommentInput{UpdateID: 0, Name: "a", Content: "b"})
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
		_, err = svc.AddComment(ctx, CommentInput{UpdateID: 1, Name: "", Content: "b"})
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	})
}
