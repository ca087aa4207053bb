package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"serial_novel/internal/pkg/visitor"
	"serial_novel/pkg/errs"
	"serial_novel/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLedgerRepository is a mock of LedgerRepository
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) AdjustLikes(ctx context.Context, kind model.ItemKind, id int64, delta int) (int64, error) {
	args := m.Called(ctx, kind, id, delta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerRepository) GetLikes(ctx context.Context, kind model.ItemKind, id int64) (int64, error) {
	args := m.Called(ctx, kind, id)
	return args.Get(0).(int64), args.Error(1)
}

// memLedger 内存版计数器，语义与数据库语句一致
type memLedger struct {
	mu    sync.Mutex
	likes map[string]int64
}

func newMemLedger(seed map[string]int64) *memLedger {
	return &memLedger{likes: seed}
}

func (l *memLedger) AdjustLikes(ctx context.Context, kind model.ItemKind, id int64, delta int) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := visitor.MarkKey(kind, id)
	v, ok := l.likes[key]
	if !ok {
		return 0, errs.NotFound(string(kind), id)
	}
	v += int64(delta)
	if v < 0 {
		v = 0
	}
	l.likes[key] = v
	return v, nil
}

func (l *memLedger) GetLikes(ctx context.Context, kind model.ItemKind, id int64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	v, ok := l.likes[visitor.MarkKey(kind, id)]
	if !ok {
		return 0, errs.NotFound(string(kind), id)
	}
	return v, nil
}

func TestToggleLike(t *testing.T) {
	ctx := context.Background()

	t.Run("like then unlike restores the count", func(t *testing.T) {
		ledger := newMemLedger(map[string]int64{"comment:7": 3})
		svc := NewLedgerService(ledger, time.Hour)
		marks := visitor.NewMemoryStore()

		res, err := svc.ToggleLike(ctx, model.KindComment, "7", marks)
		require.NoError(t, err)
		assert.Equal(t, int64(4), res.Likes)
		assert.True(t, res.Liked)
		assert.True(t, marks.Has("comment:7"))

		res, err = svc.ToggleLike(ctx, model.KindComment, "7", marks)
		require.NoError(t, err)
		assert.Equal(t, int64(3), res.Likes)
		assert.False(t, res.Liked)
		assert.False(t, marks.Has("comment:7"))
	})

	t.Run("likes never go negative", func(t *testing.T) {
		ledger := newMemLedger(map[string]int64{"review:1": 0})
		svc := NewLedgerService(ledger, time.Hour)
		marks := visitor.NewMemoryStore()
		// 访客带着标记，但计数已经是 0
		marks.Set("review:1", time.Hour)

		res, err := svc.ToggleLike(ctx, model.KindReview, "1", marks)
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.Likes)
		assert.False(t, res.Liked)
	})

	t.Run("concurrent visitors each add one", func(t *testing.T) {
		const visitors = 50
		ledger := newMemLedger(map[string]int64{"update:2": 0})
		svc := NewLedgerService(ledger, time.Hour)

		var wg sync.WaitGroup
		for i := 0; i < visitors; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.ToggleLike(ctx, model.KindUpdate, "2", visitor.NewMemoryStore())
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		likes, err := ledger.GetLikes(ctx, model.KindUpdate, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(visitors), likes)
	})

	t.Run("not found leaves the mark untouched", func(t *testing.T) {
		ledger := newMemLedger(map[string]int64{})
		svc := NewLedgerService(ledger, time.Hour)
		marks := visitor.NewMemoryStore()

		_, err := svc.ToggleLike(ctx, model.KindComment, "404", marks)
		assert.ErrorIs(t, err, errs.ErrNotFound)
		assert.False(t, marks.Has("comment:404"))
	})

	t.Run("storage failure leaves the mark untouched", func(t *testing.T) {
		repo := new(MockLedgerRepository)
		svc := NewLedgerService(repo, time.Hour)
		marks := visitor.NewMemoryStore()
		marks.Set("update_comment:5", time.Hour)

		repo.On("AdjustLikes", mock.Anything, model.KindUpdateComment, int64(5), -1).
			Return(int64(0), errs.Storage("adjust likes", errors.New("timeout")))

		_, err := svc.ToggleLike(ctx, model.KindUpdateComment, "5", marks)
		assert.ErrorIs(t, err, errs.ErrStorage)
		assert.True(t, marks.Has("update_comment:5"))
		repo.AssertExpectations(t)
	})

	t.Run("invalid ids are rejected before storage", func(t *testing.T) {
		repo := new(MockLedgerRepository)
		svc := NewLedgerService(repo, time.Hour)

		for _, raw := range []string{"", "abc", "0", "-1"} {
			_, err := svc.ToggleLike(ctx, model.KindComment, raw, visitor.NewMemoryStore())
			assert.ErrorIs(t, err, errs.ErrInvalidArgument, "raw=%q", raw)
		}
		repo.AssertNotCalled(t, "AdjustLikes", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown kind is invalid", func(t *testing.T) {
		repo := new(MockLedgerRepository)
		svc := NewLedgerService(repo, time.Hour)

		_, err := svc.ToggleLike(ctx, model.ItemKind("post"), "1", visitor.NewMemoryStore())
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	})
}

func TestGetState(t *testing.T) {
	ctx := context.Background()
	ledger := newMemLedger(map[string]int64{"review_reply:9": 6})
	svc := NewLedgerService(ledger, 0)

	// 没有标记等同于未点赞
	res, err := svc.GetState(ctx, model.KindReviewReply, "9", visitor.NewMemoryStore())
	require.NoError(t, err)
	assert.Equal(t, int64(6), res.Likes)
	assert.False(t, res.Liked)

	marks := visitor.NewMemoryStore()
	marks.Set("review_reply:9", time.Hour)
	res, err = svc.GetState(ctx, model.KindReviewReply, "9", marks)
	require.NoError(t, err)
	assert.True(t, res.Liked)

	_, err = svc.GetState(ctx, model.KindReviewReply, "10", nil)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
