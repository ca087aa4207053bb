package thread

import (
	"testing"

	"serial_novel/internal/pkg/visitor"
	"serial_novel/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	id       int64
	parentID int64
	kind     model.ItemKind
}

func (r row) RowID() int64            { return r.id }
func (r row) RowParentID() int64      { return r.parentID }
func (r row) RowKind() model.ItemKind { return r.kind }

func comment(id int64) row { return row{id: id, kind: model.KindComment} }

func reply(id, parent int64) row {
	return row{id: id, parentID: parent, kind: model.KindComment}
}

func replyIDs(leaves []Leaf[row]) []int64 {
	ids := make([]int64, 0, len(leaves))
	for _, l := range leaves {
		ids = append(ids, l.Item.id)
	}
	return ids
}

func TestBuildGroupsRepliesInOrder(t *testing.T) {
	top := []row{comment(1), comment(2)}
	replies := []row{reply(10, 1), reply(11, 2), reply(12, 1)}

	nodes, stats := Build(top, replies, nil)

	require.Len(t, nodes, 2)
	assert.Equal(t, int64(1), nodes[0].Item.id)
	assert.Equal(t, []int64{10, 12}, replyIDs(nodes[0].Replies))
	assert.Equal(t, int64(2), nodes[1].Item.id)
	assert.Equal(t, []int64{11}, replyIDs(nodes[1].Replies))
	assert.Zero(t, stats.Orphans)
}

func TestBuildDropsOrphans(t *testing.T) {
	top := []row{comment(1), comment(2)}
	replies := []row{reply(10, 1), reply(13, 99)}

	nodes, stats := Build(top, replies, nil)

	assert.Equal(t, []int64{10}, replyIDs(nodes[0].Replies))
	assert.Empty(t, nodes[1].Replies)
	assert.NotNil(t, nodes[1].Replies, "empty reply list serializes as []")
	assert.Equal(t, 1, stats.Orphans)
}

func TestBuildMarksLikedNodes(t *testing.T) {
	marks := visitor.NewMemoryStore()
	marks.Set(visitor.MarkKey(model.KindComment, 2), visitor.MarkTTL)
	marks.Set(visitor.MarkKey(model.KindComment, 12), visitor.MarkTTL)
	// 同 id 不同类型的标记互不影响
	marks.Set(visitor.MarkKey(model.KindReview, 1), visitor.MarkTTL)

	nodes, _ := Build([]row{comment(1), comment(2)}, []row{reply(10, 1), reply(12, 1)}, marks)

	assert.False(t, nodes[0].Liked)
	assert.True(t, nodes[1].Liked)
	assert.False(t, nodes[0].Replies[0].Liked)
	assert.True(t, nodes[0].Replies[1].Liked)
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	top := []row{comment(1)}
	replies := []row{reply(10, 1)}

	Build(top, replies, nil)
	nodes, _ := Build(top, replies, nil)

	assert.Equal(t, []row{comment(1)}, top)
	assert.Equal(t, []row{reply(10, 1)}, replies)
	assert.Len(t, nodes[0].Replies, 1, "second build starts from a fresh structure")
}

func TestBuildEmpty(t *testing.T) {
	nodes, stats := Build[row, row](nil, []row{reply(10, 1)}, nil)
	assert.Empty(t, nodes)
	assert.Equal(t, 1, stats.Orphans)
}
