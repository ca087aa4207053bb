// Package thread 把平铺的评论/回复行组装成两层树
//
// 回复只挂在一级评论下面，不支持更深的嵌套。
package thread

import (
	"serial_novel/internal/pkg/visitor"
	"serial_novel/pkg/model"
)

// Row 可作为一级节点的行
type Row interface {
	RowID() int64
	RowKind() model.ItemKind
}

// ReplyRow 回复行，RowParentID 指向一级节点
type ReplyRow interface {
	Row
	RowParentID() int64
}

// Leaf 回复节点
type Leaf[R ReplyRow] struct {
	Item  R    `json:"item"`
	Liked bool `json:"liked"`
}

// Node 一级节点及其回复
type Node[T Row, R ReplyRow] struct {
	Item    T         `json:"item"`
	Liked   bool      `json:"liked"`
	Replies []Leaf[R] `json:"replies"`
}

// Stats 组装过程中的统计
type Stats struct {
	// Orphans 找不到父节点而被丢弃的回复数
	Orphans int
}

// Build 按输入顺序组装两层树
//
// top 与 replies 都应已按 created_at 升序（或调用方需要的顺序）排好，
// 回复在父节点下保持到达顺序。父节点不在 top 中的回复被丢弃并计入 Stats.Orphans。
// 输入切片不会被修改。
func Build[T Row, R ReplyRow](top []T, replies []R, marks visitor.MarkReader) ([]Node[T, R], Stats) {
	var stats Stats
	nodes := make([]Node[T, R], len(top))
	index := make(map[int64]int, len(top))

	for i, row := range top {
		nodes[i] = Node[T, R]{
			Item:    row,
			Liked:   visitor.Liked(marks, row.RowKind(), row.RowID()),
			Replies: []Leaf[R]{},
		}
		index[row.RowID()] = i
	}

	for _, reply := range replies {
		i, ok := index[reply.RowParentID()]
		if !ok {
			stats.Orphans++
			continue
		}
		nodes[i].Replies = append(nodes[i].Replies, Leaf[R]{
			Item:  reply,
			Liked: visitor.Liked(marks, reply.RowKind(), reply.RowID()),
		})
	}

	return nodes, stats
}
