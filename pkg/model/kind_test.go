package model

import (
	"testing"

	"serial_novel/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemKindTable(t *testing.T) {
	table, ok := KindReviewReply.Table()
	assert.True(t, ok)
	assert.Equal(t, "review_replies", table)

	_, ok = ItemKind("chapters").Table()
	assert.False(t, ok)
}

func TestParseItemKind(t *testing.T) {
	k, err := ParseItemKind("update_comment")
	require.NoError(t, err)
	assert.Equal(t, KindUpdateComment, k)

	_, err = ParseItemKind("reply; DROP TABLE reviews")
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}
