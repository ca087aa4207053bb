package utils

import (
	"testing"
	"time"

	"serial_novel/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysAgoText(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		at   time.Time
		want string
	}{
		{now, "today"},
		{now.Add(-23 * time.Hour), "today"},
		{now.Add(-24 * time.Hour), "1 day ago"},
		{now.Add(-47 * time.Hour), "1 day ago"},
		{now.Add(-72 * time.Hour), "3 days ago"},
		{now.Add(2 * time.Hour), "today"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DaysAgoText(tc.at, now), "at %s", tc.at)
	}
}

func TestShortDate(t *testing.T) {
	assert.Equal(t, "Mar 07, 2024", ShortDate(time.Date(2024, 3, 7, 8, 0, 0, 0, time.UTC)))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "hello...", Truncate("hello world", 6))
	assert.Equal(t, "第一章...", Truncate("第一章 黎明", 3))
	assert.Equal(t, "", Truncate("anything", 0))
}

func TestRequireText(t *testing.T) {
	v, err := RequireText("name", "  Ada  ", 10)
	require.NoError(t, err)
	assert.Equal(t, "Ada", v)

	_, err = RequireText("name", "   ", 10)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = RequireText("content", "abcdef", 5)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "content must be at most 5 characters")
}

func TestParseID(t *testing.T) {
	id, err := ParseID("id", "42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "0", "-3", "abc", "1.5", "99999999999999999999"} {
		_, err := ParseID("id", raw)
		assert.ErrorIs(t, err, errs.ErrInvalidArgument, "raw=%q", raw)
	}
}
