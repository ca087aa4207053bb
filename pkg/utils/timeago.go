package utils

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// DaysAgo 距今的整天数，向下取整；未来时间按 0 处理
func DaysAgo(t, now time.Time) int {
	d := now.Sub(t)
	if d < 0 {
		return 0
	}
	return int(d / day)
}

// DaysAgoText 列表页展示的相对时间: today / 1 day ago / 3 days ago
func DaysAgoText(t, now time.Time) string {
	n := DaysAgo(t, now)
	switch n {
	case 0:
		return "today"
	case 1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", n)
	}
}

// ShortDate 评论卡片上的日期，形如 Jan 02, 2006
func ShortDate(t time.Time) string {
	return t.Format("Jan 02, 2006")
}
