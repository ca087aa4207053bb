package utils

import (
	"strings"
	"unicode/utf8"

	"serial_novel/pkg/errs"
)

// Truncate 按字符截断，超出时追加 "..."
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return strings.TrimRightFunc(string(runes[:max]), isSpace) + "..."
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t' || r == '\r'
}

// RequireText 去掉首尾空白后校验必填与长度
func RequireText(field, value string, max int) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", errs.Invalid("%s is required", field)
	}
	if utf8.RuneCountInString(v) > max {
		return "", errs.Invalid("%s must be at most %d characters", field, max)
	}
	return v, nil
}
