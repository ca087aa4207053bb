package utils

import (
	"strconv"
	"strings"

	"serial_novel/pkg/errs"
)

// ParseID 解析路径或表单中的正整数 id
func ParseID(field, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.Invalid("%s must be a positive integer, got %q", field, raw)
	}
	return id, nil
}
