// Package errs 定义跨模块共享的错误分类
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument 参数格式错误，例如 id 不是正整数
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound 引用的记录不存在
	ErrNotFound = errors.New("not found")
	// ErrStorage 数据库不可达或查询失败
	ErrStorage = errors.New("storage failure")
)

// Invalid 包装参数错误
func Invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// NotFound 包装记录不存在
func NotFound(what string, id interface{}) error {
	return fmt.Errorf("%w: %s %v", ErrNotFound, what, id)
}

// Storage 包装底层存储错误，保留原始错误链
func Storage(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}
