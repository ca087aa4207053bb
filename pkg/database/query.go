package database

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// Builder 生成 $n 占位符的 SELECT 构造器
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// SelectAll 执行构造好的查询并扫描到 dest（切片指针）
func SelectAll(ctx context.Context, db *sqlx.DB, dest interface{}, query sq.Sqlizer) error {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}
	return db.SelectContext(ctx, dest, sqlStr, args...)
}
