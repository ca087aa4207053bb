package repository

import (
	"context"
	"fmt"

	"serial_novel/pkg/errs"
	"serial_novel/pkg/metrics"
	"serial_novel/pkg/model"

	"gorm.io/gorm"
)

// LedgerRepository 点赞计数存储
type LedgerRepository interface {
	// AdjustLikes 原子地把 likes 加上 delta（下限为 0），返回新值
	AdjustLikes(ctx context.Context, kind model.ItemKind, id int64, delta int) (int64, error)
	// GetLikes 读取当前计数
	GetLikes(ctx context.Context, kind model.ItemKind, id int64) (int64, error)
}

type ledgerRepository struct {
	db      *gorm.DB
	metrics *metrics.MetricsCollector
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db, metrics: metrics.GetGlobalCollector()}
}

type likesRow struct {
	Likes int64
}

func (r *ledgerRepository) AdjustLikes(ctx context.Context, kind model.ItemKind, id int64, delta int) (int64, error) {
	table, ok := kind.Table()
	if !ok {
		return 0, errs.Invalid("unknown item kind %q", kind)
	}

	// 读-改-写在一条语句里完成，并发点赞不会丢失更新
	query := fmt.Sprintf(`UPDATE %q SET likes = GREATEST(likes + ?, 0) WHERE id = ? RETURNING likes`, table)

	var rows []likesRow
	if err := r.db.WithContext(ctx).Raw(query, delta, id).Scan(&rows).Error; err != nil {
		r.metrics.RecordDBError("adjust_likes")
		return 0, errs.Storage("adjust likes", err)
	}
	if len(rows) == 0 {
		return 0, errs.NotFound(string(kind), id)
	}
	return rows[0].Likes, nil
}

func (r *ledgerRepository) GetLikes(ctx context.Context, kind model.ItemKind, id int64) (int64, error) {
	table, ok := kind.Table()
	if !ok {
		return 0, errs.Invalid("unknown item kind %q", kind)
	}

	var rows []likesRow
	err := r.db.WithContext(ctx).Table(table).Select("likes").Where("id = ?", id).Scan(&rows).Error
	if err != nil {
		r.metrics.RecordDBError("get_likes")
		return 0, errs.Storage("get likes", err)
	}
	if len(rows) == 0 {
		return 0, errs.NotFound(string(kind), id)
	}
	return rows[0].Likes, nil
}
