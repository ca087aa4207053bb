package database

import (
	"database/sql"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// RegisterPoolStats 把连接池统计注册为 Prometheus 指标
// 抓取时实时读取 sql.DB.Stats()，不需要后台轮询
func RegisterPoolStats(reg prometheus.Registerer, name string, db *sql.DB) error {
	if err := reg.Register(collectors.NewDBStatsCollector(db, name)); err != nil {
		return fmt.Errorf("register pool stats for %s: %w", name, err)
	}
	return nil
}
