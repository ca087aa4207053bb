package database

import (
	"log"
	"serial_novel/internal/pkg/config"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// ReaderDriver sqlx 使用的驱动名，占位符为 $n
const ReaderDriver = "pgx"

// InitReader 初始化只读查询连接
// 配置了 replica_host 时连接只读副本，否则复用写库的连接池
func InitReader(writer *gorm.DB) *sqlx.DB {
	if dsn := config.GlobalConfig.Database.ReplicaDSN(); dsn != "" {
		reader, err := sqlx.Connect(ReaderDriver, dsn)
		if err != nil {
			log.Fatalf("Failed to connect to read replica: %v", err)
		}
		configureConnectionPool(reader.DB, config.GlobalConfig.Database)
		log.Println("Read replica connected")
		return reader
	}

	sqlDB, err := writer.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying sql.DB: %v", err)
	}
	return sqlx.NewDb(sqlDB, ReaderDriver)
}
