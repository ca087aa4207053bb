package model

import "time"

// BaseModel 基础模型，自增主键
// 内容一经创建不再修改（点赞数除外），因此没有 UpdatedAt / DeletedAt
type BaseModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" db:"id" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" db:"created_at" json:"created_at"`
}
