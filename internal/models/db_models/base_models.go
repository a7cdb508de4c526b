package db_models

import (
	"time"
)

// BaseModel carries the common columns shared by every table. Rows are
// soft-deleted via IsDeleted; default queries must exclude flagged rows.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	IsDeleted bool      `gorm:"not null;default:false;index" json:"is_deleted"`
}

func (b BaseModel) GetID() uint { return b.ID }
