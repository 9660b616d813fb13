package models

import (
	"time"
)

// BaseModel uses auto-incrementing ids; list endpoints rely on ascending id
// matching creation order.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
