package model

import "time"

// Model handles the integer surrogate ID and the creation timestamp every
// parent table carries. The column stays `create_at` to match the existing
// schema.
type Model struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	CreateAt time.Time `gorm:"column:create_at;autoCreateTime;default:CURRENT_TIMESTAMP" json:"create_at"`
}
