package model

import "time"

// CompletionThreshold is the progress percentage at which a material counts
// as completed. Fixed policy, not configurable per material.
const CompletionThreshold = 95.0

// MaterialProgress records the best progress a user has reached on a
// material. Logically unique per (user, material); the recorder keeps a
// single live row per key and self-heals if duplicates ever exist, so the
// index is not declared unique. Rows are hard-deleted when replaced.
type MaterialProgress struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	UserID     uint      `json:"user_id" gorm:"not null;index:idx_material_progress_key"`
	MaterialID uint      `json:"material_id" gorm:"not null;index:idx_material_progress_key"`
	Progress   float64   `json:"progress" gorm:"not null;default:0"` // 0-100
	Completed  bool      `json:"completed" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (MaterialProgress) TableName() string {
	return "material_progress"
}
