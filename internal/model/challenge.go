package model

import (
	"time"

	"gorm.io/gorm"
)

// Challenge is a quiz unit belonging directly to a Module.
type Challenge struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	ModuleID  uint           `json:"module_id" gorm:"not null;index"`
	Title     string         `json:"title" gorm:"not null"`
	Content   string         `json:"content,omitempty" gorm:"type:text"`
	LogoPath  *string        `json:"logo_path,omitempty"`
	Questions []Question     `json:"questions,omitempty" gorm:"foreignKey:ChallengeID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
