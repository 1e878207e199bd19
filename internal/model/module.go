package model

import (
	"time"

	"gorm.io/gorm"
)

// Module is the top-level course unit. Materials and Challenges both hang
// directly off a Module.
type Module struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null;uniqueIndex"`
	Description string         `json:"description,omitempty"`
	LogoPath    *string        `json:"logo_path,omitempty"`
	Materials   []Material     `json:"materials,omitempty" gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE"`
	Challenges  []Challenge    `json:"challenges,omitempty" gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
