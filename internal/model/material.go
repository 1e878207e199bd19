package model

import (
	"time"

	"gorm.io/gorm"
)

// Material is a content unit (a PDF document) worth a decimal point value.
// A user's earned points for a material are proportional to their recorded
// progress percentage.
type Material struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	ModuleID  uint           `json:"module_id" gorm:"not null;index"`
	Title     string         `json:"title" gorm:"not null"`
	Content   string         `json:"content,omitempty" gorm:"type:text"`
	PDFPath   *string        `json:"pdf_path,omitempty"`
	LogoPath  *string        `json:"logo_path,omitempty"`
	Points    float64        `json:"points" gorm:"not null;default:0"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
