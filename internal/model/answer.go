package model

import (
	"time"

	"gorm.io/gorm"
)

// Answer is a candidate choice for a Question. It carries no correctness
// flag of its own; correctness is decided by comparing the submitted answer
// id against the question's AnswerID at read time.
type Answer struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	QuestionID uint           `json:"question_id" gorm:"not null;index"`
	Answer     string         `json:"answer" gorm:"type:text;not null"`
	LogoPath   *string        `json:"logo_path,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
