package model

import (
	"time"

	"gorm.io/gorm"
)

// Question belongs to one Challenge. AnswerID points at the designated
// correct Answer and is nullable: a question may have no correct answer
// assigned yet, in which case every submission against it scores as
// incorrect.
type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	ChallengeID   uint           `json:"challenge_id" gorm:"not null;index"`
	Question      string         `json:"question" gorm:"type:text;not null"`
	LogoPath      *string        `json:"logo_path,omitempty"`
	Points        float64        `json:"points" gorm:"not null;default:0"`
	AnswerID      *uint          `json:"answer_id,omitempty"`
	CorrectAnswer *Answer        `json:"correct_answer,omitempty" gorm:"foreignKey:AnswerID"`
	Answers       []Answer       `json:"answers,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
