package model

import "time"

// UserAnswer is one immutable submitted quiz answer. AttemptID scopes
// reattempts: the composite unique index rejects a second answer for the
// same (user, attempt, question), while NULL attempt ids stay unconstrained
// so attempt-less submissions can repeat.
type UserAnswer struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	UserID     uint      `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_attempt_question"`
	QuestionID uint      `json:"question_id" gorm:"not null;index;uniqueIndex:idx_user_attempt_question"`
	Question   *Question `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	AnswerID   uint      `json:"answer_id" gorm:"not null"`
	AttemptID  *string   `json:"attempt_id,omitempty" gorm:"type:uuid;uniqueIndex:idx_user_attempt_question"`
	StartTime  time.Time `json:"start_time" gorm:"not null"`
	EndTime    time.Time `json:"end_time" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}
