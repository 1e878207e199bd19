package dto

import "time"

// RecordProgressRequest reports a new progress percentage for a material.
// Progress is a pointer so an explicit 0 still binds.
type RecordProgressRequest struct {
	Progress *float64 `json:"progress" binding:"required"`
}

// SubmitAnswerRequest is a timed answer to one question. AttemptID is an
// optional UUID grouping the submissions of a single challenge retake.
type SubmitAnswerRequest struct {
	QuestionID uint      `json:"question_id" binding:"required"`
	AnswerID   uint      `json:"answer_id" binding:"required"`
	AttemptID  *string   `json:"attempt_id,omitempty"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	EndTime    time.Time `json:"end_time" binding:"required"`
}

// DailyPointsQuery bounds the daily point series, inclusive on both ends.
// Dates are "2006-01-02".
type DailyPointsQuery struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}
