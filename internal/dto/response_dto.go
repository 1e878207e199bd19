package dto

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

type AnswerResponse struct {
	ID         uint    `json:"id"`
	QuestionID uint    `json:"question_id"`
	Answer     string  `json:"answer"`
	LogoPath   *string `json:"logo_path,omitempty"`
}

type QuestionResponse struct {
	ID          uint             `json:"id"`
	ChallengeID uint             `json:"challenge_id"`
	Question    string           `json:"question"`
	Points      float64          `json:"points"`
	AnswerID    *uint            `json:"answer_id,omitempty"`
	Answers     []AnswerResponse `json:"answers,omitempty"`
}

type ChallengeResponse struct {
	ID            uint               `json:"id"`
	ModuleID      uint               `json:"module_id"`
	Title         string             `json:"title"`
	Content       string             `json:"content,omitempty"`
	LogoPath      *string            `json:"logo_path,omitempty"`
	QuestionCount int                `json:"question_count"`
	Questions     []QuestionResponse `json:"questions,omitempty"`
}

type MaterialResponse struct {
	ID       uint    `json:"id"`
	ModuleID uint    `json:"module_id"`
	Title    string  `json:"title"`
	Content  string  `json:"content,omitempty"`
	PDFPath  *string `json:"pdf_path,omitempty"`
	LogoPath *string `json:"logo_path,omitempty"`
	Points   float64 `json:"points"`
}

type ModuleResponse struct {
	ID          uint                `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	LogoPath    *string             `json:"logo_path,omitempty"`
	Materials   []MaterialResponse  `json:"materials,omitempty"`
	Challenges  []ChallengeResponse `json:"challenges,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

type UserResponse struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Nickname    string     `json:"nickname"`
	Email       string     `json:"email"`
	NISN        *string    `json:"nisn,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	AvatarPath  *string    `json:"avatar_path,omitempty"`
}

// ProgressResponse is the recorder's authoritative answer for one
// (user, material) pair. A missing record reads as zero, not an error.
type ProgressResponse struct {
	Progress  float64 `json:"progress"`
	Completed bool    `json:"completed"`
}

// SubmissionResponse echoes a stored answer submission.
type SubmissionResponse struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	QuestionID uint      `json:"question_id"`
	AnswerID   uint      `json:"answer_id"`
	AttemptID  *string   `json:"attempt_id,omitempty"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	CreatedAt  time.Time `json:"created_at"`
}
