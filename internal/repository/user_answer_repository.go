package repository

import (
	"errors"
	"fmt"

	"github.com/studiva/studiva-backend/internal/apperror"
	"github.com/studiva/studiva-backend/internal/model"
	"gorm.io/gorm"
)

// UserAnswerRepository is the append-only submission ledger. The
// (user_id, attempt_id, question_id) unique index enforces per-attempt
// uniqueness at the store, not via check-then-insert.
type UserAnswerRepository interface {
	Create(ua *model.UserAnswer) error
	AllByUser(userID uint) ([]model.UserAnswer, error)
	AllByUserAndChallenge(userID, challengeID uint, attemptID *string) ([]model.UserAnswer, error)
}

type userAnswerRepository struct {
	db *gorm.DB
}

func NewUserAnswerRepository(db *gorm.DB) UserAnswerRepository {
	return &userAnswerRepository{db: db}
}

func (r *userAnswerRepository) Create(ua *model.UserAnswer) error {
	if err := r.db.Create(ua).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: question %d already answered in this attempt",
				apperror.ErrDuplicateSubmission, ua.QuestionID)
		}
		return err
	}
	return nil
}

func (r *userAnswerRepository) AllByUser(userID uint) ([]model.UserAnswer, error) {
	var answers []model.UserAnswer
	err := r.db.
		Where("user_id = ?", userID).
		Order("end_time ASC").
		Find(&answers).Error
	return answers, err
}

func (r *userAnswerRepository) AllByUserAndChallenge(userID, challengeID uint, attemptID *string) ([]model.UserAnswer, error) {
	query := r.db.
		Joins("JOIN questions ON questions.id = user_answers.question_id AND questions.deleted_at IS NULL").
		Where("user_answers.user_id = ? AND questions.challenge_id = ?", userID, challengeID)
	if attemptID != nil {
		query = query.Where("user_answers.attempt_id = ?", *attemptID)
	}
	var answers []model.UserAnswer
	err := query.Order("user_answers.end_time ASC").Find(&answers).Error
	return answers, err
}
