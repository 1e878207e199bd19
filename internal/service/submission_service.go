package service

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/studiva/studiva-backend/internal/apperror"
	"github.com/studiva/studiva-backend/internal/dto"
	"github.com/studiva/studiva-backend/internal/model"
	"github.com/studiva/studiva-backend/internal/repository"
	"github.com/studiva/studiva-backend/internal/scoring"
)

// SubmissionService appends timed answer submissions and derives attempt
// statistics. Submissions are immutable; correctness is never stored, only
// computed at read time against the question's current correct answer.
type SubmissionService interface {
	SubmitAnswer(userID uint, req dto.SubmitAnswerRequest) (*dto.SubmissionResponse, error)
	ChallengeAttemptStats(userID, challengeID uint, attemptID *string) (*dto.ChallengeScoreDTO, error)
}

type submissionService struct {
	catalogRepo repository.CatalogRepository
	answerRepo  repository.UserAnswerRepository
}

func NewSubmissionService(catalogRepo repository.CatalogRepository, answerRepo repository.UserAnswerRepository) SubmissionService {
	return &submissionService{catalogRepo: catalogRepo, answerRepo: answerRepo}
}

func (s *submissionService) SubmitAnswer(userID uint, req dto.SubmitAnswerRequest) (*dto.SubmissionResponse, error) {
	if req.EndTime.Before(req.StartTime) {
		return nil, apperror.Validationf("end_time must not be before start_time")
	}
	if req.AttemptID != nil {
		if _, err := uuid.Parse(*req.AttemptID); err != nil {
			return nil, apperror.Validationf("attempt_id is not a valid UUID")
		}
	}

	question, err := s.catalogRepo.FindQuestionByID(req.QuestionID)
	if err != nil {
		return nil, err
	}
	answer, err := s.catalogRepo.FindAnswerByID(req.AnswerID)
	if err != nil {
		return nil, err
	}
	if answer.QuestionID != question.ID {
		return nil, apperror.Validationf("answer %d does not belong to question %d", answer.ID, question.ID)
	}

	ua := model.UserAnswer{
		UserID:     userID,
		QuestionID: req.QuestionID,
		AnswerID:   req.AnswerID,
		AttemptID:  req.AttemptID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}
	if err := s.answerRepo.Create(&ua); err != nil {
		log.Warn().Err(err).Uint("userID", userID).Uint("questionID", req.QuestionID).Msg("Answer submission rejected")
		return nil, err
	}

	var resp dto.SubmissionResponse
	if err := copier.Copy(&resp, &ua); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *submissionService) ChallengeAttemptStats(userID, challengeID uint, attemptID *string) (*dto.ChallengeScoreDTO, error) {
	challenge, err := s.catalogRepo.FindChallengeByID(challengeID)
	if err != nil {
		return nil, err
	}
	answers, err := s.answerRepo.AllByUserAndChallenge(userID, challengeID, attemptID)
	if err != nil {
		return nil, err
	}

	questions := make(map[uint]model.Question, len(challenge.Questions))
	for _, q := range challenge.Questions {
		questions[q.ID] = q
	}
	stats := scoring.Accumulate(answers, questions)

	return &dto.ChallengeScoreDTO{
		ChallengeID:      challenge.ID,
		ChallengeTitle:   challenge.Title,
		TotalPoints:      scoring.FormatPoints(stats.TotalPoints),
		CorrectAnswers:   stats.Correct,
		IncorrectAnswers: stats.Incorrect,
		TotalTime:        stats.TotalTimeSeconds,
		Ratio:            stats.Ratio(),
	}, nil
}
