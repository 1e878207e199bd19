package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/studiva/studiva-backend/internal/apperror"
	"github.com/studiva/studiva-backend/internal/dto"
	"github.com/studiva/studiva-backend/internal/middleware"
	"github.com/studiva/studiva-backend/internal/service"
)

type SubmissionController struct {
	submissionSvc service.SubmissionService
}

func NewSubmissionController(submissionSvc service.SubmissionService) *SubmissionController {
	return &SubmissionController{submissionSvc: submissionSvc}
}

// SubmitAnswer godoc
// @Summary Submit a timed answer to a question
// @Description Appends an immutable submission. With an attempt_id, a second answer for the same question in that attempt is rejected.
// @Tags submissions
// @Accept json
// @Produce json
// @Param submission body dto.SubmitAnswerRequest true "Answer submission"
// @Success 201 {object} dto.SubmissionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or end_time before start_time"
// @Failure 404 {object} dto.ErrorResponse "Question or answer not found"
// @Failure 409 {object} dto.ErrorResponse "Already answered in this attempt"
// @Router /user-answers [post]
func (ctrl *SubmissionController) SubmitAnswer(c *gin.Context) {
	var req dto.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SubmitAnswerRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user := middleware.CurrentUser(c)
	resp, err := ctrl.submissionSvc.SubmitAnswer(user.ID, req)
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetChallengeAttemptStats godoc
// @Summary Get the caller's statistics for a challenge
// @Description Correct/incorrect counts, points, elapsed seconds and points-per-second ratio, optionally narrowed to one attempt.
// @Tags submissions
// @Produce json
// @Param challenge_id path int true "Challenge ID"
// @Param attempt_id query string false "Attempt UUID to narrow the statistics to one retake"
// @Success 200 {object} dto.ChallengeScoreDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Challenge not found"
// @Router /challenges/{challenge_id}/stats [get]
func (ctrl *SubmissionController) GetChallengeAttemptStats(c *gin.Context) {
	challengeID, err := strconv.ParseUint(c.Param("challenge_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid challenge ID format"})
		return
	}
	var attemptID *string
	if v := c.Query("attempt_id"); v != "" {
		attemptID = &v
	}

	user := middleware.CurrentUser(c)
	resp, err := ctrl.submissionSvc.ChallengeAttemptStats(user.ID, uint(challengeID), attemptID)
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
