package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/studiva/studiva-backend/internal/apperror"
	"github.com/studiva/studiva-backend/internal/dto"
	"github.com/studiva/studiva-backend/internal/middleware"
	"github.com/studiva/studiva-backend/internal/service"
)

type ScoreController struct {
	scoreSvc service.ScoreService
}

func NewScoreController(scoreSvc service.ScoreService) *ScoreController {
	return &ScoreController{scoreSvc: scoreSvc}
}

// GetScores godoc
// @Summary Get the caller's per-module score detail
// @Description Materials with progress-proportional points and challenges with correctness, time and ratio, for every module.
// @Tags scores
// @Produce json
// @Success 200 {object} dto.ScoresResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /scores [get]
func (ctrl *ScoreController) GetScores(c *gin.Context) {
	user := middleware.CurrentUser(c)
	resp, err := ctrl.scoreSvc.GetScores(user.ID)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Failed to get scores")
		c.JSON(apperror.HTTPStatus(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetStatistics godoc
// @Summary Get the caller's overall statistics
// @Description Total correct-answer challenge points, total challenge seconds and total proportional material points.
// @Tags scores
// @Produce json
// @Success 200 {object} dto.StatisticsDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /statistics [get]
func (ctrl *ScoreController) GetStatistics(c *gin.Context) {
	user := middleware.CurrentUser(c)
	resp, err := ctrl.scoreSvc.GetStatistics(user.ID)
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetDailyPoints godoc
// @Summary Get the caller's daily point series
// @Description Challenge points bucketed by submission end date plus material points by progress update date, merged per day. Days with no activity are omitted.
// @Tags scores
// @Produce json
// @Param start_date query string true "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string true "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {array} dto.DailyPointDTO
// @Failure 400 {object} dto.ErrorResponse "Malformed or inverted date range"
// @Router /daily-points [get]
func (ctrl *ScoreController) GetDailyPoints(c *gin.Context) {
	var q dto.DailyPointsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user := middleware.CurrentUser(c)
	resp, err := ctrl.scoreSvc.GetDailyPoints(user.ID, q)
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetUserDetail godoc
// @Summary Get the caller's profile with statistics and module breakdown
// @Tags scores
// @Produce json
// @Success 200 {object} dto.UserDetailResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/me/detail [get]
func (ctrl *ScoreController) GetUserDetail(c *gin.Context) {
	user := middleware.CurrentUser(c)
	resp, err := ctrl.scoreSvc.GetUserDetail(user.ID)
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
