package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/studiva/studiva-backend/internal/apperror"
	"github.com/studiva/studiva-backend/internal/dto"
	"github.com/studiva/studiva-backend/internal/service"
)

// AdminScoreController serves aggregate views over other users. Routes are
// mounted behind the admin-role middleware.
type AdminScoreController struct {
	scoreSvc service.ScoreService
}

func NewAdminScoreController(scoreSvc service.ScoreService) *AdminScoreController {
	return &AdminScoreController{scoreSvc: scoreSvc}
}

// GetAllUserOverviews godoc
// @Summary (Admin) Get the score overview of every user
// @Description Per user: total points, completed/total materials and per-module totals.
// @Tags Admin - Scores
// @Produce json
// @Success 200 {array} dto.UserOverviewDTO
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/scores [get]
func (ctrl *AdminScoreController) GetAllUserOverviews(c *gin.Context) {
	overviews, err := ctrl.scoreSvc.GetAllUserOverviews()
	if err != nil {
		log.Error().Err(err).Msg("Admin: failed to build user overviews")
		c.JSON(apperror.HTTPStatus(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, overviews)
}

// GetUserStats godoc
// @Summary (Admin) Get one user's full score detail
// @Tags Admin - Scores
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.UserDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/users/{user_id}/stats [get]
func (ctrl *AdminScoreController) GetUserStats(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user ID format"})
		return
	}
	detail, err := ctrl.scoreSvc.GetUserDetail(uint(userID))
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}
