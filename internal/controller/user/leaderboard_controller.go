package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/studiva/studiva-backend/internal/apperror"
	"github.com/studiva/studiva-backend/internal/dto"
	"github.com/studiva/studiva-backend/internal/service"
)

type LeaderboardController struct {
	leaderboardSvc service.LeaderboardService
}

func NewLeaderboardController(leaderboardSvc service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{leaderboardSvc: leaderboardSvc}
}

// GetLeaderboard godoc
// @Summary Get the top-20 leaderboard
// @Description Every user ranked by challenge points (desc), challenge time (asc), material points (desc). Users with no activity rank with zeros.
// @Tags leaderboard
// @Produce json
// @Success 200 {array} dto.LeaderboardEntryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /leaderboard [get]
func (ctrl *LeaderboardController) GetLeaderboard(c *gin.Context) {
	entries, err := ctrl.leaderboardSvc.Top(service.DefaultLeaderboardSize)
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute leaderboard")
		c.JSON(apperror.HTTPStatus(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}
