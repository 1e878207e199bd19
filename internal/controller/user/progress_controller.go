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

type ProgressController struct {
	progressSvc service.ProgressService
}

func NewProgressController(progressSvc service.ProgressService) *ProgressController {
	return &ProgressController{progressSvc: progressSvc}
}

// RecordProgress godoc
// @Summary Report reading progress for a material
// @Description Stores the new progress only if it beats the previous best; completed materials are frozen. Always returns the authoritative record.
// @Tags progress
// @Accept json
// @Produce json
// @Param material_id path int true "Material ID"
// @Param progress body dto.RecordProgressRequest true "Progress percentage (0-100)"
// @Success 200 {object} dto.ProgressResponse
// @Failure 400 {object} dto.ErrorResponse "Progress outside [0,100]"
// @Failure 404 {object} dto.ErrorResponse "Material not found"
// @Router /materials/{material_id}/progress [post]
func (ctrl *ProgressController) RecordProgress(c *gin.Context) {
	materialID, err := strconv.ParseUint(c.Param("material_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid material ID format"})
		return
	}
	var req dto.RecordProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind RecordProgressRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user := middleware.CurrentUser(c)
	resp, err := ctrl.progressSvc.RecordProgress(user.ID, uint(materialID), *req.Progress)
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetProgress godoc
// @Summary Get the caller's progress for a material
// @Description Returns the best recorded progress; a zero record when none exists.
// @Tags progress
// @Produce json
// @Param material_id path int true "Material ID"
// @Success 200 {object} dto.ProgressResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Router /materials/{material_id}/progress [get]
func (ctrl *ProgressController) GetProgress(c *gin.Context) {
	materialID, err := strconv.ParseUint(c.Param("material_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid material ID format"})
		return
	}

	user := middleware.CurrentUser(c)
	resp, err := ctrl.progressSvc.GetProgress(user.ID, uint(materialID))
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
