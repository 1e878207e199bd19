package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/studiva/studiva-backend/internal/apperror"
	"github.com/studiva/studiva-backend/internal/dto"
	"github.com/studiva/studiva-backend/internal/service"
)

type CatalogController struct {
	catalogSvc service.CatalogService
}

func NewCatalogController(catalogSvc service.CatalogService) *CatalogController {
	return &CatalogController{catalogSvc: catalogSvc}
}

// ListModules godoc
// @Summary List all modules with their materials and challenges
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.ModuleResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /modules [get]
func (ctrl *CatalogController) ListModules(c *gin.Context) {
	modules, err := ctrl.catalogSvc.ListModules()
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, modules)
}

// GetModule godoc
// @Summary Get one module with nested materials, challenges, questions and answers
// @Tags catalog
// @Produce json
// @Param module_id path int true "Module ID"
// @Success 200 {object} dto.ModuleResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Module not found"
// @Router /modules/{module_id} [get]
func (ctrl *CatalogController) GetModule(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("module_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid module ID format"})
		return
	}
	module, err := ctrl.catalogSvc.GetModule(uint(id))
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, module)
}
