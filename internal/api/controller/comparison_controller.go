package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/priyansh/carmitra/internal/api/middleware"
	"github.com/priyansh/carmitra/internal/api/response"
	"github.com/priyansh/carmitra/internal/model"
	"github.com/priyansh/carmitra/internal/service"
)

const comparisonFilename = "comparison_analysis.md"

type ComparisonController struct {
	svc *service.ComparisonService
}

func NewComparisonController(svc *service.ComparisonService) *ComparisonController {
	return &ComparisonController{svc: svc}
}

// AddModel handles POST /comparison/models. The 6th model is rejected with
// the set unchanged.
func (ctrl *ComparisonController) AddModel(c *gin.Context) {
	var req service.ComparisonInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	st := middleware.Bundle(c).Comparison
	if err := ctrl.svc.Add(st, req); err != nil {
		if errors.Is(err, model.ErrComparisonFull) {
			response.Error(c, http.StatusConflict, err.Error())
			return
		}
		writeError(c, err)
		return
	}
	response.Success(c, ctrl.svc.Models(st))
}

// RemoveModel handles DELETE /comparison/models/:index.
func (ctrl *ComparisonController) RemoveModel(c *gin.Context) {
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "index must be an integer")
		return
	}

	st := middleware.Bundle(c).Comparison
	if err := ctrl.svc.Remove(st, i); err != nil {
		response.Error(c, http.StatusNotFound, err.Error())
		return
	}
	response.Success(c, ctrl.svc.Models(st))
}

// ListModels handles GET /comparison/models.
func (ctrl *ComparisonController) ListModels(c *gin.Context) {
	response.Success(c, ctrl.svc.Models(middleware.Bundle(c).Comparison))
}

// Compare handles POST /comparison/compare.
func (ctrl *ComparisonController) Compare(c *gin.Context) {
	st := middleware.Bundle(c).Comparison
	result, err := ctrl.svc.Compare(c.Request.Context(), st)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, result)
}

// Result handles GET /comparison/result.
func (ctrl *ComparisonController) Result(c *gin.Context) {
	writeResult(c, middleware.Bundle(c).Comparison.FeatureState)
}

// Download handles GET /comparison/result/download.
func (ctrl *ComparisonController) Download(c *gin.Context) {
	writeDownload(c, middleware.Bundle(c).Comparison.FeatureState, comparisonFilename)
}
