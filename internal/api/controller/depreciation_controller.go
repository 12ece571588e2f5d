package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/priyansh/carmitra/internal/api/middleware"
	"github.com/priyansh/carmitra/internal/api/response"
	"github.com/priyansh/carmitra/internal/service"
)

const depreciationFilename = "depreciation_analysis.md"

type DepreciationController struct {
	svc *service.DepreciationService
}

func NewDepreciationController(svc *service.DepreciationService) *DepreciationController {
	return &DepreciationController{svc: svc}
}

// Predict handles POST /depreciation/predict.
func (ctrl *DepreciationController) Predict(c *gin.Context) {
	var req service.CarInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	st := middleware.Bundle(c).Depreciation
	result, err := ctrl.svc.Predict(c.Request.Context(), st, req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, result)
}

// Result handles GET /depreciation/result.
func (ctrl *DepreciationController) Result(c *gin.Context) {
	writeResult(c, middleware.Bundle(c).Depreciation)
}

// Download handles GET /depreciation/result/download.
func (ctrl *DepreciationController) Download(c *gin.Context) {
	writeDownload(c, middleware.Bundle(c).Depreciation, depreciationFilename)
}
