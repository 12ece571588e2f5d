package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/priyansh/carmitra/internal/api/middleware"
	"github.com/priyansh/carmitra/internal/api/response"
	"github.com/priyansh/carmitra/internal/service"
)

const insightsFilename = "market_analysis.md"

type InsightsController struct {
	svc *service.InsightsService
}

func NewInsightsController(svc *service.InsightsService) *InsightsController {
	return &InsightsController{svc: svc}
}

// Generate handles POST /insights/generate.
func (ctrl *InsightsController) Generate(c *gin.Context) {
	var req service.CarInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	st := middleware.Bundle(c).Insights
	result, err := ctrl.svc.Generate(c.Request.Context(), st, req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, result)
}

// Result handles GET /insights/result.
func (ctrl *InsightsController) Result(c *gin.Context) {
	writeResult(c, middleware.Bundle(c).Insights)
}

// Download handles GET /insights/result/download.
func (ctrl *InsightsController) Download(c *gin.Context) {
	writeDownload(c, middleware.Bundle(c).Insights, insightsFilename)
}
