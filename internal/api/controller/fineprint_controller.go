package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/priyansh/carmitra/internal/api/middleware"
	"github.com/priyansh/carmitra/internal/api/response"
	"github.com/priyansh/carmitra/internal/service"
)

const finePrintFilename = "contract_analysis.md"

type FinePrintController struct {
	svc *service.FinePrintService
}

func NewFinePrintController(svc *service.FinePrintService) *FinePrintController {
	return &FinePrintController{svc: svc}
}

// Analyze handles POST /fineprint/analyze.
func (ctrl *FinePrintController) Analyze(c *gin.Context) {
	var req service.FinePrintInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	st := middleware.Bundle(c).FinePrint
	result, err := ctrl.svc.Analyze(c.Request.Context(), st, req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, result)
}

// Result handles GET /fineprint/result.
func (ctrl *FinePrintController) Result(c *gin.Context) {
	writeResult(c, middleware.Bundle(c).FinePrint)
}

// Download handles GET /fineprint/result/download.
func (ctrl *FinePrintController) Download(c *gin.Context) {
	writeDownload(c, middleware.Bundle(c).FinePrint, finePrintFilename)
}
