package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/priyansh/carmitra/internal/api/middleware"
	"github.com/priyansh/carmitra/internal/api/response"
	"github.com/priyansh/carmitra/internal/service"
)

const financeFilename = "financial_analysis.md"

type FinanceController struct {
	svc *service.FinanceService
}

func NewFinanceController(svc *service.FinanceService) *FinanceController {
	return &FinanceController{svc: svc}
}

// Analyze handles POST /finance/analyze.
func (ctrl *FinanceController) Analyze(c *gin.Context) {
	var req service.FinanceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	slog.Info("deal analysis requested", "loan_term", req.LoanTerm)
	st := middleware.Bundle(c).Finance
	result, err := ctrl.svc.Analyze(c.Request.Context(), st, req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, result)
}

// Result handles GET /finance/result.
func (ctrl *FinanceController) Result(c *gin.Context) {
	writeResult(c, middleware.Bundle(c).Finance)
}

// Download handles GET /finance/result/download.
func (ctrl *FinanceController) Download(c *gin.Context) {
	writeDownload(c, middleware.Bundle(c).Finance, financeFilename)
}
