package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/priyansh/carmitra/internal/api/middleware"
	"github.com/priyansh/carmitra/internal/api/response"
	"github.com/priyansh/carmitra/internal/service"
)

const policyFilename = "policy_analysis.md"

type PolicyController struct {
	svc *service.PolicyService
}

func NewPolicyController(svc *service.PolicyService) *PolicyController {
	return &PolicyController{svc: svc}
}

// Scan handles POST /policy/scan.
func (ctrl *PolicyController) Scan(c *gin.Context) {
	var req service.PolicyInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	slog.Info("policy scan requested", "policy_type", req.PolicyType)
	st := middleware.Bundle(c).Policy
	result, err := ctrl.svc.Scan(c.Request.Context(), st, req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, result)
}

// Result handles GET /policy/result.
func (ctrl *PolicyController) Result(c *gin.Context) {
	writeResult(c, middleware.Bundle(c).Policy)
}

// Download handles GET /policy/result/download.
func (ctrl *PolicyController) Download(c *gin.Context) {
	writeDownload(c, middleware.Bundle(c).Policy, policyFilename)
}
