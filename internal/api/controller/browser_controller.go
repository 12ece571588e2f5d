package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/priyansh/carmitra/internal/api/middleware"
	"github.com/priyansh/carmitra/internal/api/response"
	"github.com/priyansh/carmitra/internal/service"
)

const browserFilename = "search_results.md"

type BrowserController struct {
	svc *service.BrowserService
}

func NewBrowserController(svc *service.BrowserService) *BrowserController {
	return &BrowserController{svc: svc}
}

// Search handles POST /browser/search.
func (ctrl *BrowserController) Search(c *gin.Context) {
	var req service.BrowserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	st := middleware.Bundle(c).Browser
	result, err := ctrl.svc.Search(c.Request.Context(), st, req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, result)
}

// Featured handles GET /browser/featured: the static landing catalog.
func (ctrl *BrowserController) Featured(c *gin.Context) {
	response.Success(c, ctrl.svc.Featured())
}

// Result handles GET /browser/result.
func (ctrl *BrowserController) Result(c *gin.Context) {
	writeResult(c, middleware.Bundle(c).Browser)
}

// Download handles GET /browser/result/download.
func (ctrl *BrowserController) Download(c *gin.Context) {
	writeDownload(c, middleware.Bundle(c).Browser, browserFilename)
}
