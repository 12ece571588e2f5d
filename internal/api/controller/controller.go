// Package controller binds HTTP requests to the feature services. Each
// controller owns one page of the dashboard; the shared helpers below keep
// the error mapping and result/download endpoints identical across pages.
package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/priyansh/carmitra/internal/api/response"
	"github.com/priyansh/carmitra/internal/normalize"
	"github.com/priyansh/carmitra/internal/session"
)

// writeError maps service errors onto the envelope: validation problems are
// 422 with the field list, anything else is a 500. Completion failures never
// arrive here; they are stored as Failure results upstream.
func writeError(c *gin.Context, err error) {
	var verr *normalize.ValidationError
	if errors.As(err, &verr) {
		response.ValidationError(c, verr)
		return
	}
	response.Error(c, http.StatusInternalServerError, err.Error())
}

// writeResult returns the feature's current result snapshot.
func writeResult(c *gin.Context, st *session.FeatureState) {
	response.Success(c, st.Snapshot())
}

// writeDownload serves the last successful report as a markdown attachment
// with the feature's fixed filename.
func writeDownload(c *gin.Context, st *session.FeatureState, filename string) {
	r := st.Snapshot()
	if r.Phase != session.PhaseSuccess {
		response.Error(c, http.StatusNotFound, "no analysis to download yet")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(r.Raw))
}
