package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/priyansh/carmitra/internal/normalize"
)

// Response is the uniform envelope of every JSON endpoint.
type Response struct {
	Code int         `json:"code"` // 0 on success, -1 on error
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

// Success writes a 200 envelope around the payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 0,
		Msg:  "success",
		Data: data,
	})
}

// Error writes an error envelope with the given status.
func Error(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, Response{
		Code: -1,
		Msg:  msg,
		Data: nil,
	})
}

// ValidationError writes a 422 carrying the ordered offending-field list, so
// the UI can render every error inline in one pass.
func ValidationError(c *gin.Context, verr *normalize.ValidationError) {
	c.JSON(http.StatusUnprocessableEntity, Response{
		Code: -1,
		Msg:  verr.Error(),
		Data: gin.H{"fields": verr.Fields},
	})
}
