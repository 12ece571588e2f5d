package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/priyansh/carmitra/internal/api/middleware"
	"github.com/priyansh/carmitra/internal/api/response"
	"github.com/priyansh/carmitra/internal/model"
	"github.com/priyansh/carmitra/internal/service"
)

type AssistantController struct {
	svc *service.AssistantService
}

func NewAssistantController(svc *service.AssistantService) *AssistantController {
	return &AssistantController{svc: svc}
}

// ChatRequest is one user turn. Mode "voice" swaps in the TTS system prompt
// and returns a speech-ready transcript alongside the markdown reply.
type ChatRequest struct {
	Message string `json:"message"`
	Mode    string `json:"mode"` // "text" (default) or "voice"
}

// Chat handles POST /assistant/chat.
func (ctrl *AssistantController) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Mode != "" && req.Mode != "text" && req.Mode != "voice" {
		response.Error(c, http.StatusBadRequest, "mode must be text or voice")
		return
	}

	st := middleware.Bundle(c).Assistant
	reply, err := ctrl.svc.Chat(c.Request.Context(), st, req.Message, req.Mode == "voice")
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, reply)
}

// UpdatePreferences handles POST /assistant/preferences. The block is
// recorded into the history; no completion call happens here.
func (ctrl *AssistantController) UpdatePreferences(c *gin.Context) {
	var req model.Preferences
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	st := middleware.Bundle(c).Assistant
	if err := ctrl.svc.UpdatePreferences(st, req); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, nil)
}

// History handles GET /assistant/history: the conversation without the
// system prompt.
func (ctrl *AssistantController) History(c *gin.Context) {
	response.Success(c, ctrl.svc.History(middleware.Bundle(c).Assistant))
}

// Clear handles POST /assistant/clear.
func (ctrl *AssistantController) Clear(c *gin.Context) {
	ctrl.svc.Clear(middleware.Bundle(c).Assistant)
	response.Success(c, nil)
}
