package handler

import (
	"net/http"

	"github.com/mapyourmemory/memorymap/pkg/apperr"
	"github.com/mapyourmemory/memorymap/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type PromptHandler struct {
	promptService service.PromptService
}

func NewPromptHandler(promptService service.PromptService) *PromptHandler {
	return &PromptHandler{promptService: promptService}
}

// RandomPrompt serves the prompt bar: one random prompt with its category
// color, 404 when no prompts exist.
// GET /prompts/random
func (h *PromptHandler) RandomPrompt(c *gin.Context) {
	record, err := h.promptService.Random()
	if err != nil {
		if !apperr.IsKind(err, apperr.KindNotFound) {
			log.WithError(err).Error("random prompt")
		}
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.ClientMessage(err)})
		return
	}
	c.JSON(http.StatusOK, record)
}

// ListPrompts returns all prompts, newest first.
// GET /prompts
func (h *PromptHandler) ListPrompts(c *gin.Context) {
	records, err := h.promptService.List()
	if err != nil {
		log.WithError(err).Error("list prompts")
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.ClientMessage(err)})
		return
	}
	c.JSON(http.StatusOK, records)
}
