package handler

import (
	"net/http"

	"github.com/mapyourmemory/memorymap/pkg/apperr"
	"github.com/mapyourmemory/memorymap/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	promptService service.PromptService
}

func NewCategoryHandler(promptService service.PromptService) *CategoryHandler {
	return &CategoryHandler{promptService: promptService}
}

// ListCategories returns all categories ordered by name.
// GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	records, err := h.promptService.ListCategories()
	if err != nil {
		log.WithError(err).Error("list categories")
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.ClientMessage(err)})
		return
	}
	c.JSON(http.StatusOK, records)
}
