package handler

import (
	"errors"
	"net/http"

	"github.com/mapyourmemory/memorymap/pkg/apperr"
	"github.com/mapyourmemory/memorymap/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type MemoryHandler struct {
	memoryService service.MemoryService
}

func NewMemoryHandler(memoryService service.MemoryService) *MemoryHandler {
	return &MemoryHandler{memoryService: memoryService}
}

// ListMemories returns every memory joined with its prompt text and category
// color, newest memory date first.
// GET /memories
func (h *MemoryHandler) ListMemories(c *gin.Context) {
	records, err := h.memoryService.List()
	if err != nil {
		log.WithError(err).Error("list memories")
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.ClientMessage(err)})
		return
	}
	c.JSON(http.StatusOK, records)
}

// CreateMemory ingests one multipart submission: file plus metadata fields.
// POST /memories
func (h *MemoryHandler) CreateMemory(c *gin.Context) {
	input := service.CreateMemoryInput{
		Name:        c.PostForm("memory_name"),
		Date:        c.PostForm("memory_date"),
		Place:       c.PostForm("place"),
		Latitude:    c.PostForm("latitude"),
		Longitude:   c.PostForm("longitude"),
		Description: c.PostForm("description"),
		Visibility:  c.PostForm("visibility"),
		PromptID:    c.PostForm("prompt_id"),
		// No auth in this deployment; an upstream proxy may set the header.
		UserID: c.GetHeader("X-User-ID"),
	}

	file, header, err := c.Request.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()
		input.File = file
		input.FileName = header.Filename
		input.FileSize = header.Size
	case errors.Is(err, http.ErrMissingFile):
		// leave File nil; the pipeline reports the missing file
	default:
		log.WithError(err).Warn("parse multipart form")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}

	record, err := h.memoryService.Create(c.Request.Context(), input)
	if err != nil {
		log.WithError(err).WithField("memory_name", input.Name).Error("create memory")
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.ClientMessage(err)})
		return
	}

	log.WithFields(log.Fields{
		"memory_id": record.MemoryID,
		"user_id":   record.UserID,
		"file_url":  record.FileURL,
	}).Info("memory created")
	c.JSON(http.StatusOK, record)
}
