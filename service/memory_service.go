package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"mime"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mapyourmemory/memorymap/events"
	"github.com/mapyourmemory/memorymap/models"
	"github.com/mapyourmemory/memorymap/pkg/apperr"
	"github.com/mapyourmemory/memorymap/pkg/metrics"
	"github.com/mapyourmemory/memorymap/repository"
	"github.com/mapyourmemory/memorymap/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// CreateMemoryInput carries the multipart form fields plus the file stream.
// Latitude/Longitude stay raw strings here: empty values coerce to NULL at
// the data layer instead of being rejected.
type CreateMemoryInput struct {
	Name        string `validate:"required"`
	Date        string `validate:"required,datetime=2006-01-02"`
	Place       string `validate:"required"`
	Latitude    string
	Longitude   string
	Description string
	Visibility  string `validate:"omitempty,oneof=private public"`
	PromptID    string `validate:"omitempty,uuid"`
	UserID      string

	File     io.Reader
	FileName string
	FileSize int64
}

type MemoryService interface {
	Create(ctx context.Context, input CreateMemoryInput) (*models.MemoryRecord, error)
	List() ([]models.MemoryRecord, error)
}

type MemoryServiceImpl struct {
	repo      repository.MemoryRepository
	uploader  storage.Uploader
	publisher events.Publisher
	validate  *validator.Validate
}

func NewMemoryService(repo repository.MemoryRepository, uploader storage.Uploader, publisher events.Publisher) MemoryService {
	return &MemoryServiceImpl{
		repo:      repo,
		uploader:  uploader,
		publisher: publisher,
		validate:  validator.New(),
	}
}

// Create runs the ingestion pipeline. Each step is a hard precondition for
// the next: validation, then the durable file write, then the row insert,
// then the joined re-fetch. A storage failure leaves no partial record; a
// row-insert failure after a stored file leaves an orphan file, which is
// accepted and logged rather than compensated.
func (s *MemoryServiceImpl) Create(ctx context.Context, input CreateMemoryInput) (*models.MemoryRecord, error) {
	if input.File == nil {
		return nil, apperr.Validation("Missing file")
	}
	if err := s.validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, apperr.Validation("invalid field: " + toFormField(verrs[0].Field()))
		}
		return nil, apperr.Validation("invalid input")
	}

	lat, err := parseCoordinate(input.Latitude, -90, 90)
	if err != nil {
		return nil, apperr.Validation("invalid latitude")
	}
	lng, err := parseCoordinate(input.Longitude, -180, 180)
	if err != nil {
		return nil, apperr.Validation("invalid longitude")
	}

	userID := input.UserID
	if userID == "" {
		userID = models.AnonymousUserID
	}

	fileURL, err := s.uploader.Store(ctx, input.File, input.FileName)
	if err != nil {
		return nil, err
	}
	if input.FileSize > 0 {
		metrics.UploadBytes.Add(float64(input.FileSize))
	}

	memoryDate, _ := time.Parse("2006-01-02", input.Date)

	memory := models.Memory{
		Name:        input.Name,
		FileURL:     fileURL,
		Description: nilIfEmpty(input.Description),
		MemoryDate:  memoryDate,
		Latitude:    lat,
		Longitude:   lng,
		UserID:      userID,
		Place:       input.Place,
		Visibility:  defaultVisibility(input.Visibility),
		Metadata:    fileMetadata(input),
	}
	if input.PromptID != "" {
		id, _ := uuid.Parse(input.PromptID)
		memory.PromptID = &id
	}

	if err := s.repo.Create(&memory); err != nil {
		metrics.MemoriesCreated.WithLabelValues("error").Inc()
		log.WithError(err).WithField("file_url", fileURL).Error("insert memory (stored file is now orphaned)")
		return nil, apperr.DataStore("DB error inserting memory", err)
	}

	record, err := s.repo.GetJoinedByID(memory.ID)
	if err != nil {
		metrics.MemoriesCreated.WithLabelValues("error").Inc()
		return nil, apperr.DataStore("DB error inserting memory", err)
	}
	metrics.MemoriesCreated.WithLabelValues("success").Inc()

	go s.publisher.PublishMemoryCreated(context.Background(), record)
	return record, nil
}

func (s *MemoryServiceImpl) List() ([]models.MemoryRecord, error) {
	records, err := s.repo.ListJoined()
	if err != nil {
		return nil, apperr.DataStore("DB error fetching memories", err)
	}
	return records, nil
}

func parseCoordinate(raw string, min, max float64) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	// NaN compares false against both bounds, so reject it explicitly.
	if err != nil || math.IsNaN(v) || v < min || v > max {
		return nil, errors.New("coordinate out of range")
	}
	return &v, nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func defaultVisibility(v string) string {
	if v == "" {
		return models.VisibilityPrivate
	}
	return v
}

func fileMetadata(input CreateMemoryInput) datatypes.JSON {
	contentType := mime.TypeByExtension(filepath.Ext(input.FileName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	meta, _ := json.Marshal(map[string]any{
		"original_filename": input.FileName,
		"size_bytes":        input.FileSize,
		"content_type":      contentType,
	})
	return meta
}

// toFormField maps struct field names back to the multipart form names the
// client submitted.
func toFormField(field string) string {
	switch field {
	case "Name":
		return "memory_name"
	case "Date":
		return "memory_date"
	case "Place":
		return "place"
	case "Visibility":
		return "visibility"
	case "PromptID":
		return "prompt_id"
	default:
		return field
	}
}
