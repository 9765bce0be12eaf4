package service

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/mapyourmemory/memorymap/events"
	"github.com/mapyourmemory/memorymap/models"
	"github.com/mapyourmemory/memorymap/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMemoryRepo struct {
	memories []*models.Memory
	prompts  map[uuid.UUID]fakePrompt
	failOn   string
}

type fakePrompt struct {
	text  string
	color string
}

func (r *fakeMemoryRepo) Create(m *models.Memory) error {
	if r.failOn == "create" {
		return gorm.ErrInvalidDB
	}
	m.ID = uuid.New()
	r.memories = append(r.memories, m)
	return nil
}

func (r *fakeMemoryRepo) GetByID(id uuid.UUID) (*models.Memory, error) {
	for _, m := range r.memories {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeMemoryRepo) List(limit, offset int) ([]*models.Memory, error) {
	return r.memories, nil
}

func (r *fakeMemoryRepo) Count() (int64, error) {
	return int64(len(r.memories)), nil
}

func (r *fakeMemoryRepo) ListJoined() ([]models.MemoryRecord, error) {
	records := []models.MemoryRecord{}
	for _, m := range r.memories {
		records = append(records, r.join(m))
	}
	return records, nil
}

func (r *fakeMemoryRepo) GetJoinedByID(id uuid.UUID) (*models.MemoryRecord, error) {
	m, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	record := r.join(m)
	return &record, nil
}

func (r *fakeMemoryRepo) join(m *models.Memory) models.MemoryRecord {
	record := models.MemoryRecord{
		MemoryID:    m.ID,
		MemoryName:  m.Name,
		FileURL:     m.FileURL,
		Description: m.Description,
		MemoryDate:  m.MemoryDate,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		UserID:      m.UserID,
		Place:       m.Place,
		Visibility:  m.Visibility,
		PromptID:    m.PromptID,
		CreatedAt:   m.CreatedAt,
	}
	if m.PromptID != nil {
		if p, ok := r.prompts[*m.PromptID]; ok {
			record.PromptText = &p.text
			record.CategoryColor = &p.color
		}
	}
	return record
}

type fakeUploader struct {
	stored map[string][]byte
	fail   bool
	calls  int
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{stored: map[string][]byte{}}
}

func (u *fakeUploader) Store(ctx context.Context, r io.Reader, originalName string) (string, error) {
	u.calls++
	if u.fail {
		return "", apperr.Storage("failed to store file", io.ErrClosedPipe)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", apperr.Storage("failed to store file", err)
	}
	url := "/uploads/file-" + uuid.NewString()
	u.stored[url] = data
	return url, nil
}

func validInput(file io.Reader) CreateMemoryInput {
	return CreateMemoryInput{
		Name:      "Sunset",
		Date:      "2024-05-01",
		Place:     "Golden Gate Bridge",
		Latitude:  "37.8199",
		Longitude: "-122.4783",
		File:      file,
		FileName:  "sunset.jpg",
		FileSize:  4,
	}
}

func TestCreateMemoryReturnsJoinedRecord(t *testing.T) {
	repo := &fakeMemoryRepo{}
	uploader := newFakeUploader()
	svc := NewMemoryService(repo, uploader, events.NoopPublisher{})

	record, err := svc.Create(context.Background(), validInput(bytes.NewReader([]byte{0xFF, 0xD8, 0xFF, 0xE0})))
	require.NoError(t, err)

	assert.Equal(t, "Sunset", record.MemoryName)
	assert.Equal(t, "Golden Gate Bridge", record.Place)
	assert.Equal(t, models.AnonymousUserID, record.UserID)
	assert.Equal(t, models.VisibilityPrivate, record.Visibility)
	assert.Nil(t, record.PromptText)
	assert.Nil(t, record.CategoryColor)
	require.NotNil(t, record.Latitude)
	assert.InDelta(t, 37.8199, *record.Latitude, 1e-9)

	require.True(t, strings.HasPrefix(record.FileURL, "/uploads/"))
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF, 0xE0}, uploader.stored[record.FileURL])
}

func TestCreateMemoryMissingFile(t *testing.T) {
	repo := &fakeMemoryRepo{}
	uploader := newFakeUploader()
	svc := NewMemoryService(repo, uploader, events.NoopPublisher{})

	input := validInput(nil)
	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Equal(t, "Missing file", apperr.ClientMessage(err))

	// nothing reached storage or the database
	assert.Zero(t, uploader.calls)
	assert.Empty(t, repo.memories)
}

func TestCreateMemoryMissingRequiredFields(t *testing.T) {
	for _, field := range []string{"memory_name", "memory_date", "place"} {
		repo := &fakeMemoryRepo{}
		uploader := newFakeUploader()
		svc := NewMemoryService(repo, uploader, events.NoopPublisher{})

		input := validInput(bytes.NewReader([]byte("x")))
		switch field {
		case "memory_name":
			input.Name = ""
		case "memory_date":
			input.Date = ""
		case "place":
			input.Place = ""
		}

		_, err := svc.Create(context.Background(), input)
		require.Error(t, err, field)
		assert.True(t, apperr.IsKind(err, apperr.KindValidation), field)
		assert.Zero(t, uploader.calls, field)
		assert.Empty(t, repo.memories, field)
	}
}

func TestCreateMemoryCoordinatesOptional(t *testing.T) {
	repo := &fakeMemoryRepo{}
	svc := NewMemoryService(repo, newFakeUploader(), events.NoopPublisher{})

	input := validInput(bytes.NewReader([]byte("x")))
	input.Latitude = ""
	input.Longitude = ""

	record, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Nil(t, record.Latitude)
	assert.Nil(t, record.Longitude)
}

func TestCreateMemoryRejectsOutOfRangeCoordinates(t *testing.T) {
	svc := NewMemoryService(&fakeMemoryRepo{}, newFakeUploader(), events.NoopPublisher{})

	input := validInput(bytes.NewReader([]byte("x")))
	input.Latitude = "91"
	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	input = validInput(bytes.NewReader([]byte("x")))
	input.Longitude = "-181"
	_, err = svc.Create(context.Background(), input)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestCreateMemoryRejectsNonFiniteCoordinates(t *testing.T) {
	// ParseFloat accepts these spellings, and NaN in particular sails past
	// plain range comparisons; a stored NaN would break JSON encoding of
	// every later listing.
	for _, tc := range []struct{ lat, lng string }{
		{"NaN", "-122.4783"},
		{"37.8199", "nan"},
		{"+Inf", "-122.4783"},
		{"37.8199", "-Infinity"},
	} {
		repo := &fakeMemoryRepo{}
		svc := NewMemoryService(repo, newFakeUploader(), events.NoopPublisher{})

		input := validInput(bytes.NewReader([]byte("x")))
		input.Latitude = tc.lat
		input.Longitude = tc.lng

		_, err := svc.Create(context.Background(), input)
		require.Error(t, err, "lat=%s lng=%s", tc.lat, tc.lng)
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		assert.Empty(t, repo.memories)
	}
}

func TestCreateMemoryStorageFailureAbortsInsert(t *testing.T) {
	repo := &fakeMemoryRepo{}
	uploader := newFakeUploader()
	uploader.fail = true
	svc := NewMemoryService(repo, uploader, events.NoopPublisher{})

	_, err := svc.Create(context.Background(), validInput(bytes.NewReader([]byte("x"))))
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindStorage))
	assert.Empty(t, repo.memories)
}

func TestCreateMemoryWithPrompt(t *testing.T) {
	promptID := uuid.New()
	repo := &fakeMemoryRepo{
		prompts: map[uuid.UUID]fakePrompt{
			promptID: {text: "Where did you feel most at home?", color: "#FF5733"},
		},
	}
	svc := NewMemoryService(repo, newFakeUploader(), events.NoopPublisher{})

	input := validInput(bytes.NewReader([]byte("x")))
	input.PromptID = promptID.String()

	record, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	require.NotNil(t, record.PromptText)
	assert.Equal(t, "Where did you feel most at home?", *record.PromptText)
	require.NotNil(t, record.CategoryColor)
	assert.Equal(t, "#FF5733", *record.CategoryColor)
}

func TestCreateMemoryAppearsInListing(t *testing.T) {
	repo := &fakeMemoryRepo{}
	svc := NewMemoryService(repo, newFakeUploader(), events.NoopPublisher{})

	created, err := svc.Create(context.Background(), validInput(bytes.NewReader([]byte("x"))))
	require.NoError(t, err)

	listed, err := svc.List()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, *created, listed[0])
}

func TestCreateMemoryDataStoreFailure(t *testing.T) {
	repo := &fakeMemoryRepo{failOn: "create"}
	svc := NewMemoryService(repo, newFakeUploader(), events.NoopPublisher{})

	_, err := svc.Create(context.Background(), validInput(bytes.NewReader([]byte("x"))))
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindDataStore))
	assert.Equal(t, "DB error inserting memory", apperr.ClientMessage(err))
}

func TestListMemoriesEmptyIsNotNil(t *testing.T) {
	svc := NewMemoryService(&fakeMemoryRepo{}, newFakeUploader(), events.NoopPublisher{})
	records, err := svc.List()
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}
