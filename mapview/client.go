package mapview

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/mapyourmemory/memorymap/models"
	"github.com/mapyourmemory/memorymap/pkg/apperr"
)

// Client talks to the memory API. BaseURL also prefixes media URLs in
// popups.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: http.DefaultClient,
	}
}

// Submission is one new memory from the add-memory form.
type Submission struct {
	Name        string
	Date        string
	Place       string
	Latitude    *float64
	Longitude   *float64
	Description string
	Visibility  string
	PromptID    string
	File        io.Reader
	FileName    string
}

// LoadPins fetches the full memory list for the initial render.
func (c *Client) LoadPins(ctx context.Context) ([]models.MemoryRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/memories", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("load memories: %s", readError(resp))
	}
	var pins []models.MemoryRecord
	if err := json.NewDecoder(resp.Body).Decode(&pins); err != nil {
		return nil, err
	}
	return pins, nil
}

// RandomPrompt fetches the prompt bar content. A NotFound error means no
// prompts exist and the bar should simply not be shown.
func (c *Client) RandomPrompt(ctx context.Context) (*models.RandomPromptRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/prompts/random", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, apperr.NotFound("No prompts found")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("random prompt: %s", readError(resp))
	}
	var prompt models.RandomPromptRecord
	if err := json.NewDecoder(resp.Body).Decode(&prompt); err != nil {
		return nil, err
	}
	return &prompt, nil
}

// CreateMemory posts the multipart form and returns the server's joined
// record, which callers dispatch as PinAdded so the new pin renders exactly
// like a listed one.
func (c *Client) CreateMemory(ctx context.Context, sub Submission) (*models.MemoryRecord, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"memory_name": sub.Name,
		"memory_date": sub.Date,
		"place":       sub.Place,
		"description": sub.Description,
		"visibility":  sub.Visibility,
	}
	if sub.Latitude != nil {
		fields["latitude"] = strconv.FormatFloat(*sub.Latitude, 'f', -1, 64)
	}
	if sub.Longitude != nil {
		fields["longitude"] = strconv.FormatFloat(*sub.Longitude, 'f', -1, 64)
	}
	if sub.PromptID != "" {
		fields["prompt_id"] = sub.PromptID
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, err
		}
	}
	if sub.File != nil {
		part, err := w.CreateFormFile("file", sub.FileName)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, sub.File); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/memories", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create memory: %s", readError(resp))
	}
	var record models.MemoryRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

func readError(resp *http.Response) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return body.Error
	}
	return resp.Status
}
