package models

import (
	"time"

	"github.com/google/uuid"
)

// MemoryRecord is the joined projection served to clients. The single-create
// and list paths both use this shape so an optimistically appended pin renders
// exactly like a listed one.
type MemoryRecord struct {
	MemoryID      uuid.UUID  `json:"memory_id"`
	MemoryName    string     `json:"memory_name"`
	FileURL       string     `json:"file_url"`
	Description   *string    `json:"description"`
	MemoryDate    time.Time  `json:"memory_date"`
	Latitude      *float64   `json:"latitude"`
	Longitude     *float64   `json:"longitude"`
	UserID        string     `json:"user_id"`
	Place         string     `json:"place"`
	Visibility    string     `json:"visibility"`
	PromptID      *uuid.UUID `json:"prompt_id"`
	PromptText    *string    `json:"prompt_text"`
	CategoryColor *string    `json:"category_color"`
	CreatedAt     time.Time  `json:"created_at"`
}

// RandomPromptRecord is the prompt bar payload: the prompt text plus the
// owning category's pin color, denormalized.
type RandomPromptRecord struct {
	PromptID      uuid.UUID `json:"prompt_id"`
	PromptText    string    `json:"prompt_text"`
	CategoryColor string    `json:"category_color"`
}

type PromptRecord struct {
	PromptID   uuid.UUID `json:"prompt_id"`
	PromptText string    `json:"prompt_text"`
	CategoryID uuid.UUID `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type CategoryRecord struct {
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	MarkerColor  string    `json:"marker_color"`
}
