package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AnonymousUserID is the sentinel stored when no identity is established.
// Unauthenticated submission is allowed on purpose.
const AnonymousUserID = "anonymous"

// Visibility values for a memory.
const (
	VisibilityPrivate = "private"
	VisibilityPublic  = "public"
)

// Memory is a user-submitted geotagged record. FileURL is always resolved
// before the row is inserted: a memory never exists without its media.
type Memory struct {
	Base
	Name        string         `gorm:"column:memory_name;not null"`
	FileURL     string         `gorm:"column:file_url;not null"`
	Description *string        `gorm:"type:text"`
	MemoryDate  time.Time      `gorm:"column:memory_date;type:date;not null;index"`
	Latitude    *float64
	Longitude   *float64
	UserID      string         `gorm:"not null;default:'anonymous';index"`
	Place       string         `gorm:"not null"`
	Visibility  string         `gorm:"not null;default:'private'"`
	PromptID    *uuid.UUID     `gorm:"type:uuid;index"`
	Metadata    datatypes.JSON `gorm:"type:jsonb"`

	Prompt *Prompt `gorm:"foreignKey:PromptID"`
}

func (Memory) TableName() string {
	return "map_your_memory"
}

type Prompt struct {
	Base
	Text       string    `gorm:"column:prompt_text;type:text;not null"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`

	Category Category `gorm:"foreignKey:CategoryID"`
}

func (Prompt) TableName() string {
	return "prompts_for_map"
}

// Category groups prompts and controls the map pin color.
type Category struct {
	Base
	Name        string `gorm:"column:category_name;not null"`
	MarkerColor string `gorm:"not null"`
}

func (Category) TableName() string {
	return "categories_prompt"
}
