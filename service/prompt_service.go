package service

import (
	"errors"

	"github.com/mapyourmemory/memorymap/models"
	"github.com/mapyourmemory/memorymap/pkg/apperr"
	"github.com/mapyourmemory/memorymap/repository"

	"gorm.io/gorm"
)

type PromptService interface {
	Random() (*models.RandomPromptRecord, error)
	List() ([]models.PromptRecord, error)
	ListCategories() ([]models.CategoryRecord, error)
}

type PromptServiceImpl struct {
	prompts    repository.PromptRepository
	categories repository.CategoryRepository
}

func NewPromptService(prompts repository.PromptRepository, categories repository.CategoryRepository) PromptService {
	return &PromptServiceImpl{prompts: prompts, categories: categories}
}

// Random returns one uniformly chosen prompt with its category color, or
// NotFound when no prompts exist. The client hides the prompt bar on 404.
func (s *PromptServiceImpl) Random() (*models.RandomPromptRecord, error) {
	record, err := s.prompts.Random()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("No prompts found")
		}
		return nil, apperr.DataStore("DB error fetching random prompt", err)
	}
	return record, nil
}

func (s *PromptServiceImpl) List() ([]models.PromptRecord, error) {
	records, err := s.prompts.ListAll()
	if err != nil {
		return nil, apperr.DataStore("DB error fetching prompts", err)
	}
	return records, nil
}

func (s *PromptServiceImpl) ListCategories() ([]models.CategoryRecord, error) {
	records, err := s.categories.ListByName()
	if err != nil {
		return nil, apperr.DataStore("DB error fetching categories", err)
	}
	return records, nil
}
