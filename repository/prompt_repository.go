package repository

import (
	"github.com/mapyourmemory/memorymap/models"

	"gorm.io/gorm"
)

type PromptRepository interface {
	BaseRepository[models.Prompt]
	Random() (*models.RandomPromptRecord, error)
	ListAll() ([]models.PromptRecord, error)
}

type PromptRepositoryImpl struct {
	*BaseRepositoryImpl[models.Prompt]
}

func NewPromptRepository(db *gorm.DB) PromptRepository {
	return &PromptRepositoryImpl{
		BaseRepositoryImpl: NewBaseRepository[models.Prompt](db),
	}
}

// Random picks uniformly among all prompts. ORDER BY random() is fine at
// reference-data scale; every prompt has equal probability.
func (r *PromptRepositoryImpl) Random() (*models.RandomPromptRecord, error) {
	var record models.RandomPromptRecord
	tx := r.db.Raw(`
SELECT p.id AS prompt_id,
       p.prompt_text,
       c.marker_color AS category_color
  FROM prompts_for_map p
  JOIN categories_prompt c ON p.category_id = c.id
 ORDER BY random()
 LIMIT 1`).Scan(&record)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &record, nil
}

func (r *PromptRepositoryImpl) ListAll() ([]models.PromptRecord, error) {
	records := []models.PromptRecord{}
	err := r.db.Raw(`
SELECT p.id AS prompt_id,
       p.prompt_text,
       p.category_id,
       p.created_at
  FROM prompts_for_map p
 ORDER BY p.created_at DESC`).Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
