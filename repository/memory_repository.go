package repository

import (
	"github.com/mapyourmemory/memorymap/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memoryJoinSelect is shared by the list and single-fetch paths so both
// return the same projection.
const memoryJoinSelect = `
SELECT m.id AS memory_id,
       m.memory_name,
       m.file_url,
       m.description,
       m.memory_date,
       m.latitude,
       m.longitude,
       m.user_id,
       m.place,
       m.visibility,
       m.prompt_id,
       p.prompt_text,
       c.marker_color AS category_color,
       m.created_at
  FROM map_your_memory m
  LEFT JOIN prompts_for_map p ON m.prompt_id = p.id
  LEFT JOIN categories_prompt c ON p.category_id = c.id`

type MemoryRepository interface {
	BaseRepository[models.Memory]
	ListJoined() ([]models.MemoryRecord, error)
	GetJoinedByID(id uuid.UUID) (*models.MemoryRecord, error)
}

type MemoryRepositoryImpl struct {
	*BaseRepositoryImpl[models.Memory]
}

func NewMemoryRepository(db *gorm.DB) MemoryRepository {
	return &MemoryRepositoryImpl{
		BaseRepositoryImpl: NewBaseRepository[models.Memory](db),
	}
}

func (r *MemoryRepositoryImpl) ListJoined() ([]models.MemoryRecord, error) {
	records := []models.MemoryRecord{}
	err := r.db.Raw(memoryJoinSelect + " ORDER BY m.memory_date DESC").Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *MemoryRepositoryImpl) GetJoinedByID(id uuid.UUID) (*models.MemoryRecord, error) {
	var record models.MemoryRecord
	tx := r.db.Raw(memoryJoinSelect+" WHERE m.id = ?", id).Scan(&record)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &record, nil
}
