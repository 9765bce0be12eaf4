package repository

import (
	"github.com/mapyourmemory/memorymap/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	BaseRepository[models.Category]
	ListByName() ([]models.CategoryRecord, error)
}

type CategoryRepositoryImpl struct {
	*BaseRepositoryImpl[models.Category]
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &CategoryRepositoryImpl{
		BaseRepositoryImpl: NewBaseRepository[models.Category](db),
	}
}

func (r *CategoryRepositoryImpl) ListByName() ([]models.CategoryRecord, error) {
	records := []models.CategoryRecord{}
	err := r.db.Raw(`
SELECT c.id AS category_id,
       c.category_name,
       c.marker_color
  FROM categories_prompt c
 ORDER BY c.category_name`).Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
