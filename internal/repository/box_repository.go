package repository

import (
	"Shelf/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BoxRepository interface {
	GenericRepository[models.Box]
	Exists(id uint) (bool, error)
	DeleteWithItems(id uint) (*models.Box, []models.Item, error)
	Search(term string) ([]models.Box, error)
}

type BoxRepositoryImpl[T models.Box] struct {
	GenericRepository[models.Box]
	db *gorm.DB
}

func NewBoxRepository(db *gorm.DB) BoxRepository {
	return &BoxRepositoryImpl[models.Box]{
		GenericRepository: NewGenericRepository[models.Box](db),
		db:                db,
	}
}

func (r *BoxRepositoryImpl[T]) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Box{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteWithItems removes the box and every item it owns in one transaction
// and returns what was deleted. The box row is locked first, so items
// inserted concurrently either wait and fail or are part of the result.
// Nothing is deleted when the box does not exist.
func (r *BoxRepositoryImpl[T]) DeleteWithItems(id uint) (*models.Box, []models.Item, error) {
	var box models.Box
	items := make([]models.Item, 0)
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&box, id).Error; err != nil {
			return err
		}
		if err := tx.Where("box_id = ?", id).Order("id").Find(&items).Error; err != nil {
			return err
		}
		if err := tx.Where("box_id = ?", id).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Box{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &box, items, nil
}

// Search returns, in creation order, boxes whose name, description or
// location contains term, together with boxes owning an item that matches.
func (r *BoxRepositoryImpl[T]) Search(term string) ([]models.Box, error) {
	boxClause, boxArgs := ContainsFilter(term, "name", "description", "location")
	itemClause, itemArgs := ContainsFilter(term, "name", "description")

	owners := r.db.Model(&models.Item{}).Select("box_id").Where(itemClause, itemArgs...)
	boxes := make([]models.Box, 0)
	err := r.db.Where(boxClause, boxArgs...).
		Or("id IN (?)", owners).
		Order("id").
		Find(&boxes).Error
	if err != nil {
		return nil, err
	}
	return boxes, nil
}
