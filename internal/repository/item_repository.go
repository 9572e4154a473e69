package repository

import (
	"Shelf/internal/models"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemRepository interface {
	GenericRepository[models.Item]
	CreateInBox(item *models.Item) error
	FindByBoxID(boxID uint) ([]models.Item, error)
	Search(term string) ([]models.Item, error)
}

type ItemRepositoryImpl[T models.Item] struct {
	GenericRepository[models.Item]
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &ItemRepositoryImpl[models.Item]{
		GenericRepository: NewGenericRepository[models.Item](db),
		db:                db,
	}
}

// CreateInBox inserts item after checking, in the same transaction, that
// its box exists. The box row is share-locked until commit so a concurrent
// DeleteWithItems cannot remove it in between. It returns
// gorm.ErrRecordNotFound for a missing box, including a foreign key
// violation reported by the database.
func (r *ItemRepositoryImpl[T]) CreateInBox(item *models.Item) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var box models.Box
		err := tx.Clauses(clause.Locking{Strength: "SHARE"}).Select("id").First(&box, item.BoxID).Error
		if err != nil {
			return err
		}
		return tx.Create(item).Error
	})
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return gorm.ErrRecordNotFound
	}
	return err
}

func (r *ItemRepositoryImpl[T]) FindByBoxID(boxID uint) ([]models.Item, error) {
	items := make([]models.Item, 0)
	err := r.db.Where("box_id = ?", boxID).Order("id").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Search returns, in creation order, items whose name or description
// contains term.
func (r *ItemRepositoryImpl[T]) Search(term string) ([]models.Item, error) {
	clause, args := ContainsFilter(term, "name", "description")
	items := make([]models.Item, 0)
	if err := r.db.Where(clause, args...).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
