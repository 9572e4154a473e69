package repository

import (
	"gorm.io/gorm"
)

type GenericRepositoryImpl[T any] struct {
	db *gorm.DB
}

func NewGenericRepository[T any](db *gorm.DB) GenericRepository[T] {
	return &GenericRepositoryImpl[T]{db: db}
}

func (r *GenericRepositoryImpl[T]) Create(entity *T) error {
	return r.db.Create(entity).Error
}

func (r *GenericRepositoryImpl[T]) FindByID(id uint) (*T, error) {
	var entity T
	if err := r.db.First(&entity, id).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// FindAll returns every row in creation order.
func (r *GenericRepositoryImpl[T]) FindAll() ([]T, error) {
	entities := make([]T, 0)
	err := r.db.Order("id").Find(&entities).Error
	return entities, err
}

// Update writes only the given columns (all columns when none are given)
// and bumps updated_at. It returns gorm.ErrRecordNotFound when the row is gone.
func (r *GenericRepositoryImpl[T]) Update(entity *T, columns ...string) error {
	query := r.db.Model(entity)
	if len(columns) > 0 {
		query = query.Select(columns)
	} else {
		query = query.Select("*")
	}
	result := query.Updates(entity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GenericRepositoryImpl[T]) Delete(id uint) error {
	var entity T
	result := r.db.Delete(&entity, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
