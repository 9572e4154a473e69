package services

import (
	"Shelf/internal/models"
	"Shelf/internal/repository"
	"Shelf/internal/validation"
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ItemService interface {
	CreateItem(ctx context.Context, boxID uint, input validation.Input, photo *multipart.FileHeader) (*models.Item, error)
	GetItems(boxID uint) ([]models.Item, error)
	GetItem(boxID, id uint) (*models.Item, error)
	UpdateItem(ctx context.Context, boxID, id uint, input validation.Input, photo *multipart.FileHeader) (*models.Item, error)
	DeleteItem(ctx context.Context, boxID, id uint) error
}

type itemServiceImpl struct {
	itemRepo     repository.ItemRepository
	boxRepo      repository.BoxRepository
	photoService PhotoService
	logService   LogService
}

func NewItemService(
	itemRepository repository.ItemRepository,
	boxRepository repository.BoxRepository,
	photoService PhotoService,
	logService LogService,
) ItemService {
	return &itemServiceImpl{
		itemRepo:     itemRepository,
		boxRepo:      boxRepository,
		photoService: photoService,
		logService:   logService,
	}
}

// CreateItem reports a missing box before looking at the payload.
func (s *itemServiceImpl) CreateItem(ctx context.Context, boxID uint, input validation.Input, photo *multipart.FileHeader) (*models.Item, error) {
	exists, err := s.boxRepo.Exists(boxID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	errs := &validation.Error{}
	values := itemSchema.Collect(input, errs)
	s.photoService.Validate(photo, errs)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	item := &models.Item{
		BoxID:       boxID,
		Name:        values.String("name"),
		Description: values["description"],
		PhotoPath:   values["photo_path"],
	}
	uploaded := false
	if photo != nil {
		path, err := s.photoService.Store(ctx, photo)
		if err != nil {
			return nil, err
		}
		item.PhotoPath = &path
		uploaded = true
	}
	if err := s.itemRepo.CreateInBox(item); err != nil {
		if uploaded {
			s.photoService.Remove(ctx, item.PhotoPath)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	s.logService.Log.WithFields(logrus.Fields{
		"box":  boxID,
		"item": item.ID,
	}).Info("item created")
	return item, nil
}

func (s *itemServiceImpl) GetItems(boxID uint) ([]models.Item, error) {
	exists, err := s.boxRepo.Exists(boxID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}
	return s.itemRepo.FindByBoxID(boxID)
}

// GetItem returns ErrNotFound when the item exists but belongs to another box.
func (s *itemServiceImpl) GetItem(boxID, id uint) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	if item.BoxID != boxID {
		return nil, ErrNotFound
	}
	return item, nil
}

// UpdateItem never writes box_id. Omitted optional fields keep their value,
// explicit nulls clear them, and an uploaded photo replaces photo_path.
func (s *itemServiceImpl) UpdateItem(ctx context.Context, boxID, id uint, input validation.Input, photo *multipart.FileHeader) (*models.Item, error) {
	item, err := s.GetItem(boxID, id)
	if err != nil {
		return nil, err
	}

	errs := &validation.Error{}
	values := itemSchema.Collect(input, errs)
	s.photoService.Validate(photo, errs)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	previousPhoto := item.PhotoPath
	item.Name = values.String("name")
	if description, ok := values.Lookup("description"); ok {
		item.Description = description
	}
	if photoPath, ok := values.Lookup("photo_path"); ok {
		item.PhotoPath = photoPath
	}
	uploaded := false
	if photo != nil {
		path, err := s.photoService.Store(ctx, photo)
		if err != nil {
			return nil, err
		}
		item.PhotoPath = &path
		uploaded = true
	}
	if err := s.itemRepo.Update(item, itemColumns...); err != nil {
		if uploaded {
			s.photoService.Remove(ctx, item.PhotoPath)
		}
		return nil, notFound(err)
	}
	if uploaded {
		s.photoService.Remove(ctx, previousPhoto)
	}

	item, err = s.itemRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	s.logService.Log.WithFields(logrus.Fields{
		"box":  boxID,
		"item": id,
	}).Info("item updated")
	return item, nil
}

func (s *itemServiceImpl) DeleteItem(ctx context.Context, boxID, id uint) error {
	item, err := s.GetItem(boxID, id)
	if err != nil {
		return err
	}
	if err := s.itemRepo.Delete(id); err != nil {
		return notFound(err)
	}
	s.photoService.Remove(ctx, item.PhotoPath)

	s.logService.Log.WithFields(logrus.Fields{
		"box":  boxID,
		"item": id,
	}).Info("item deleted")
	return nil
}
