package services

import (
	"Shelf/internal/models"
	"Shelf/internal/repository"
	"Shelf/internal/validation"
	"context"
	"fmt"
	"mime/multipart"

	"github.com/sirupsen/logrus"
)

type BoxService interface {
	CreateBox(ctx context.Context, input validation.Input, photo *multipart.FileHeader) (*models.Box, error)
	GetBoxByID(id uint) (*models.Box, []models.Item, error)
	UpdateBox(id uint, input validation.Input) (*models.Box, error)
	DeleteBox(ctx context.Context, id uint) error
	GetBoxes() ([]models.Box, error)
}

func NewBoxService(
	boxRepo repository.BoxRepository,
	itemRepo repository.ItemRepository,
	photoService PhotoService,
	logService LogService,
) BoxService {
	return &boxServiceImpl{
		boxRepo:      boxRepo,
		itemRepo:     itemRepo,
		photoService: photoService,
		logService:   logService,
	}
}

type boxServiceImpl struct {
	boxRepo      repository.BoxRepository
	itemRepo     repository.ItemRepository
	photoService PhotoService
	logService   LogService
}

func (s *boxServiceImpl) CreateBox(ctx context.Context, input validation.Input, photo *multipart.FileHeader) (*models.Box, error) {
	errs := &validation.Error{}
	values := boxSchema.Collect(input, errs)
	s.photoService.Validate(photo, errs)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	box := &models.Box{
		Name:        values.String("name"),
		Description: values["description"],
		Location:    values.String("location"),
	}
	if photo != nil {
		path, err := s.photoService.Store(ctx, photo)
		if err != nil {
			return nil, err
		}
		box.PhotoPath = &path
	}
	if err := s.boxRepo.Create(box); err != nil {
		s.photoService.Remove(ctx, box.PhotoPath)
		return nil, fmt.Errorf("failed to create box: %w", err)
	}

	s.logService.Log.WithFields(logrus.Fields{
		"box": box.ID,
	}).Info("box created")
	return box, nil
}

func (s *boxServiceImpl) GetBoxByID(id uint) (*models.Box, []models.Item, error) {
	box, err := s.boxRepo.FindByID(id)
	if err != nil {
		return nil, nil, notFound(err)
	}
	items, err := s.itemRepo.FindByBoxID(id)
	if err != nil {
		return nil, nil, err
	}
	return box, items, nil
}

func (s *boxServiceImpl) UpdateBox(id uint, input validation.Input) (*models.Box, error) {
	box, err := s.boxRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	values, err := boxSchema.Validate(input)
	if err != nil {
		return nil, err
	}

	box.Name = values.String("name")
	box.Location = values.String("location")
	if description, ok := values.Lookup("description"); ok {
		box.Description = description
	}
	if err := s.boxRepo.Update(box, boxColumns...); err != nil {
		return nil, notFound(err)
	}

	box, err = s.boxRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	s.logService.Log.WithFields(logrus.Fields{
		"box": box.ID,
	}).Info("box updated")
	return box, nil
}

// DeleteBox removes the box and its items, then their stored photos. The
// photo list comes from the deleting transaction.
func (s *boxServiceImpl) DeleteBox(ctx context.Context, id uint) error {
	box, items, err := s.boxRepo.DeleteWithItems(id)
	if err != nil {
		return notFound(err)
	}

	s.photoService.Remove(ctx, box.PhotoPath)
	for i := range items {
		s.photoService.Remove(ctx, items[i].PhotoPath)
	}
	s.logService.Log.WithFields(logrus.Fields{
		"box":   id,
		"items": len(items),
	}).Info("box deleted")
	return nil
}

func (s *boxServiceImpl) GetBoxes() ([]models.Box, error) {
	boxes, err := s.boxRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return boxes, nil
}
