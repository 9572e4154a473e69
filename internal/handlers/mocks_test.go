package handlers

import (
	"Shelf/internal/models"
	"Shelf/internal/services"
	"Shelf/internal/validation"
	"context"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

type MockBoxService struct {
	mock.Mock
}

func (m *MockBoxService) CreateBox(ctx context.Context, input validation.Input, photo *multipart.FileHeader) (*models.Box, error) {
	args := m.Called(input, photo)
	box, _ := args.Get(0).(*models.Box)
	return box, args.Error(1)
}

func (m *MockBoxService) GetBoxByID(id uint) (*models.Box, []models.Item, error) {
	args := m.Called(id)
	box, _ := args.Get(0).(*models.Box)
	items, _ := args.Get(1).([]models.Item)
	return box, items, args.Error(2)
}

func (m *MockBoxService) UpdateBox(id uint, input validation.Input) (*models.Box, error) {
	args := m.Called(id, input)
	box, _ := args.Get(0).(*models.Box)
	return box, args.Error(1)
}

func (m *MockBoxService) DeleteBox(ctx context.Context, id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockBoxService) GetBoxes() ([]models.Box, error) {
	args := m.Called()
	boxes, _ := args.Get(0).([]models.Box)
	return boxes, args.Error(1)
}

type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) CreateItem(ctx context.Context, boxID uint, input validation.Input, photo *multipart.FileHeader) (*models.Item, error) {
	args := m.Called(boxID, input, photo)
	item, _ := args.Get(0).(*models.Item)
	return item, args.Error(1)
}

func (m *MockItemService) GetItems(boxID uint) ([]models.Item, error) {
	args := m.Called(boxID)
	items, _ := args.Get(0).([]models.Item)
	return items, args.Error(1)
}

func (m *MockItemService) GetItem(boxID, id uint) (*models.Item, error) {
	args := m.Called(boxID, id)
	item, _ := args.Get(0).(*models.Item)
	return item, args.Error(1)
}

func (m *MockItemService) UpdateItem(ctx context.Context, boxID, id uint, input validation.Input, photo *multipart.FileHeader) (*models.Item, error) {
	args := m.Called(boxID, id, input, photo)
	item, _ := args.Get(0).(*models.Item)
	return item, args.Error(1)
}

func (m *MockItemService) DeleteItem(ctx context.Context, boxID, id uint) error {
	args := m.Called(boxID, id)
	return args.Error(0)
}

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(query string) ([]services.SearchResult, error) {
	args := m.Called(query)
	results, _ := args.Get(0).([]services.SearchResult)
	return results, args.Error(1)
}

func testLogService() services.LogService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return services.LogService{Log: log}
}

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: ErrorHandler(testLogService())})
}
