package services

import (
	"Shelf/internal/models"
	"Shelf/internal/storage"
	"bytes"
	"io"
	"mime/multipart"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBoxRepository struct {
	mock.Mock
}

func (m *MockBoxRepository) Create(box *models.Box) error {
	args := m.Called(box)
	return args.Error(0)
}

func (m *MockBoxRepository) FindByID(id uint) (*models.Box, error) {
	args := m.Called(id)
	box, ok := args.Get(0).(*models.Box)
	if !ok {
		return nil, args.Error(1)
	}
	return box, args.Error(1)
}

func (m *MockBoxRepository) FindAll() ([]models.Box, error) {
	args := m.Called()
	return args.Get(0).([]models.Box), args.Error(1)
}

func (m *MockBoxRepository) Update(box *models.Box, columns ...string) error {
	args := m.Called(box, columns)
	return args.Error(0)
}

func (m *MockBoxRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockBoxRepository) Exists(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockBoxRepository) DeleteWithItems(id uint) (*models.Box, []models.Item, error) {
	args := m.Called(id)
	box, _ := args.Get(0).(*models.Box)
	items, _ := args.Get(1).([]models.Item)
	return box, items, args.Error(2)
}

func (m *MockBoxRepository) Search(term string) ([]models.Box, error) {
	args := m.Called(term)
	return args.Get(0).([]models.Box), args.Error(1)
}

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(item *models.Item) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockItemRepository) FindByID(id uint) (*models.Item, error) {
	args := m.Called(id)
	item, ok := args.Get(0).(*models.Item)
	if !ok {
		return nil, args.Error(1)
	}
	return item, args.Error(1)
}

func (m *MockItemRepository) FindAll() ([]models.Item, error) {
	args := m.Called()
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockItemRepository) Update(item *models.Item, columns ...string) error {
	args := m.Called(item, columns)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockItemRepository) CreateInBox(item *models.Item) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockItemRepository) FindByBoxID(boxID uint) ([]models.Item, error) {
	args := m.Called(boxID)
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockItemRepository) Search(term string) ([]models.Item, error) {
	args := m.Called(term)
	return args.Get(0).([]models.Item), args.Error(1)
}

var (
	pngBytes  = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)
	jpegBytes = append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, bytes.Repeat([]byte{0}, 64)...)
)

func testLogService() LogService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return LogService{Log: log}
}

func testPhotoService(t *testing.T) (PhotoService, string) {
	t.Helper()
	root := t.TempDir()
	return NewPhotoService(storage.NewLocalStorage(root), testLogService()), root
}

func newFileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("photo", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(10 << 20)
	require.NoError(t, err)
	return form.File["photo"][0]
}

func strPtr(s string) *string {
	return &s
}
