package server

import (
	"Shelf/cmd"
	"Shelf/database"
	"Shelf/internal/config"
	"Shelf/internal/handlers"
	"Shelf/internal/repository"
	"Shelf/internal/services"
	"Shelf/internal/storage"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var timestampPattern = `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{6}Z$`

type testServer struct {
	app         *fiber.App
	storageRoot string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	dir := t.TempDir()
	storageRoot := filepath.Join(dir, "storage")
	cfg, err := config.ParseConfiguration([]byte(fmt.Sprintf(`
database:
  driver: sqlite
  path: %s
storage:
  driver: local
  path: %s
`, filepath.Join(dir, "shelf.db"), storageRoot)))
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)
	logService := services.LogService{Log: log}

	db, err := database.SetupDatabase(cfg, logService)
	require.NoError(t, err)
	t.Cleanup(func() { database.CloseDatabase(db, logService) })

	store, err := storage.NewStorage(cfg)
	require.NoError(t, err)

	boxRepo := repository.NewBoxRepository(db)
	itemRepo := repository.NewItemRepository(db)
	photoService := services.NewPhotoService(store, logService)
	boxService := services.NewBoxService(boxRepo, itemRepo, photoService, logService)
	itemService := services.NewItemService(itemRepo, boxRepo, photoService, logService)
	searchService := services.NewSearchService(boxRepo, itemRepo)

	srv := cmd.NewServer(cfg, db, logService,
		boxService, handlers.NewBoxHandler(boxService, logService),
		itemService, handlers.NewItemHandler(itemService, logService),
		searchService, handlers.NewSearchHandler(searchService, logService),
	)
	app, err := NewApp(srv)
	require.NoError(t, err)
	return &testServer{app: app, storageRoot: storageRoot}
}

type response struct {
	status int
	raw    []byte
	body   map[string]interface{}
}

func (s *testServer) do(t *testing.T, method, target, body string) response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return s.send(t, req)
}

func (s *testServer) send(t *testing.T, req *http.Request) response {
	t.Helper()
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	result := response{status: resp.StatusCode, raw: raw}
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &result.body))
	}
	return result
}

func assertNotFound(t *testing.T, r response) {
	t.Helper()
	assert.Equal(t, http.StatusNotFound, r.status)
	assert.Empty(t, r.raw)
}

func (r response) data(t *testing.T) map[string]interface{} {
	t.Helper()
	data, ok := r.body["data"].(map[string]interface{})
	require.True(t, ok, "expected object data, got %s", r.raw)
	return data
}

func (r response) list(t *testing.T) []interface{} {
	t.Helper()
	data, ok := r.body["data"].([]interface{})
	require.True(t, ok, "expected list data, got %s", r.raw)
	return data
}

func photoRequest(t *testing.T, target string, fields map[string]string, content []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	part, err := writer.CreateFormFile("photo", "photo.png")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 32)...)

func TestCreateBox(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPost, "/boxes", `{"name":"Kitchen Supplies","location":"Kitchen Cabinet","description":"Pots and pans"}`)
	require.Equal(t, http.StatusCreated, resp.status)

	data := resp.data(t)
	assert.Equal(t, 1.0, data["id"])
	assert.Equal(t, "Kitchen Supplies", data["name"])
	assert.Equal(t, "Pots and pans", data["description"])
	assert.Equal(t, "Kitchen Cabinet", data["location"])
	assert.Nil(t, data["photo_path"])
	assert.Regexp(t, timestampPattern, data["created_at"])
	assert.Regexp(t, timestampPattern, data["updated_at"])
	assert.NotContains(t, data, "items")
}

func TestCreateBoxValidation(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPost, "/boxes", `{"description":"no name"}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.status)

	errs := resp.body["errors"].(map[string]interface{})
	assert.Equal(t, []interface{}{"The name field is required."}, errs["name"])
	assert.Equal(t, []interface{}{"The location field is required."}, errs["location"])
	assert.Equal(t, "The name field is required. (and 1 more error)", resp.body["message"])

	resp = s.do(t, http.MethodPost, "/boxes", `{"name":"`+strings.Repeat("a", 256)+`","location":"Attic"}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.status)

	resp = s.do(t, http.MethodPost, "/boxes", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, resp.status)

	assert.Empty(t, s.do(t, http.MethodGet, "/boxes", "").list(t))
}

func TestUpdateBoxIgnoresImmutableFields(t *testing.T) {
	s := newTestServer(t)
	created := s.do(t, http.MethodPost, "/boxes", `{"name":"Kitchen Supplies","location":"Kitchen Cabinet","description":"Pots"}`).data(t)

	resp := s.do(t, http.MethodPut, "/boxes/1", `{"id":99,"name":"Pantry","location":"Kitchen Shelf","created_at":"2000-01-01T00:00:00.000000Z"}`)
	require.Equal(t, http.StatusOK, resp.status)

	data := resp.data(t)
	assert.Equal(t, 1.0, data["id"])
	assert.Equal(t, "Pantry", data["name"])
	assert.Equal(t, "Kitchen Shelf", data["location"])
	assert.Equal(t, "Pots", data["description"])
	assert.Equal(t, created["created_at"], data["created_at"])

	resp = s.do(t, http.MethodPut, "/boxes/1", `{"name":"Pantry","location":"Kitchen Shelf","description":null}`)
	require.Equal(t, http.StatusOK, resp.status)
	assert.Nil(t, resp.data(t)["description"])

	assertNotFound(t, s.do(t, http.MethodGet, "/boxes/99", ""))
	assertNotFound(t, s.do(t, http.MethodPut, "/boxes/99", `{}`))
	assert.Equal(t, http.StatusUnprocessableEntity, s.do(t, http.MethodPut, "/boxes/1", `{"name":"Pantry"}`).status)
}

func TestItemLifecycle(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodPost, "/boxes", `{"name":"Kitchen Supplies","location":"Kitchen Cabinet"}`)
	s.do(t, http.MethodPost, "/boxes", `{"name":"Office Items","location":"Office Desk"}`)

	assertNotFound(t, s.do(t, http.MethodPost, "/boxes/999/items", `{"name":"Coffee Mug"}`))
	assertNotFound(t, s.do(t, http.MethodPost, "/boxes/999/items", `{}`))
	assert.Equal(t, http.StatusUnprocessableEntity, s.do(t, http.MethodPost, "/boxes/1/items", `{}`).status)

	resp := s.do(t, http.MethodPost, "/boxes/1/items", `{"name":"Coffee Mug","description":"Blue","box_id":2}`)
	require.Equal(t, http.StatusCreated, resp.status)
	item := resp.data(t)
	assert.Equal(t, 1.0, item["box_id"])
	assert.Equal(t, "Blue", item["description"])

	resp = s.do(t, http.MethodPut, "/boxes/1/items/1", `{"name":"Coffee Mug","box_id":2,"description":null,"photo_path":null}`)
	require.Equal(t, http.StatusOK, resp.status)
	updated := resp.data(t)
	assert.Equal(t, 1.0, updated["box_id"])
	assert.Nil(t, updated["description"])
	assert.Nil(t, updated["photo_path"])

	assertNotFound(t, s.do(t, http.MethodGet, "/boxes/2/items/1", ""))
	assertNotFound(t, s.do(t, http.MethodPut, "/boxes/2/items/1", `{"name":"x"}`))
	assertNotFound(t, s.do(t, http.MethodDelete, "/boxes/2/items/1", ""))

	assert.Len(t, s.do(t, http.MethodGet, "/boxes/1/items", "").list(t), 1)
	assert.Empty(t, s.do(t, http.MethodGet, "/boxes/2/items", "").list(t))

	box := s.do(t, http.MethodGet, "/boxes/1", "").data(t)
	assert.Len(t, box["items"], 1)

	resp = s.do(t, http.MethodDelete, "/boxes/1/items/1", "")
	assert.Equal(t, http.StatusNoContent, resp.status)
	assert.Empty(t, resp.raw)
	assertNotFound(t, s.do(t, http.MethodGet, "/boxes/1/items/1", ""))
}

func TestDeleteBoxCascades(t *testing.T) {
	s := newTestServer(t)
	assertNotFound(t, s.do(t, http.MethodDelete, "/boxes/1", ""))

	s.do(t, http.MethodPost, "/boxes", `{"name":"Kitchen Supplies","location":"Kitchen Cabinet"}`)
	s.do(t, http.MethodPost, "/boxes/1/items", `{"name":"Coffee Mug"}`)
	s.do(t, http.MethodPost, "/boxes/1/items", `{"name":"Tea Pot"}`)

	resp := s.do(t, http.MethodDelete, "/boxes/1", "")
	assert.Equal(t, http.StatusNoContent, resp.status)
	assert.Empty(t, resp.raw)

	assertNotFound(t, s.do(t, http.MethodGet, "/boxes/1", ""))
	assertNotFound(t, s.do(t, http.MethodGet, "/boxes/1/items/1", ""))
	assertNotFound(t, s.do(t, http.MethodGet, "/boxes/1/items", ""))
	assertNotFound(t, s.do(t, http.MethodDelete, "/boxes/1", ""))

	// ids are not reused
	resp = s.do(t, http.MethodPost, "/boxes", `{"name":"Attic","location":"Attic"}`)
	assert.Equal(t, 2.0, resp.data(t)["id"])
}

func TestSearch(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodPost, "/boxes", `{"name":"Kitchen Supplies","location":"Kitchen Cabinet"}`)
	s.do(t, http.MethodPost, "/boxes", `{"name":"Office Items","location":"Office Desk"}`)
	s.do(t, http.MethodPost, "/boxes/1/items", `{"name":"Coffee Mug"}`)
	s.do(t, http.MethodPost, "/boxes/2/items", `{"name":"Stapler","description":"100% metal"}`)

	resp := s.do(t, http.MethodGet, "/search", "")
	require.Equal(t, http.StatusUnprocessableEntity, resp.status)
	assert.Contains(t, resp.body["errors"], "q")
	assert.Equal(t, http.StatusUnprocessableEntity, s.do(t, http.MethodGet, "/search?q=%20%20", "").status)

	results := s.do(t, http.MethodGet, "/search?q=KITCHEN", "").list(t)
	require.Len(t, results, 1)
	kitchen := results[0].(map[string]interface{})
	assert.Equal(t, "Kitchen Supplies", kitchen["name"])
	assert.Equal(t, []interface{}{}, kitchen["items"])

	results = s.do(t, http.MethodGet, "/search?q=mug", "").list(t)
	require.Len(t, results, 1)
	box := results[0].(map[string]interface{})
	assert.Equal(t, 1.0, box["id"])
	items := box["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Coffee Mug", items[0].(map[string]interface{})["name"])

	results = s.do(t, http.MethodGet, "/search?q=%25", "").list(t)
	require.Len(t, results, 1)
	assert.Equal(t, 2.0, results[0].(map[string]interface{})["id"])

	results = s.do(t, http.MethodGet, "/search?q=nonexistentterm", "").list(t)
	assert.Empty(t, results)
}

func TestPhotoUpload(t *testing.T) {
	s := newTestServer(t)

	resp := s.send(t, photoRequest(t, "/boxes", map[string]string{"name": "Photos", "location": "Attic"}, pngBytes))
	require.Equal(t, http.StatusCreated, resp.status)
	photoPath, ok := resp.data(t)["photo_path"].(string)
	require.True(t, ok)
	assert.Regexp(t, `^photos/[0-9a-f-]{36}\.png$`, photoPath)

	served := s.do(t, http.MethodGet, "/storage/"+photoPath, "")
	assert.Equal(t, http.StatusOK, served.status)
	assert.Equal(t, pngBytes, served.raw)

	resp = s.send(t, photoRequest(t, "/boxes", map[string]string{"name": "Photos", "location": "Attic"}, []byte("not an image")))
	require.Equal(t, http.StatusUnprocessableEntity, resp.status)
	assert.Contains(t, resp.body["errors"], "photo")

	assert.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, "/boxes/1", "").status)
	_, err := os.Stat(filepath.Join(s.storageRoot, photoPath))
	assert.True(t, os.IsNotExist(err))
}

func TestOperationalEndpoints(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodGet, "/boxes", "")

	resp := s.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, "ok", resp.body["status"])

	resp = s.do(t, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, resp.status)
	assert.Contains(t, string(resp.raw), `http_requests_total{method="GET",path="/boxes",status="200"} 1`)

	req := httptest.NewRequest(http.MethodGet, "/boxes", nil)
	req.Header.Set("X-Request-ID", "trace-me")
	httpResp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "trace-me", httpResp.Header.Get("X-Request-ID"))
}
