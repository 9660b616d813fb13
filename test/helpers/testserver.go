package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"agency_admin/database"
	"agency_admin/internal/app"
	"agency_admin/internal/config"
	"agency_admin/internal/logger"
	"agency_admin/internal/storage"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TestServer wires the full HTTP stack against an in-memory sqlite
// database and a throwaway image directory.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Cfg    *config.Config
}

// NewTestServer spins up an isolated server instance. Each test gets
// its own database, keyed by the test name.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	cfg := testConfig(t)
	config.AppConfig = cfg
	logger.Init("test")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	store, err := storage.NewLocalStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		t.Fatalf("failed to init test storage: %v", err)
	}

	router := app.SetupRouter(cfg, db, store)
	server := httptest.NewServer(router)

	ts := &TestServer{Server: server, DB: db, Cfg: cfg}
	t.Cleanup(ts.Close)
	return ts
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret-key"
	cfg.JWT.TTL = 60
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.BaseURL = "/files/portfolio"
	cfg.Upload.MaxSize = 16 * 1024 * 1024
	cfg.Upload.AllowedExtensions = []string{"jpg", "jpeg", "png", "gif"}
	cfg.Upload.MaxDimension = 1600
	cfg.Upload.ImageQuality = 85
	cfg.Sync.Mode = "file"
	cfg.Sync.SnapshotPath = filepath.Join(t.TempDir(), "snapshot.json")
	cfg.Sync.TimeoutSec = 5
	return cfg
}

// StoragePath resolves a stored image filename to its on-disk path.
func (ts *TestServer) StoragePath(filename string) string {
	return filepath.Join(ts.Cfg.Storage.BasePath, filename)
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// SendRequest performs a JSON request against the test server and
// returns the response together with its body.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return res, string(resBody)
}

// SendMultipart performs a multipart form request, attaching file bytes
// under the "image" field when filename is non-empty.
func (ts *TestServer) SendMultipart(t *testing.T, method, path, token string, fields map[string]string, filename string, file []byte) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("failed to write form field %s: %v", key, err)
		}
	}
	if filename != "" {
		part, err := writer.CreateFormFile("image", filename)
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		if _, err := part.Write(file); err != nil {
			t.Fatalf("failed to write form file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return res, string(resBody)
}
