package static

import (
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"secure-app-server/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func get(t *testing.T, app *fiber.App, path string) (int, string, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body), resp.Header.Get(fiber.HeaderContentType)
}

func TestConfig_IsValidSource(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   bool
	}{
		{"Local", SourceLocal, true},
		{"Bucket", SourceBucket, true},
		{"Invalid", "ftp", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Config{Source: tt.source}.IsValidSource())
		})
	}
}

func TestObjectName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", "index.html"},
		{"", "index.html"},
		{"/app.js", "app.js"},
		{"/docs/", "docs/index.html"},
		{"/docs/guide.html", "docs/guide.html"},
		{"/../../etc/passwd", "etc/passwd"},
		{"/a/./b/../c.css", "a/c.css"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ObjectName(tt.path, "index.html"))
		})
	}
}

func TestFeature_Local(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<h1>home</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "app.js"), []byte("console.log(1)"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs", "index.html"), []byte("docs"), 0o644))

	app := fiber.New()
	f := NewFeature(Config{Source: SourceLocal, Root: root, Index: "index.html"}, nil, "", zap.NewNop())
	require.NoError(t, f.Load(app))

	status, body, contentType := get(t, app, "/")
	assert.Equal(t, 200, status)
	assert.Equal(t, "<h1>home</h1>", body)
	assert.Contains(t, contentType, "text/html")

	status, body, _ = get(t, app, "/app.js")
	assert.Equal(t, 200, status)
	assert.Equal(t, "console.log(1)", body)

	status, body, _ = get(t, app, "/docs/")
	assert.Equal(t, 200, status)
	assert.Equal(t, "docs", body)

	status, _, _ = get(t, app, "/missing.txt")
	assert.Equal(t, 404, status)
}

func TestFeature_LocalMissingRoot(t *testing.T) {
	app := fiber.New()
	f := NewFeature(Config{Source: SourceLocal, Root: filepath.Join(t.TempDir(), "absent"), Index: "index.html"}, nil, "", zap.NewNop())
	require.NoError(t, f.Load(app))

	status, _, _ := get(t, app, "/")
	assert.Equal(t, 404, status)
}

func TestFeature_InvalidSource(t *testing.T) {
	f := NewFeature(Config{Source: "ftp"}, nil, "", zap.NewNop())
	assert.Error(t, f.Load(fiber.New()))
}

func TestFeature_BucketWithoutClient(t *testing.T) {
	f := NewFeature(Config{Source: SourceBucket, Index: "index.html"}, nil, "static", zap.NewNop())
	assert.Error(t, f.Load(fiber.New()))
}

func setupBucketApp(t *testing.T) (*fiber.App, *mocks.Client) {
	t.Helper()
	client := new(mocks.Client)
	app := fiber.New()
	f := NewFeature(Config{Source: SourceBucket, Index: "index.html"}, client, "static", zap.NewNop())
	require.NoError(t, f.Load(app))
	return app, client
}

func TestBucketHandler_ServesIndex(t *testing.T) {
	app, client := setupBucketApp(t)

	client.On("StatObject", mock.Anything, "static", "index.html", mock.Anything).
		Return(minio.ObjectInfo{Key: "index.html", Size: 5, ContentType: "text/html", LastModified: time.Now()}, nil)
	client.On("GetObject", mock.Anything, "static", "index.html", mock.Anything).
		Return(io.NopCloser(strings.NewReader("hello")), nil)

	status, body, contentType := get(t, app, "/")
	assert.Equal(t, 200, status)
	assert.Equal(t, "hello", body)
	assert.Equal(t, "text/html", contentType)
	client.AssertExpectations(t)
}

func TestBucketHandler_GuessesContentType(t *testing.T) {
	app, client := setupBucketApp(t)

	client.On("StatObject", mock.Anything, "static", "css/site.css", mock.Anything).
		Return(minio.ObjectInfo{Key: "css/site.css", Size: 4, ContentType: "application/octet-stream"}, nil)
	client.On("GetObject", mock.Anything, "static", "css/site.css", mock.Anything).
		Return(io.NopCloser(strings.NewReader("body")), nil)

	status, _, contentType := get(t, app, "/css/site.css")
	assert.Equal(t, 200, status)
	assert.Contains(t, contentType, "text/css")
}

func TestBucketHandler_NotFound(t *testing.T) {
	app, client := setupBucketApp(t)

	client.On("StatObject", mock.Anything, "static", "missing.png", mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})
	client.On("StatObject", mock.Anything, "static", "missing.png/index.html", mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})

	status, _, _ := get(t, app, "/missing.png")
	assert.Equal(t, 404, status)
	client.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBucketHandler_MissingIndexIsNotRetried(t *testing.T) {
	app, client := setupBucketApp(t)

	client.On("StatObject", mock.Anything, "static", "docs/index.html", mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"}).Once()

	status, _, _ := get(t, app, "/docs/")
	assert.Equal(t, 404, status)
	client.AssertNumberOfCalls(t, "StatObject", 1)
}

func TestBucketHandler_DirectoryWithoutSlash(t *testing.T) {
	app, client := setupBucketApp(t)

	client.On("StatObject", mock.Anything, "static", "docs", mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})
	client.On("StatObject", mock.Anything, "static", "docs/index.html", mock.Anything).
		Return(minio.ObjectInfo{Key: "docs/index.html", Size: 4, ContentType: "text/html"}, nil)
	client.On("GetObject", mock.Anything, "static", "docs/index.html", mock.Anything).
		Return(io.NopCloser(strings.NewReader("docs")), nil)

	status, body, contentType := get(t, app, "/docs")
	assert.Equal(t, 200, status)
	assert.Equal(t, "docs", body)
	assert.Equal(t, "text/html", contentType)
	client.AssertExpectations(t)
}

func TestBucketHandler_StorageFailure(t *testing.T) {
	app, client := setupBucketApp(t)

	client.On("StatObject", mock.Anything, "static", "app.js", mock.Anything).
		Return(minio.ObjectInfo{}, assert.AnError)

	status, _, _ := get(t, app, "/app.js")
	assert.Equal(t, fiber.StatusBadGateway, status)
}

func TestBucketHandler_GetFailure(t *testing.T) {
	app, client := setupBucketApp(t)

	client.On("StatObject", mock.Anything, "static", "app.js", mock.Anything).
		Return(minio.ObjectInfo{Key: "app.js", Size: 1}, nil)
	client.On("GetObject", mock.Anything, "static", "app.js", mock.Anything).
		Return(nil, assert.AnError)

	status, _, _ := get(t, app, "/app.js")
	assert.Equal(t, fiber.StatusBadGateway, status)
}
