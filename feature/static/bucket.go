package static

import (
	"mime"
	"net/http"
	"path"
	"strings"

	"secure-app-server/core/logger"
	"secure-app-server/core/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// BucketHandler serves files stored in an object storage bucket.
type BucketHandler struct {
	client storage.Client
	bucket string
	index  string
	logger *zap.Logger
}

// NewBucketHandler creates a handler reading objects from bucket.
func NewBucketHandler(client storage.Client, bucket, index string, logger *zap.Logger) *BucketHandler {
	return &BucketHandler{
		client: client,
		bucket: bucket,
		index:  index,
		logger: logger,
	}
}

// HandleObject streams the object named by the request path.
func (h *BucketHandler) HandleObject(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	name := ObjectName(c.Path(), h.index)
	ctx := c.UserContext()

	info, err := h.client.StatObject(ctx, h.bucket, name, minio.StatObjectOptions{})
	if storage.IsNotFound(err) && path.Base(name) != h.index {
		// "/docs" may name a directory; serve its index like the local source does.
		name = path.Join(name, h.index)
		info, err = h.client.StatObject(ctx, h.bucket, name, minio.StatObjectOptions{})
	}
	if err != nil {
		if storage.IsNotFound(err) {
			return fiber.ErrNotFound
		}
		l.Error("Failed to stat object", zap.String("object", name), zap.Error(err))
		return fiber.ErrBadGateway
	}

	obj, err := h.client.GetObject(ctx, h.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		l.Error("Failed to get object", zap.String("object", name), zap.Error(err))
		return fiber.ErrBadGateway
	}

	contentType := info.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		if byExt := mime.TypeByExtension(path.Ext(name)); byExt != "" {
			contentType = byExt
		}
	}
	if contentType != "" {
		c.Set(fiber.HeaderContentType, contentType)
	}
	if info.ETag != "" {
		c.Set(fiber.HeaderETag, `"`+info.ETag+`"`)
	}
	if !info.LastModified.IsZero() {
		c.Set(fiber.HeaderLastModified, info.LastModified.UTC().Format(http.TimeFormat))
	}

	return c.SendStream(obj, int(info.Size))
}

// ObjectName maps a request path to an object key. Directory paths resolve
// to their index file.
func ObjectName(requestPath, index string) string {
	isDir := requestPath == "" || strings.HasSuffix(requestPath, "/")

	name := strings.TrimPrefix(path.Clean("/"+requestPath), "/")
	if isDir || name == "" {
		name = path.Join(name, index)
	}
	return name
}
