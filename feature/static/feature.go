package static

import (
	"fmt"
	"os"

	"secure-app-server/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature mounts the catch-all static file route. Register it last.
type Feature struct {
	cfg    Config
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewFeature creates the static feature. client and bucket are only used
// by the bucket source and may be empty for the local one.
func NewFeature(cfg Config, client storage.Client, bucket string, logger *zap.Logger) *Feature {
	return &Feature{
		cfg:    cfg,
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

func (f *Feature) Name() string {
	return "static"
}

func (f *Feature) IsEnabled() bool {
	return true
}

func (f *Feature) Load(app fiber.Router) error {
	switch f.cfg.Source {
	case SourceLocal:
		if info, err := os.Stat(f.cfg.Root); err != nil || !info.IsDir() {
			f.logger.Warn("Static root is not a readable directory, every file will be 404",
				zap.String("root", f.cfg.Root))
		}
		f.logger.Info("Serving static files", zap.String("root", f.cfg.Root), zap.String("index", f.cfg.Index))
		app.Static("/", f.cfg.Root, fiber.Static{
			Index: f.cfg.Index,
		})
		return nil
	case SourceBucket:
		if f.client == nil {
			return fmt.Errorf("static source %q requires a storage client", SourceBucket)
		}
		f.logger.Info("Serving static files from bucket", zap.String("bucket", f.bucket), zap.String("index", f.cfg.Index))
		app.Get("/*", NewBucketHandler(f.client, f.bucket, f.cfg.Index, f.logger).HandleObject)
		return nil
	default:
		return fmt.Errorf("unknown static source %q", f.cfg.Source)
	}
}
