package static

const (
	SourceLocal  = "local"
	SourceBucket = "bucket"
)

// Config holds configuration for the static file fallback.
type Config struct {
	// Source selects where files are read from (local, bucket).
	Source string `mapstructure:"source" default:"local"`
	// Root is the directory served when Source is local.
	Root string `mapstructure:"root" default:"./static"`
	// Index is the file served for directory paths.
	Index string `mapstructure:"index" default:"index.html"`
}

// IsValidSource checks if the configured source is supported.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceLocal, SourceBucket:
		return true
	default:
		return false
	}
}
