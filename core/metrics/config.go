package metrics

// Config holds configuration for request metrics.
type Config struct {
	// Namespace prefixes every exported metric name.
	Namespace string `mapstructure:"namespace" default:"api"`
}
