package server

import "time"

// Config holds the per-connection ceilings of the HTTPS listener.
type Config struct {
	// ReadTimeout bounds how long a client may take to send a full request.
	ReadTimeout time.Duration `mapstructure:"read_timeout" default:"10s"`
	// IdleTimeout is the keep-alive duration between requests on one connection.
	IdleTimeout time.Duration `mapstructure:"idle_timeout" default:"75s"`
	// ShutdownTimeout bounds how long open connections may drain on shutdown.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" default:"5s"`
	// HandshakeTimeout bounds the TLS handshake of a new connection.
	HandshakeTimeout time.Duration `mapstructure:"handshake_timeout" default:"10s"`
	// MaxConnections caps the number of concurrently served connections.
	MaxConnections int `mapstructure:"max_connections" default:"10000"`
	// Docs enables the Swagger UI under /swagger.
	Docs bool `mapstructure:"docs" default:"true"`
}

const (
	defaultReadTimeout      = 10 * time.Second
	defaultIdleTimeout      = 75 * time.Second
	defaultShutdownTimeout  = 5 * time.Second
	defaultHandshakeTimeout = 10 * time.Second
	defaultMaxConnections   = 10_000
)

// WithDefaults returns a copy of c where unset ceilings take their defaults.
func (c Config) WithDefaults() Config {
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = defaultReadTimeout
	}
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = defaultIdleTimeout
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = defaultShutdownTimeout
	}
	if c.HandshakeTimeout <= 0 {
		c.HandshakeTimeout = defaultHandshakeTimeout
	}
	if c.MaxConnections <= 0 {
		c.MaxConnections = defaultMaxConnections
	}
	return c
}
