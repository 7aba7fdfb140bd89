package config

import (
	"fmt"
	"net"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"secure-app-server/core/certs"
	"secure-app-server/core/logger"
	"secure-app-server/core/metrics"
	"secure-app-server/core/server"
	"secure-app-server/core/storage"
	"secure-app-server/feature/static"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Host is the interface address the listener binds to.
	Host string `mapstructure:"host" default:"0.0.0.0"`
	// Port is the TCP port the listener binds to.
	Port uint16 `mapstructure:"port" default:"8443"`
	// TLS holds the certificate chain and key file locations.
	TLS certs.Config `mapstructure:"tls"`
	// Server holds the connection ceilings of the HTTPS listener.
	Server server.Config `mapstructure:"server"`
	// Static holds configuration for the static file fallback.
	Static static.Config `mapstructure:"static"`
	// Storage holds configuration for the object storage used by the bucket static source.
	Storage storage.Config `mapstructure:"storage"`
	// Metrics holds configuration for the Prometheus collectors.
	Metrics metrics.Config `mapstructure:"metrics"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// BindAddress returns the "host:port" the listener binds to.
func (c *Config) BindAddress() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(int(c.Port)))
}

// LoadConfig loads configuration from environment variables and an optional .env file in path.
//
// Variables already present in the environment take precedence over the
// .env file. A variable that is set but cannot be decoded (e.g. PORT=http)
// is an error; it never falls back to the default.
func LoadConfig(path string) (*Config, error) {
	envPath := filepath.Join(path, ".env")

	// A missing .env is normal in production.
	_ = godotenv.Load(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. TLS_CERT -> tls.cert)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// A variable set to "" is a value, not an absence (PORT= is invalid)
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		decimalUint16Hook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if !config.Static.IsValidSource() {
		return nil, fmt.Errorf("invalid STATIC_SOURCE %q: must be %q or %q",
			config.Static.Source, static.SourceLocal, static.SourceBucket)
	}

	return &config, nil
}

// decimalUint16Hook parses strings into uint16 fields as plain base-10 numbers.
// The weak mapstructure default would honour 0x and 0 prefixes.
func decimalUint16Hook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to.Kind() != reflect.Uint16 {
			return data, nil
		}
		n, err := strconv.ParseUint(data.(string), 10, 16)
		if err != nil {
			return nil, err
		}
		return uint16(n), nil
	}
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
