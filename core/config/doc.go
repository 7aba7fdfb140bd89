// Package config provides configuration management for the server.
//
// It utilizes Viper for reading environment variables, pre-seeded from an
// optional .env file. Defaults come from the `default` struct tags of each
// section and are registered by reflection, so adding a field with a tag is
// all it takes to expose a new variable.
//
// # Variables
//
//   - HOST (0.0.0.0), PORT (8443, must fit in 16 bits)
//   - TLS_CERT (cert.pem), TLS_KEY (key.pem)
//   - SERVER_READ_TIMEOUT, SERVER_IDLE_TIMEOUT, SERVER_SHUTDOWN_TIMEOUT,
//     SERVER_HANDSHAKE_TIMEOUT, SERVER_MAX_CONNECTIONS, SERVER_DOCS
//   - STATIC_SOURCE (local|bucket), STATIC_ROOT, STATIC_INDEX
//   - STORAGE_ENDPOINT, STORAGE_ACCESS_KEY, STORAGE_SECRET_KEY, STORAGE_BUCKET, ...
//   - METRICS_NAMESPACE, LOG_LEVEL, LOG_FORMAT
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.BindAddress())
package config
