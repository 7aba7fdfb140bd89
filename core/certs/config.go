package certs

// Config holds the locations of the PEM material served by the listener.
type Config struct {
	// Cert is the path to the PEM certificate chain, leaf first.
	Cert string `mapstructure:"cert" default:"cert.pem"`
	// Key is the path to the PEM file holding PKCS#8 private keys.
	Key string `mapstructure:"key" default:"key.pem"`
}
