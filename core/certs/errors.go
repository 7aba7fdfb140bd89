package certs

import "errors"

var (
	// ErrCertificateRead is returned when the certificate file cannot be opened or read.
	ErrCertificateRead = errors.New("failed to read certificate file")
	// ErrCertificateParse is returned when the certificate file holds no usable PEM certificate.
	ErrCertificateParse = errors.New("failed to parse certificate file")
	// ErrKeyRead is returned when the key file cannot be opened or read.
	ErrKeyRead = errors.New("failed to read key file")
	// ErrKeyParse is returned when a PKCS#8 block in the key file is malformed.
	ErrKeyParse = errors.New("failed to parse key file")
	// ErrNoPrivateKey is returned when the key file holds no PKCS#8 private key.
	ErrNoPrivateKey = errors.New("no private key found")
	// ErrTLSConfiguration is returned when the chain and key cannot be paired.
	ErrTLSConfiguration = errors.New("invalid TLS configuration")
)
