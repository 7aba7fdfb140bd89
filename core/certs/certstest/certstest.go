// Package certstest generates throwaway PEM material for tests.
package certstest

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Chain is a CA-signed leaf with the keys of both certificates.
type Chain struct {
	CA      *x509.Certificate
	CADER   []byte
	CAKey   *ecdsa.PrivateKey
	Leaf    *x509.Certificate
	LeafDER []byte
	LeafKey *ecdsa.PrivateKey
}

// NewChain creates a CA and a leaf for localhost signed by it.
func NewChain(t testing.TB) *Chain {
	t.Helper()

	caKey := NewKey(t)
	caTemplate := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "test-ca"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour),
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}
	caDER, err := x509.CreateCertificate(rand.Reader, caTemplate, caTemplate, &caKey.PublicKey, caKey)
	require.NoError(t, err)
	ca, err := x509.ParseCertificate(caDER)
	require.NoError(t, err)

	leafKey := NewKey(t)
	leafTemplate := &x509.Certificate{
		SerialNumber: big.NewInt(2),
		Subject:      pkix.Name{CommonName: "localhost"},
		DNSNames:     []string{"localhost"},
		IPAddresses:  []net.IP{net.ParseIP("127.0.0.1")},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(24 * time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}
	leafDER, err := x509.CreateCertificate(rand.Reader, leafTemplate, ca, &leafKey.PublicKey, caKey)
	require.NoError(t, err)
	leaf, err := x509.ParseCertificate(leafDER)
	require.NoError(t, err)

	return &Chain{
		CA:      ca,
		CADER:   caDER,
		CAKey:   caKey,
		Leaf:    leaf,
		LeafDER: leafDER,
		LeafKey: leafKey,
	}
}

// NewKey returns a fresh P-256 key.
func NewKey(t testing.TB) *ecdsa.PrivateKey {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	return key
}

// CertificatePEM encodes the given DER certificates as consecutive PEM blocks.
func CertificatePEM(ders ...[]byte) []byte {
	var out []byte
	for _, der := range ders {
		out = append(out, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})...)
	}
	return out
}

// PKCS8PEM encodes the given keys as consecutive PKCS#8 PEM blocks.
func PKCS8PEM(t testing.TB, keys ...*ecdsa.PrivateKey) []byte {
	t.Helper()
	var out []byte
	for _, key := range keys {
		der, err := x509.MarshalPKCS8PrivateKey(key)
		require.NoError(t, err)
		out = append(out, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})...)
	}
	return out
}

// WriteFile writes data to name inside a per-test temporary directory.
func WriteFile(t testing.TB, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// WritePair writes the leaf+CA chain and the leaf key, returning both paths.
func (c *Chain) WritePair(t testing.TB) (certPath, keyPath string) {
	t.Helper()
	certPath = WriteFile(t, "cert.pem", CertificatePEM(c.LeafDER, c.CADER))
	keyPath = WriteFile(t, "key.pem", PKCS8PEM(t, c.LeafKey))
	return certPath, keyPath
}

// Pool returns a cert pool trusting the chain's CA.
func (c *Chain) Pool() *x509.CertPool {
	pool := x509.NewCertPool()
	pool.AddCert(c.CA)
	return pool
}
