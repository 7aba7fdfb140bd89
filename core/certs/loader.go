package certs

import (
	"bufio"
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"os"
)

const (
	certificateBlockType = "CERTIFICATE"
	pkcs8BlockType       = "PRIVATE KEY"
)

// Credential is a parsed and validated server identity.
//
// It is built once at startup and shared read-only by every connection.
type Credential struct {
	// Chain holds the DER certificates in file order, leaf first.
	Chain [][]byte
	// PrivateKey holds the selected DER-encoded PKCS#8 key.
	PrivateKey []byte
	// Leaf is the parsed first certificate of Chain.
	Leaf *x509.Certificate

	parsed      []*x509.Certificate
	certificate tls.Certificate
}

// Load reads certPath and keyPath and pairs them into a Credential.
//
// Every CERTIFICATE block of certPath is kept in order. Of the PKCS#8
// blocks found in keyPath, the last one is used.
func Load(certPath, keyPath string) (*Credential, error) {
	chain, parsed, err := readCertificates(certPath)
	if err != nil {
		return nil, err
	}

	keys, err := readPrivateKeys(keyPath)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoPrivateKey, keyPath)
	}
	key := keys[len(keys)-1]

	certificate, err := pair(chain, key)
	if err != nil {
		return nil, err
	}
	certificate.Leaf = parsed[0]

	return &Credential{
		Chain:       chain,
		PrivateKey:  key,
		Leaf:        parsed[0],
		parsed:      parsed,
		certificate: certificate,
	}, nil
}

// ServerConfig returns a server-side TLS configuration presenting the credential.
//
// Cipher suites, curves and protocol negotiation use the crypto/tls
// defaults above TLS 1.2. Client certificates are not requested.
func (c *Credential) ServerConfig() *tls.Config {
	return &tls.Config{
		Certificates: []tls.Certificate{c.certificate},
		MinVersion:   tls.VersionTLS12,
		ClientAuth:   tls.NoClientCert,
		NextProtos:   []string{"http/1.1"},
	}
}

func readCertificates(path string) ([][]byte, []*x509.Certificate, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w %s: %w", ErrCertificateRead, path, err)
	}

	var (
		chain  [][]byte
		parsed []*x509.Certificate
	)
	blocks, err := decodeBlocks(data, certificateBlockType)
	if err != nil {
		return nil, nil, fmt.Errorf("%w %s: %w", ErrCertificateParse, path, err)
	}
	for _, block := range blocks {
		cert, err := x509.ParseCertificate(block)
		if err != nil {
			return nil, nil, fmt.Errorf("%w %s: certificate %d: %w", ErrCertificateParse, path, len(chain), err)
		}
		chain = append(chain, block)
		parsed = append(parsed, cert)
	}
	if len(chain) == 0 {
		return nil, nil, fmt.Errorf("%w %s: no PEM certificate blocks", ErrCertificateParse, path)
	}

	return chain, parsed, nil
}

func readPrivateKeys(path string) ([][]byte, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrKeyRead, path, err)
	}

	blocks, err := decodeBlocks(data, pkcs8BlockType)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrKeyParse, path, err)
	}

	var keys [][]byte
	for _, block := range blocks {
		if _, err := x509.ParsePKCS8PrivateKey(block); err != nil {
			return nil, fmt.Errorf("%w %s: key %d: %w", ErrKeyParse, path, len(keys), err)
		}
		keys = append(keys, block)
	}

	return keys, nil
}

// pair hands the material to crypto/tls, which checks the key against the leaf.
func pair(chain [][]byte, key []byte) (tls.Certificate, error) {
	var certPEM []byte
	for _, der := range chain {
		certPEM = append(certPEM, pem.EncodeToMemory(&pem.Block{Type: certificateBlockType, Bytes: der})...)
	}
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: pkcs8BlockType, Bytes: key})

	certificate, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("%w: %w", ErrTLSConfiguration, err)
	}
	return certificate, nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(bufio.NewReader(f))
}

var (
	pemBegin     = []byte("-----BEGIN ")
	pemLineBegin = []byte("\n-----BEGIN ")
)

// decodeBlocks returns the bytes of every PEM block of the given type, in order.
// Blocks of other types and text between blocks are skipped. A BEGIN line that
// pem.Decode could not turn into a block (bad base64, missing END) is an error.
func decodeBlocks(data []byte, blockType string) ([][]byte, error) {
	var blocks [][]byte
	for index := 0; ; index++ {
		block, rest := pem.Decode(data)
		if block == nil {
			if countBegins(data) > 0 {
				return nil, fmt.Errorf("malformed PEM block %d", index)
			}
			return blocks, nil
		}
		// pem.Decode silently steps over malformed blocks before the one it returns.
		if countBegins(data[:len(data)-len(rest)]) > 1 {
			return nil, fmt.Errorf("malformed PEM block %d", index)
		}
		if block.Type == blockType {
			blocks = append(blocks, block.Bytes)
		}
		data = rest
	}
}

// countBegins counts the lines of data starting a PEM block.
func countBegins(data []byte) int {
	n := bytes.Count(data, pemLineBegin)
	if bytes.HasPrefix(data, pemBegin) {
		n++
	}
	return n
}
