// Package certs loads the server TLS identity from PEM files.
//
// A Credential is built once at startup from a certificate chain file and a
// private key file, then shared read-only by every inbound connection. There
// is no reload: replacing the files requires a restart.
//
// # Input Format
//
//   - Certificate file: one or more "CERTIFICATE" PEM blocks, leaf first,
//     intermediates following. Every block must parse as X.509.
//   - Key file: one or more PKCS#8 "PRIVATE KEY" blocks. When several are
//     present the LAST one is used. PKCS#1 and SEC1 blocks are ignored.
//
// # Errors
//
// Load wraps one of the package sentinels so callers can tell the failing
// input apart with errors.Is:
//
//   - ErrCertificateRead / ErrKeyRead: the file could not be opened or read.
//   - ErrCertificateParse: no certificate blocks, or a block is not X.509.
//   - ErrKeyParse: a PKCS#8 block is malformed.
//   - ErrNoPrivateKey: the key file holds no PKCS#8 block.
//   - ErrTLSConfiguration: crypto/tls refused the pair (e.g. key mismatch).
//
// # Usage
//
//	cred, err := certs.Load(cfg.TLS.Cert, cfg.TLS.Key)
//	if err != nil {
//	    return err
//	}
//	ln := tls.NewListener(tcp, cred.ServerConfig())
package certs
