package certs

import (
	"time"
)

// CertificateInfo summarises one certificate of a chain for operators.
type CertificateInfo struct {
	Position  int       `json:"position"`
	Subject   string    `json:"subject"`
	Issuer    string    `json:"issuer"`
	Serial    string    `json:"serial"`
	NotBefore time.Time `json:"not_before"`
	NotAfter  time.Time `json:"not_after"`
	DNSNames  []string  `json:"dns_names,omitempty"`
	IsCA      bool      `json:"is_ca"`
}

// ValidAt reports whether t falls inside the certificate validity window.
func (i CertificateInfo) ValidAt(t time.Time) bool {
	return !t.Before(i.NotBefore) && !t.After(i.NotAfter)
}

// Describe returns one entry per chain certificate, in chain order.
func (c *Credential) Describe() []CertificateInfo {
	infos := make([]CertificateInfo, 0, len(c.parsed))
	for i, cert := range c.parsed {
		infos = append(infos, CertificateInfo{
			Position:  i,
			Subject:   cert.Subject.String(),
			Issuer:    cert.Issuer.String(),
			Serial:    cert.SerialNumber.String(),
			NotBefore: cert.NotBefore,
			NotAfter:  cert.NotAfter,
			DNSNames:  cert.DNSNames,
			IsCA:      cert.IsCA,
		})
	}
	return infos
}
