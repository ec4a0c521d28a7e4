// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"context"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	x509tree "github.com/H0llyW00dzZ/pem-cert-tree/src/internal/x509/tree"
	"github.com/cloudflare/cfssl/crypto/pkcs7"
)

var (
	// ErrInvalidPEMBlock indicates that the provided data does not contain a valid PEM block.
	ErrInvalidPEMBlock = errors.New("x509certs: invalid PEM block")

	// ErrInvalidBlockType indicates that the PEM block type is not the expected certificate type.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrParsePKCS7 indicates a failure to parse PKCS7 formatted data.
	ErrParsePKCS7 = errors.New("x509certs: failed to parse PKCS7 data")

	// ErrNoCertificatesInPKCS indicates that no certificates were found in the PKCS7 data.
	ErrNoCertificatesInPKCS = errors.New("x509certs: no certificates found in PKCS7 data")
)

// Certificate provides methods to decode and encode [X.509] certificates.
// It maintains internal configuration such as the certificate block type.
//
// [X.509]: https://en.wikipedia.org/wiki/X.509
type Certificate struct {
	certBlockType string
}

// New creates a new Certificate with default settings.
func New() *Certificate {
	return &Certificate{
		certBlockType: "CERTIFICATE",
	}
}

// IsPEM checks if the data is in PEM format.
func (c *Certificate) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// decodePEMBlock decodes a PEM block and checks its type.
func (c *Certificate) decodePEMBlock(data []byte) (*pem.Block, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidPEMBlock
	}
	if block.Type != c.certBlockType {
		return nil, ErrInvalidBlockType
	}
	return block, nil
}

// Decode decodes a single certificate from PEM or DER data,
// falling back to a PKCS#7 bundle and returning its first certificate.
// Data that is neither yields an error matching both [ErrParseCertificate] and [ErrParsePKCS7].
func (c *Certificate) Decode(data []byte) (*x509.Certificate, error) {
	if c.IsPEM(data) {
		block, err := c.decodePEMBlock(data)
		if err != nil {
			return nil, err
		}

		data = block.Bytes
	}

	cert, err := x509.ParseCertificate(data)
	if err == nil {
		return cert, nil
	}

	// Attempt to parse as PKCS7 using Cloudflare's library
	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseCertificate, ErrParsePKCS7)
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}

	return p.Content.SignedData.Certificates[0], nil
}

// Record converts a decoded certificate into the record consumed by the tree builder.
//
// Parameters:
//   - cert: Decoded certificate
//   - block: The bundle block the certificate was decoded from
//
// Returns:
//   - x509tree.Record: Subject and issuer common names, expiry, position and raw text
func (c *Certificate) Record(cert *x509.Certificate, block Block) x509tree.Record {
	return x509tree.Record{
		Subject:  cert.Subject.CommonName,
		Issuer:   cert.Issuer.CommonName,
		Expiry:   cert.NotAfter,
		Position: block.Position,
		Raw:      block.Text,
	}
}

// decodeBlock decodes the certificate held by a scanned bundle block.
func (c *Certificate) decodeBlock(block Block) (*x509.Certificate, error) {
	pb, err := c.decodePEMBlock([]byte(block.Text))
	if err != nil {
		return nil, err
	}
	return c.Decode(pb.Bytes)
}

// Records scans a PEM bundle and decodes every certificate block in it.
// It is [Certificate.RecordsContext] with a background context.
func (c *Certificate) Records(data []byte) ([]x509tree.Record, error) {
	return c.RecordsContext(context.Background(), data)
}

// RecordsContext scans a PEM bundle and decodes every certificate block in it,
// checking ctx before each block.
//
// Decoding fails fast: the first malformed block aborts the whole bundle so that
// no partial tree is ever produced.
//
// Parameters:
//   - ctx: Context for cancellation and deadlines
//   - data: Raw PEM bundle contents
//
// Returns:
//   - []x509tree.Record: One record per certificate, in bundle order
//   - error: ctx.Err(), a scanning error from [SplitPEM], or a decoding error naming the block position
func (c *Certificate) RecordsContext(ctx context.Context, data []byte) ([]x509tree.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	blocks, err := SplitPEM(data)
	if err != nil {
		return nil, err
	}

	records := make([]x509tree.Record, 0, len(blocks))
	for _, block := range blocks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cert, err := c.decodeBlock(block)
		if err != nil {
			return nil, fmt.Errorf("certificate #%d: %w", block.Position, err)
		}
		records = append(records, c.Record(cert, block))
	}

	return records, nil
}

// EncodePEM encodes a certificate to PEM format.
func (c *Certificate) EncodePEM(cert *x509.Certificate) []byte {
	block := pem.Block{
		Type:  c.certBlockType,
		Bytes: cert.Raw,
	}
	return pem.EncodeToMemory(&block)
}

// EncodeMultiplePEM encodes multiple certificates to PEM format.
func (c *Certificate) EncodeMultiplePEM(certs []*x509.Certificate) []byte {
	var data []byte

	for _, cert := range certs {
		data = append(data, c.EncodePEM(cert)...)
	}

	return data
}
