// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs_test

import (
	"context"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509certs "github.com/H0llyW00dzZ/pem-cert-tree/src/internal/x509/certs"
	x509tree "github.com/H0llyW00dzZ/pem-cert-tree/src/internal/x509/tree"
)

const (
	invalidPEM = `
-----BEGIN INVALID-----
MIIEmTCCBD+gAwIBAgIRANFjRCmF+Y2bUYHbhxwkEpowCgYIKoZIzj0EAwIwgY8x
-----END INVALID-----
`

	invalidCERT = `-----BEGIN CERTIFICATE-----
MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEAz6e5VV5F8rF2sFJ0Q4vA
-----END CERTIFICATE-----
`

	corruptBase64 = `-----BEGIN CERTIFICATE-----
!!!! not base64 !!!!
-----END CERTIFICATE-----
`
)

func TestRecords(t *testing.T) {
	notAfter := time.Now().AddDate(1, 0, 0).UTC().Truncate(time.Second)
	root := issue(t, "Example Root CA", nil, notAfter)
	inter := issue(t, "Example Intermediate CA", root, notAfter.AddDate(0, -1, 0))
	leaf := issue(t, "www.example.com", inter, notAfter.AddDate(0, -2, 0))

	bundle := "# leaf first\n" + leaf.pem + root.pem + "\n" + inter.pem

	decoder := x509certs.New()
	records, err := decoder.Records([]byte(bundle))
	require.NoError(t, err, "Records() error")
	require.Len(t, records, 3)

	tests := []struct {
		subject  string
		issuer   string
		position int
		cert     *testCert
	}{
		{"www.example.com", "Example Intermediate CA", 1, leaf},
		{"Example Root CA", "Example Root CA", 2, root},
		{"Example Intermediate CA", "Example Root CA", 3, inter},
	}

	for i, tt := range tests {
		t.Run(tt.subject, func(t *testing.T) {
			r := records[i]
			assert.Equal(t, tt.subject, r.Subject)
			assert.Equal(t, tt.issuer, r.Issuer)
			assert.Equal(t, tt.position, r.Position)
			assert.Equal(t, tt.cert.pem, r.Raw, "raw text must be kept verbatim")
			assert.True(t, tt.cert.cert.NotAfter.Equal(r.Expiry), "expiry must be NotAfter")
		})
	}

	t.Run("Builds A Single Chain", func(t *testing.T) {
		forest := x509tree.Build(records)
		require.Len(t, forest, 1)
		assert.Equal(t, "Example Root CA", forest[0].Subject)
		require.Len(t, forest[0].Children, 1)
		assert.Equal(t, "Example Intermediate CA", forest[0].Children[0].Subject)
		require.Len(t, forest[0].Children[0].Children, 1)
		assert.Equal(t, "www.example.com", forest[0].Children[0].Children[0].Subject)
	})
}

func TestRecords_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{
			name:     "Corrupt Base64",
			input:    corruptBase64,
			expected: x509certs.ErrInvalidPEMBlock,
		},
		{
			name:     "Invalid Certificate",
			input:    invalidCERT,
			expected: x509certs.ErrParseCertificate,
		},
		{
			name:     "Unterminated Block",
			input:    "-----BEGIN CERTIFICATE-----\nAAAA\n",
			expected: x509certs.ErrUnterminated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := x509certs.New().Records([]byte(tt.input))
			assert.ErrorIs(t, err, tt.expected)
			assert.Nil(t, records, "no partial output on error")
		})
	}
}

func TestRecords_ErrorNamesPosition(t *testing.T) {
	good := issue(t, "Good CA", nil, time.Now().AddDate(1, 0, 0))

	_, err := x509certs.New().Records([]byte(good.pem + invalidCERT))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "certificate #2")
}

func TestRecords_EmptyBundle(t *testing.T) {
	records, err := x509certs.New().Records([]byte("no certificates here\n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecordsContext(t *testing.T) {
	ca := issue(t, "Context CA", nil, time.Now().AddDate(1, 0, 0))
	data := []byte(ca.pem + ca.pem)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	expired, cancelExpired := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancelExpired()

	tests := []struct {
		name     string
		ctx      context.Context
		expected error
		count    int
	}{
		{name: "Background", ctx: context.Background(), count: 2},
		{name: "Cancelled", ctx: cancelled, expected: context.Canceled},
		{name: "Deadline Exceeded", ctx: expired, expected: context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := x509certs.New().RecordsContext(tt.ctx, data)
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
				assert.Nil(t, records, "no partial output on cancellation")
				return
			}
			require.NoError(t, err)
			assert.Len(t, records, tt.count)
		})
	}
}

func TestDecode(t *testing.T) {
	ca := issue(t, "Decode CA", nil, time.Now().AddDate(1, 0, 0))
	decoder := x509certs.New()

	t.Run("PEM", func(t *testing.T) {
		cert, err := decoder.Decode([]byte(ca.pem))
		require.NoError(t, err)
		assert.Equal(t, "Decode CA", cert.Subject.CommonName)
	})

	t.Run("DER", func(t *testing.T) {
		cert, err := decoder.Decode(ca.cert.Raw)
		require.NoError(t, err)
		assert.True(t, cert.Equal(ca.cert))
	})

	t.Run("Invalid PEM Block Type", func(t *testing.T) {
		_, err := decoder.Decode([]byte(invalidPEM))
		assert.Equal(t, x509certs.ErrInvalidBlockType, err)
	})

	t.Run("Invalid DER Data", func(t *testing.T) {
		_, err := decoder.Decode([]byte("not a certificate"))
		assert.ErrorIs(t, err, x509certs.ErrParseCertificate)
		assert.ErrorIs(t, err, x509certs.ErrParsePKCS7)
	})
}

func TestEncodePEM(t *testing.T) {
	ca := issue(t, "Encode CA", nil, time.Now().AddDate(1, 0, 0))
	decoder := x509certs.New()

	encoded := decoder.EncodePEM(ca.cert)
	assert.Equal(t, ca.pem, string(encoded))

	block, _ := pem.Decode(encoded)
	require.NotNil(t, block, "failed to decode encoded PEM")
	assert.Equal(t, "CERTIFICATE", block.Type)

	multiple := decoder.EncodeMultiplePEM([]*x509.Certificate{ca.cert, ca.cert})
	blocks, err := x509certs.SplitPEM(multiple)
	require.NoError(t, err)
	assert.Len(t, blocks, 2)

	assert.Empty(t, decoder.EncodeMultiplePEM(nil))
}

func TestIsPEM(t *testing.T) {
	decoder := x509certs.New()
	ca := issue(t, "PEM CA", nil, time.Now().AddDate(1, 0, 0))

	assert.True(t, decoder.IsPEM([]byte(ca.pem)))
	assert.False(t, decoder.IsPEM([]byte("not a pem block")))
	assert.False(t, decoder.IsPEM(nil))
	assert.False(t, decoder.IsPEM(ca.cert.Raw))
}
