// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509tree_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509tree "github.com/H0llyW00dzZ/pem-cert-tree/src/internal/x509/tree"
)

var now = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

func TestRender_Structure(t *testing.T) {
	tests := []struct {
		name    string
		records []x509tree.Record
		opts    x509tree.Options
		want    []string
	}{
		{
			name:    "Empty Forest",
			records: nil,
			want:    nil,
		},
		{
			name:    "Chain Depth Preserved",
			records: records([2]string{"A", "A"}, [2]string{"B", "A"}, [2]string{"C", "B"}),
			want: []string{
				"━ A",
				"    ┗━ B",
				"        ┗━ C",
			},
		},
		{
			name:    "Last Child Glyph",
			records: records([2]string{"A", "A"}, [2]string{"B", "A"}, [2]string{"C", "A"}),
			want: []string{
				"━ A",
				"    ┣━ B",
				"    ┗━ C",
			},
		},
		{
			name:    "Last Child Glyph Follows Insertion Order",
			records: records([2]string{"C", "A"}, [2]string{"B", "A"}, [2]string{"A", "A"}),
			want: []string{
				"━ A",
				"    ┣━ C",
				"    ┗━ B",
			},
		},
		{
			name:    "Placeholder Marker",
			records: records([2]string{"B", "A"}),
			want: []string{
				"━ A (NOT PRESENT IN THIS PEM FILE)",
				"    ┗━ B",
			},
		},
		{
			name: "Subject Is Trimmed",
			records: []x509tree.Record{
				{Subject: "  A  ", Issuer: "  A  ", Position: 1},
			},
			want: []string{"━ A"},
		},
		{
			name:    "Position Column Is Aligned",
			records: records([2]string{"A", "A"}, [2]string{"B", "A"}),
			opts:    x509tree.Options{ShowPosition: true},
			want: []string{
				"━ A      [1]",
				"    ┗━ B [2]",
			},
		},
		{
			name:    "Placeholder Has No Position",
			records: records([2]string{"B", "A"}),
			opts:    x509tree.Options{ShowPosition: true},
			want: []string{
				"━ A (NOT PRESENT IN THIS PEM FILE)",
				"    ┗━ B                           [1]",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Now = now
			got := x509tree.Render(x509tree.Build(tt.records), tt.opts)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_ExpiryClassification(t *testing.T) {
	tests := []struct {
		name       string
		expiry     time.Time
		showExpiry bool
		want       string
	}{
		{
			name:   "Expired",
			expiry: now.AddDate(0, -1, 0),
			want:   "━ A [EXPIRED on: 2025-05-01 00:00:00]",
		},
		{
			name:   "Expiring Soon",
			expiry: now.Add(10 * 24 * time.Hour),
			want:   "━ A [going to expire on: 2025-06-11 00:00:00]",
		},
		{
			name:   "Expiring Exactly Now",
			expiry: now,
			want:   "━ A [going to expire on: 2025-06-01 00:00:00]",
		},
		{
			name:   "Just Outside Warning Window Without Expiry Display",
			expiry: now.Add(x509tree.DefaultWarnWindow),
			want:   "━ A",
		},
		{
			name:       "Just Outside Warning Window With Expiry Display",
			expiry:     now.Add(x509tree.DefaultWarnWindow),
			showExpiry: true,
			want:       "━ A [valid until: 2025-07-01 00:00:00]",
		},
		{
			name:       "Expired Is Reported Regardless Of Expiry Display",
			expiry:     now.Add(-time.Second),
			showExpiry: true,
			want:       "━ A [EXPIRED on: 2025-05-31 23:59:59]",
		},
		{
			name:       "Unknown Expiry",
			expiry:     time.Time{},
			showExpiry: true,
			want:       "━ A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forest := x509tree.Build([]x509tree.Record{
				{Subject: "A", Issuer: "A", Position: 1, Expiry: tt.expiry},
			})
			got := x509tree.Render(forest, x509tree.Options{Now: now, ShowExpiry: tt.showExpiry})
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

func TestRender_PositionAndExpiryTogether(t *testing.T) {
	forest := x509tree.Build([]x509tree.Record{
		{Subject: "A", Issuer: "A", Position: 2, Expiry: now.AddDate(1, 0, 0)},
		{Subject: "B", Issuer: "A", Position: 1, Expiry: now.AddDate(0, 0, -1)},
	})

	got := x509tree.Render(forest, x509tree.Options{Now: now, ShowPosition: true, ShowExpiry: true})
	assert.Equal(t, []string{
		"━ A      [2] [valid until: 2026-06-01 00:00:00]",
		"    ┗━ B [1] [EXPIRED on: 2025-05-31 00:00:00]",
	}, got)
}

func TestRender_ColumnLayout(t *testing.T) {
	forest := x509tree.Build([]x509tree.Record{
		{Subject: "CA", Issuer: "CA", Position: 1, Expiry: now.AddDate(0, 0, -1)},
		{Subject: "証明書", Issuer: "CA", Position: 2},
	})

	got := x509tree.Render(forest, x509tree.Options{Now: now})
	require.Len(t, got, 2)

	// "    ┗━ 証明書" is 13 columns wide; the root label is padded to it, then one space.
	assert.Equal(t, "━ CA"+strings.Repeat(" ", 9)+" [EXPIRED on: 2025-05-31 00:00:00]", got[0])
	assert.Equal(t, "    ┗━ 証明書", got[1], "unannotated lines carry no padding")
}

func TestRender_CustomWarnWindow(t *testing.T) {
	forest := x509tree.Build([]x509tree.Record{
		{Subject: "A", Issuer: "A", Position: 1, Expiry: now.AddDate(0, 0, 45)},
	})

	got := x509tree.Render(forest, x509tree.Options{Now: now, WarnWindow: 60 * 24 * time.Hour})
	assert.Equal(t, []string{"━ A [going to expire on: 2025-07-16 00:00:00]"}, got)
}

func TestRender_Idempotent(t *testing.T) {
	forest := x509tree.Build([]x509tree.Record{
		{Subject: "B", Issuer: "A", Position: 1, Expiry: now.AddDate(0, 0, 5)},
		{Subject: "C", Issuer: "A", Position: 2, Expiry: now.AddDate(2, 0, 0)},
		{Subject: "D", Issuer: "C", Position: 3, Expiry: now.AddDate(0, 0, -5)},
	})
	opts := x509tree.Options{Now: now, ShowPosition: true, ShowExpiry: true}

	first := x509tree.Render(forest, opts)
	second := x509tree.Render(forest, opts)
	assert.Equal(t, first, second, "rendering the same forest twice must produce identical output")

	var buf1, buf2 bytes.Buffer
	require.NoError(t, x509tree.WriteTree(&buf1, forest, opts))
	require.NoError(t, x509tree.WriteTree(&buf2, forest, opts))
	assert.Equal(t, buf1.Bytes(), buf2.Bytes())
}

func TestWriteTree(t *testing.T) {
	forest := x509tree.Build(records([2]string{"A", "A"}, [2]string{"B", "A"}))

	var buf bytes.Buffer
	require.NoError(t, x509tree.WriteTree(&buf, forest, x509tree.Options{Now: now}))
	assert.Equal(t, "━ A\n    ┗━ B\n", buf.String())

	buf.Reset()
	require.NoError(t, x509tree.WriteTree(&buf, nil, x509tree.Options{Now: now}))
	assert.Empty(t, buf.String(), "empty forest writes nothing")
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestWriteTree_WriterError(t *testing.T) {
	forest := x509tree.Build(records([2]string{"A", "A"}))
	errBroken := errors.New("broken pipe")

	err := x509tree.WriteTree(failingWriter{err: errBroken}, forest, x509tree.Options{Now: now})
	assert.ErrorIs(t, err, errBroken)
}

func TestStatus(t *testing.T) {
	opts := x509tree.Options{Now: now}

	tests := []struct {
		name string
		node *x509tree.Node
		want x509tree.ExpiryStatus
	}{
		{"Placeholder", &x509tree.Node{Subject: "A", Placeholder: true}, x509tree.StatusMissing},
		{"Unknown Expiry", &x509tree.Node{Subject: "A"}, x509tree.StatusUnknown},
		{"Expired", &x509tree.Node{Subject: "A", Expiry: now.Add(-time.Hour)}, x509tree.StatusExpired},
		{"Expiring", &x509tree.Node{Subject: "A", Expiry: now.Add(time.Hour)}, x509tree.StatusExpiring},
		{"Valid", &x509tree.Node{Subject: "A", Expiry: now.AddDate(1, 0, 0)}, x509tree.StatusValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, x509tree.Status(tt.node, opts))
		})
	}
}
