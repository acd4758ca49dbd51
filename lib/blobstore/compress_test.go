// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blobstore

import (
	"bytes"
	"strings"
	"testing"
)

func TestSelectCompression(t *testing.T) {
	repetitive := []byte(strings.Repeat("0123456789", 500))
	tests := []struct {
		name        string
		data        []byte
		contentType string
		want        Compression
	}{
		{"empty", nil, "text/plain", CompressionNone},
		{"textual skips probe", []byte("x"), "application/json", CompressionZstd},
		{"textual with charset", []byte("x"), "text/csv; charset=utf-8", CompressionZstd},
		{"compressible binary", repetitive, "application/octet-stream", CompressionZstd},
		{"random binary", randomBytes(4096), "image/png", CompressionNone},
	}
	for _, test := range tests {
		if got := SelectCompression(test.data, test.contentType); got != test.want {
			t.Errorf("%s: SelectCompression = %s, want %s", test.name, got, test.want)
		}
	}
}

func TestCompressDecompress(t *testing.T) {
	data := []byte(strings.Repeat("blobkit ", 2000))
	for _, policy := range []Compression{CompressionNone, CompressionLZ4, CompressionZstd, CompressionAuto} {
		body, used, err := compress(data, "", policy)
		if err != nil {
			t.Fatalf("%s: compress: %v", policy, err)
		}
		if used != CompressionNone && len(body) >= len(data) {
			t.Errorf("%s: body not smaller (%d >= %d)", policy, len(body), len(data))
		}
		restored, err := decompress(body, used, int64(len(data)))
		if err != nil {
			t.Fatalf("%s: decompress: %v", policy, err)
		}
		if !bytes.Equal(restored, data) {
			t.Errorf("%s: round trip changed data", policy)
		}
	}
}

func TestDecompressSizeMismatch(t *testing.T) {
	data := []byte(strings.Repeat("z", 4096))
	body, used, err := compress(data, "", CompressionZstd)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := decompress(body, used, int64(len(data)+1)); err == nil {
		t.Error("decompress accepted the wrong size")
	}
	if _, err := decompress([]byte("abc"), CompressionNone, 4); err == nil {
		t.Error("uncompressed size mismatch not detected")
	}
	if _, err := decompress(body, "brotli", int64(len(data))); err == nil {
		t.Error("unknown algorithm accepted")
	}
}

func TestParseCompression(t *testing.T) {
	for _, name := range []string{"auto", "none", "lz4", "zstd"} {
		if got, err := ParseCompression(name); err != nil || string(got) != name {
			t.Errorf("ParseCompression(%q) = %q, %v", name, got, err)
		}
	}
	if got, err := ParseCompression(""); err != nil || got != CompressionAuto {
		t.Errorf("empty policy = %q, %v; want auto", got, err)
	}
	if _, err := ParseCompression("gzip"); err == nil {
		t.Error("ParseCompression accepted gzip")
	}
}
