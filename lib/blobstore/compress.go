// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blobstore

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/bureau-foundation/blobkit/lib/mimetype"
)

// Compression names the algorithm a stored body is compressed with.
// The names are written into metadata sidecars.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionLZ4  Compression = "lz4"
	CompressionZstd Compression = "zstd"

	// CompressionAuto is a store policy, never a stored value: pick
	// per blob with SelectCompression.
	CompressionAuto Compression = "auto"
)

// ParseCompression validates a configured compression policy.
func ParseCompression(name string) (Compression, error) {
	switch Compression(name) {
	case CompressionAuto, CompressionNone, CompressionLZ4, CompressionZstd:
		return Compression(name), nil
	case "":
		return CompressionAuto, nil
	}
	return "", fmt.Errorf("unknown compression %q (want auto, none, lz4, or zstd)", name)
}

var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("blobstore: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("blobstore: zstd decoder initialization failed: " + err.Error())
	}
}

// errIncompressible means the compressed form is not smaller than the
// input; the caller stores the data uncompressed.
var errIncompressible = errors.New("data is incompressible")

// SelectCompression picks an algorithm for data. Text-like types skip
// the probe and use zstd. Otherwise a zstd probe decides: a ratio of
// at least 1.5 selects zstd, at least 1.1 selects the faster lz4, and
// anything lower stores the data uncompressed.
func SelectCompression(data []byte, contentType string) Compression {
	if len(data) == 0 {
		return CompressionNone
	}
	if mimetype.IsTextual(contentType) {
		return CompressionZstd
	}

	compressed := zstdEncoder.EncodeAll(data, nil)
	ratio := float64(len(data)) / float64(len(compressed))
	switch {
	case ratio >= 1.5:
		return CompressionZstd
	case ratio >= 1.1:
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// compress applies policy to data and returns the body to store with
// the algorithm actually used. Incompressible data falls back to
// CompressionNone whatever the policy.
func compress(data []byte, contentType string, policy Compression) ([]byte, Compression, error) {
	algorithm := policy
	if algorithm == CompressionAuto {
		algorithm = SelectCompression(data, contentType)
	}

	var (
		compressed []byte
		err        error
	)
	switch algorithm {
	case CompressionNone:
		return data, CompressionNone, nil
	case CompressionLZ4:
		compressed, err = compressLZ4(data)
	case CompressionZstd:
		compressed, err = compressZstd(data)
	default:
		return nil, "", fmt.Errorf("unsupported compression %q", algorithm)
	}
	if errors.Is(err, errIncompressible) {
		return data, CompressionNone, nil
	}
	if err != nil {
		return nil, "", err
	}
	return compressed, algorithm, nil
}

// decompress reverses compress. The result must be exactly size bytes.
func decompress(body []byte, algorithm Compression, size int64) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch algorithm {
	case CompressionNone:
		data = body
	case CompressionLZ4:
		data = make([]byte, size)
		var read int
		read, err = lz4.UncompressBlock(body, data)
		data = data[:max(read, 0)]
	case CompressionZstd:
		data, err = zstdDecoder.DecodeAll(body, make([]byte, 0, size))
	default:
		return nil, fmt.Errorf("unsupported compression %q", algorithm)
	}
	if err != nil {
		return nil, fmt.Errorf("%s decompress: %w", algorithm, err)
	}
	if int64(len(data)) != size {
		return nil, fmt.Errorf("%s decompress: got %d bytes, expected %d", algorithm, len(data), size)
	}
	return data, nil
}

func compressLZ4(data []byte) ([]byte, error) {
	destination := make([]byte, lz4.CompressBlockBound(len(data)))
	written, err := lz4.CompressBlock(data, destination, nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	// CompressBlock reports 0 for data it cannot shrink.
	if written == 0 || written >= len(data) {
		return nil, errIncompressible
	}
	return destination[:written], nil
}

func compressZstd(data []byte) ([]byte, error) {
	compressed := zstdEncoder.EncodeAll(data, nil)
	if len(compressed) >= len(data) {
		return nil, errIncompressible
	}
	return compressed, nil
}
