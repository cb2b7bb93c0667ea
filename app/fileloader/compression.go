package fileloader

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
)

// CompressionType represents the compression format of a file
type CompressionType int

const (
	CompressionNone CompressionType = iota
	CompressionGzip
	CompressionBzip2
	CompressionXZ
)

// String returns the string representation of CompressionType
func (ct CompressionType) String() string {
	switch ct {
	case CompressionGzip:
		return "gzip"
	case CompressionBzip2:
		return "bzip2"
	case CompressionXZ:
		return "xz"
	default:
		return "none"
	}
}

// Magic byte signatures for compression detection
var (
	// Gzip magic bytes: 1f 8b
	gzipMagic = []byte{0x1f, 0x8b}
	// Bzip2 magic bytes: 42 5a 68 ("BZh")
	bzip2Magic = []byte{0x42, 0x5a, 0x68}
	// XZ magic bytes: fd 37 7a 58 5a 00
	xzMagic = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}
)

// DetectCompressionByMagic inspects the leading bytes of data
func DetectCompressionByMagic(data []byte) CompressionType {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		return CompressionGzip
	case bytes.HasPrefix(data, bzip2Magic):
		return CompressionBzip2
	case bytes.HasPrefix(data, xzMagic):
		return CompressionXZ
	default:
		return CompressionNone
	}
}

// Decompress decodes data compressed with compressionType.
// A stream that ends early or fails its checksum is an error; partial output is never returned.
func Decompress(data []byte, compressionType CompressionType) ([]byte, error) {
	if compressionType == CompressionNone {
		return data, nil
	}

	var reader io.Reader
	src := bytes.NewReader(data)

	switch compressionType {
	case CompressionGzip:
		gzReader, err := gzip.NewReader(src)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzReader.Close()
		reader = gzReader

	case CompressionBzip2:
		reader = bzip2.NewReader(src)

	case CompressionXZ:
		xzReader, err := xz.NewReader(src)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		reader = xzReader

	default:
		return nil, fmt.Errorf("unsupported compression type: %v", compressionType)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, fmt.Errorf("decompression failed: %w", err)
	}
	return buf.Bytes(), nil
}
