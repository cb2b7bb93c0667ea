package fileloader

import (
	"strings"
)

// compressionExtensions maps compression extensions to their CompressionType
var compressionExtensions = map[string]CompressionType{
	".gz":  CompressionGzip,
	".bz2": CompressionBzip2,
	".xz":  CompressionXZ,
}

// DetectFileTypeAndCompression determines both the file type and compression type.
// It first checks for double extensions (e.g., .txt.gz) and falls back to magic byte
// detection on data when no compression extension is present.
func DetectFileTypeAndCompression(filePath string, data []byte) (FileType, CompressionType) {
	if filePath == "" {
		return FileTypeUnknown, CompressionNone
	}

	lower := strings.ToLower(filePath)

	compressionType := CompressionNone
	innerPath := lower

	for ext, ct := range compressionExtensions {
		if strings.HasSuffix(lower, ext) {
			compressionType = ct
			innerPath = strings.TrimSuffix(lower, ext)
			break
		}
	}

	if compressionType == CompressionNone {
		if magicType := DetectCompressionByMagic(data); magicType != CompressionNone {
			// Without an inner extension we cannot tell what was compressed
			return FileTypeDelimited, magicType
		}
	}

	return detectFileTypeFromPath(innerPath), compressionType
}

// detectFileTypeFromPath determines file type from a lower-cased path without compression extension
func detectFileTypeFromPath(path string) FileType {
	if strings.HasSuffix(path, ".xlsx") {
		return FileTypeXLSX
	}
	return FileTypeDelimited
}
