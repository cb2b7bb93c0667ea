package fileloader

import (
	"fmt"
	"os"
)

// ReadTable reads filePath once and returns its header and records.
// The file type and compression are detected from the path and content;
// compressed files are decompressed in memory before parsing.
func ReadTable(filePath string, options FileOptions) (*RawTable, error) {
	if filePath == "" {
		return nil, fmt.Errorf("file path is empty")
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	hash, err := HashBytes(data)
	if err != nil {
		return nil, err
	}

	fileType, compression := DetectFileTypeAndCompression(filePath, data)

	if compression != CompressionNone {
		data, err = Decompress(data, compression)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress %s file: %w", compression, err)
		}
	}

	table, err := readTableFromBytes(data, fileType, options)
	if err != nil {
		return nil, err
	}

	table.Hash = hash
	return table, nil
}

// readTableFromBytes dispatches to the format-specific reader
func readTableFromBytes(data []byte, fileType FileType, options FileOptions) (*RawTable, error) {
	switch fileType {
	case FileTypeDelimited:
		return ReadCSVFromBytes(data, options)
	case FileTypeXLSX:
		return ReadXLSXFromBytes(data, options)
	default:
		return nil, fmt.Errorf("unknown file type: %v", fileType)
	}
}
