package fileloader

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/minio/highwayhash"
)

// FileHashKey is the fixed key used for source fingerprints, so the same
// bytes always hash to the same value across runs and machines.
var FileHashKey = []byte("finload source hash key\x00\x00\x00\x00\x00\x00\x00\x00\x00")

// HashBytes calculates a HighwayHash-256 of data using FileHashKey
func HashBytes(data []byte) (string, error) {
	hash, err := highwayhash.New(FileHashKey)
	if err != nil {
		return "", fmt.Errorf("failed to create hash: %w", err)
	}
	hash.Write(data)
	return hex.EncodeToString(hash.Sum(nil)), nil
}

// CalculateFileHash streams filePath through the same hash as HashBytes
func CalculateFileHash(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hash, err := highwayhash.New(FileHashKey)
	if err != nil {
		return "", fmt.Errorf("failed to create hash: %w", err)
	}

	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
