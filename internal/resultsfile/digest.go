// file: internal/resultsfile/digest.go
// version: 1.0.0
// guid: 2af59043-e8d4-4b68-b21b-969dbb6bbfcd

package resultsfile

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// Digest returns the SHA256 of the file at path, hex encoded. Callers compare
// digests to skip re-ranking when a write left the content unchanged.
func Digest(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open results file: %w", err)
	}
	defer file.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("failed to hash results file: %w", err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
