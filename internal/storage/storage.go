// Package storage is the local blob store for uploaded files. Paths handed
// out are relative to the upload root; the root itself ("uploads" by default)
// never appears in stored records.
package storage

import (
	"encoding/base64"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store writes decoded base64 payloads under a fixed root directory
type Store struct {
	root string
}

// NewStore returns a Store rooted at dir
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// SaveBase64 decodes data (optionally a data URL with a "data:...;base64,"
// prefix) and writes it to relPath under the root, creating directories as
// needed.
func (s *Store) SaveBase64(relPath, data string) error {
	if idx := strings.Index(data, ";base64,"); strings.HasPrefix(data, "data:") && idx >= 0 {
		data = data[idx+len(";base64,"):]
	}

	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return fmt.Errorf("invalid base64 payload: %w", err)
	}

	// relPath embeds client-supplied names; a traversal sequence must never
	// resolve outside the root
	fullPath := filepath.Join(s.root, relPath)
	if !strings.HasPrefix(fullPath, filepath.Clean(s.root)+string(os.PathSeparator)) {
		return fmt.Errorf("file path escapes upload root: %s", relPath)
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return os.WriteFile(fullPath, decoded, 0o644)
}

// RequestFilePath builds the storage path for a request attachment:
// requests/<userID>/<timestamp>_<fileName>. The client name is reduced to its
// base component so it cannot carry directory parts.
func RequestFilePath(userID, fileName string) string {
	return filepath.ToSlash(filepath.Join("requests", userID, fmt.Sprintf("%d_%s", time.Now().UnixMilli(), filepath.Base(fileName))))
}

// DocumentFilePath builds the storage path for an employee document:
// documents/<employeeID>/<category>/<category>-<timestamp>-<random>.<ext>
func DocumentFilePath(employeeID, category, originalName string) string {
	ext := strings.TrimPrefix(filepath.Ext(filepath.Base(originalName)), ".")
	name := fmt.Sprintf("%s-%d-%d.%s", category, time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
	return filepath.ToSlash(filepath.Join("documents", employeeID, category, name))
}
