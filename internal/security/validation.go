// Package security provides path and size guards for files devpalette writes
// and reads back.
package security

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ValidateFileName validates a relative file name produced by a renderer or
// found in an archive, rejecting anything that could escape its directory.
func ValidateFileName(name string) error {
	if name == "" {
		return fmt.Errorf("empty file name")
	}

	// Check for dangerous patterns
	for _, part := range strings.Split(filepath.ToSlash(name), "/") {
		if part == ".." {
			return fmt.Errorf("file name contains directory traversal (..) - not allowed")
		}
	}

	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") {
		return fmt.Errorf("absolute paths are not allowed")
	}

	return nil
}

// SafeJoin joins name onto baseDir after validating it, and checks the result
// stays within baseDir.
func SafeJoin(baseDir, name string) (string, error) {
	if err := ValidateFileName(name); err != nil {
		return "", err
	}

	cleanBase := filepath.Clean(baseDir)
	cleanFinal := filepath.Join(cleanBase, name)

	rel, err := filepath.Rel(cleanBase, cleanFinal)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("file path would escape base directory")
	}

	return cleanFinal, nil
}

// LimitedReader wraps an io.Reader and limits the total bytes that can be read.
// This prevents decompression bomb attacks when reading archives.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		return 0, fmt.Errorf("decompression size limit exceeded")
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}
