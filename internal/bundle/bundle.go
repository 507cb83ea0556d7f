// Package bundle packs rendered palette files into compressed archives.
package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/devpalette/internal/security"
)

// Read limits. Variables so tests can lower them.
var (
	// maxEntrySize bounds how much a single archive entry may expand to.
	maxEntrySize int64 = 32 * 1024 * 1024
	// maxTotalSize bounds the expanded size of all entries together, and the
	// size of the archive file itself.
	maxTotalSize int64 = 128 * 1024 * 1024
	// maxEntries bounds the number of entries read from one archive.
	maxEntries = 1024
)

// Format is an archive format.
type Format string

// Supported archive formats.
const (
	FormatTarGz Format = "tar.gz"
	FormatTarXz Format = "tar.xz"
	FormatZip   Format = "zip"
)

// Entry describes one file inside an archive.
type Entry struct {
	Name string
	Size int64
}

// FormatFromPath infers the archive format from a file name.
func FormatFromPath(path string) (Format, error) {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasSuffix(name, ".tar.gz"), strings.HasSuffix(name, ".tgz"):
		return FormatTarGz, nil
	case strings.HasSuffix(name, ".tar.xz"), strings.HasSuffix(name, ".txz"):
		return FormatTarXz, nil
	case strings.HasSuffix(name, ".zip"):
		return FormatZip, nil
	}
	return "", fmt.Errorf("unsupported bundle format for %q (use .tar.gz, .tar.xz or .zip)", path)
}

// WriteFile writes files to an archive at path, choosing the format from the
// extension.
func WriteFile(path string, files map[string][]byte, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	out, err := os.Create(path) // #nosec G304 - User-specified bundle path
	if err != nil {
		return fmt.Errorf("failed to create bundle: %w", err)
	}

	writeErr := Write(out, format, files)
	closeErr := out.Close()

	if writeErr != nil {
		return writeErr
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close bundle: %w", closeErr)
	}

	logger.Debug("wrote bundle", "path", path, "format", format, "files", len(files))
	return nil
}

// ReadFile lists the entries of the archive at path.
func ReadFile(path string) ([]Entry, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bundle: %w", err)
	}
	if info.Size() > maxTotalSize {
		return nil, fmt.Errorf("bundle %s is larger than %d bytes", path, maxTotalSize)
	}

	data, err := os.ReadFile(path) // #nosec G304 - User-specified bundle path
	if err != nil {
		return nil, fmt.Errorf("failed to read bundle: %w", err)
	}

	files, err := Read(data, format)
	if err != nil {
		return nil, err
	}
	return List(files), nil
}

// List returns the entries of a file set sorted by name.
func List(files map[string][]byte) []Entry {
	entries := make([]Entry, 0, len(files))
	for _, name := range sortedNames(files) {
		entries = append(entries, Entry{Name: name, Size: int64(len(files[name]))})
	}
	return entries
}

func sortedNames(files map[string][]byte) []string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validateNames(files map[string][]byte) error {
	if len(files) == 0 {
		return fmt.Errorf("no files to bundle")
	}
	for name := range files {
		if err := security.ValidateFileName(name); err != nil {
			return fmt.Errorf("invalid bundle entry %q: %w", name, err)
		}
	}
	return nil
}
