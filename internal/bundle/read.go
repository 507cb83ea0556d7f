package bundle

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/devpalette/internal/security"
)

// Read unpacks an archive held in memory. Entry names are validated against
// directory traversal; the entry count, each entry and the expanded total are
// size limited.
func Read(data []byte, format Format) (map[string][]byte, error) {
	switch format {
	case FormatTarGz:
		gzr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzr.Close()
		return readTar(gzr)

	case FormatTarXz:
		xzr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return readTar(xzr)

	case FormatZip:
		return readZip(data)
	}

	return nil, fmt.Errorf("unsupported bundle format %q", format)
}

func readTar(r io.Reader) (map[string][]byte, error) {
	tr := tar.NewReader(r)
	files := make(map[string][]byte)
	b := newBudget()

	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return files, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read tar archive: %w", err)
		}

		if header.Typeflag == tar.TypeDir {
			continue
		}

		content, err := b.readEntry(header.Name, tr)
		if err != nil {
			return nil, err
		}
		files[header.Name] = content
	}
}

func readZip(data []byte) (map[string][]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to create zip reader: %w", err)
	}

	if len(zr.File) > maxEntries {
		return nil, fmt.Errorf("archive has %d entries (limit %d)", len(zr.File), maxEntries)
	}

	files := make(map[string][]byte, len(zr.File))
	b := newBudget()
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s in archive: %w", f.Name, err)
		}
		content, readErr := b.readEntry(f.Name, rc)
		closeErr := rc.Close()

		if readErr != nil {
			return nil, readErr
		}
		if closeErr != nil {
			return nil, fmt.Errorf("failed to close %s: %w", f.Name, closeErr)
		}
		files[f.Name] = content
	}
	return files, nil
}

// budget tracks what is left of the read limits across one archive.
type budget struct {
	remaining int64
	entries   int
}

func newBudget() *budget {
	return &budget{remaining: maxTotalSize}
}

func (b *budget) readEntry(name string, r io.Reader) ([]byte, error) {
	if err := security.ValidateFileName(name); err != nil {
		return nil, fmt.Errorf("invalid archive entry %q: %w", name, err)
	}

	b.entries++
	if b.entries > maxEntries {
		return nil, fmt.Errorf("archive has more than %d entries", maxEntries)
	}

	limit := min(maxEntrySize, b.remaining)
	content, err := io.ReadAll(security.NewLimitedReader(r, limit))
	if err != nil {
		if limit < maxEntrySize {
			return nil, fmt.Errorf("archive expands beyond %d bytes at %s: %w", maxTotalSize, name, err)
		}
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	b.remaining -= int64(len(content))
	return content, nil
}
