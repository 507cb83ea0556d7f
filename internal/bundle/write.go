package bundle

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"time"

	"github.com/ulikunitz/xz"
)

// Write packs files into w using format. Entries are written in name order.
func Write(w io.Writer, format Format, files map[string][]byte) error {
	if err := validateNames(files); err != nil {
		return err
	}

	switch format {
	case FormatTarGz:
		gzw := gzip.NewWriter(w)
		if err := writeTar(gzw, files); err != nil {
			return err
		}
		if err := gzw.Close(); err != nil {
			return fmt.Errorf("failed to finish gzip stream: %w", err)
		}
		return nil

	case FormatTarXz:
		xzw, err := xz.NewWriter(w)
		if err != nil {
			return fmt.Errorf("failed to create xz writer: %w", err)
		}
		if err := writeTar(xzw, files); err != nil {
			return err
		}
		if err := xzw.Close(); err != nil {
			return fmt.Errorf("failed to finish xz stream: %w", err)
		}
		return nil

	case FormatZip:
		return writeZip(w, files)
	}

	return fmt.Errorf("unsupported bundle format %q", format)
}

func writeTar(w io.Writer, files map[string][]byte) error {
	tw := tar.NewWriter(w)
	modTime := time.Now()

	for _, name := range sortedNames(files) {
		data := files[name]
		header := &tar.Header{
			Name:    name,
			Mode:    0o644,
			Size:    int64(len(data)),
			ModTime: modTime,
		}
		if err := tw.WriteHeader(header); err != nil {
			return fmt.Errorf("failed to write tar header for %s: %w", name, err)
		}
		if _, err := tw.Write(data); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to finish tar archive: %w", err)
	}
	return nil
}

func writeZip(w io.Writer, files map[string][]byte) error {
	zw := zip.NewWriter(w)
	modTime := time.Now()

	for _, name := range sortedNames(files) {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     name,
			Method:   zip.Deflate,
			Modified: modTime,
		})
		if err != nil {
			return fmt.Errorf("failed to add %s to zip: %w", name, err)
		}
		if _, err := fw.Write(files[name]); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish zip archive: %w", err)
	}
	return nil
}
