package bundle

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testFiles() map[string][]byte {
	return map[string][]byte{
		"palette.html": []byte("<html></html>"),
		"palette.json": []byte(`{"count":2}`),
		"palette.css":  []byte(":root {}"),
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "out/palettes.tar.gz", want: FormatTarGz},
		{path: "palettes.TGZ", want: FormatTarGz},
		{path: "palettes.tar.xz", want: FormatTarXz},
		{path: "palettes.txz", want: FormatTarXz},
		{path: "palettes.zip", want: FormatZip},
		{path: "palettes.tar.bz2", wantErr: true},
		{path: "palettes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestWriteRead(t *testing.T) {
	for _, format := range []Format{FormatTarGz, FormatTarXz, FormatZip} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, format, testFiles()); err != nil {
				t.Fatalf("Write() error: %v", err)
			}

			got, err := Read(buf.Bytes(), format)
			if err != nil {
				t.Fatalf("Read() error: %v", err)
			}
			if diff := cmp.Diff(testFiles(), got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteFileAndReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palettes.tar.xz")
	if err := WriteFile(path, testFiles(), nil); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	entries, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	want := []Entry{
		{Name: "palette.css", Size: 8},
		{Name: "palette.html", Size: 13},
		{Name: "palette.json", Size: 11},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteErrors(t *testing.T) {
	var buf bytes.Buffer

	if err := Write(&buf, FormatZip, nil); err == nil {
		t.Error("expected error for empty file set")
	}
	if err := Write(&buf, FormatZip, map[string][]byte{"../evil": nil}); err == nil {
		t.Error("expected error for traversal entry")
	}
	if err := Write(&buf, Format("rar"), testFiles()); err == nil {
		t.Error("expected error for unknown format")
	}
	if err := WriteFile(filepath.Join(t.TempDir(), "out.rar"), testFiles(), nil); err == nil {
		t.Error("expected error for unknown extension")
	}
}

func TestReadCorrupt(t *testing.T) {
	for _, format := range []Format{FormatTarGz, FormatTarXz, FormatZip} {
		if _, err := Read([]byte("not an archive"), format); err == nil {
			t.Errorf("Read(%s) expected error for corrupt data", format)
		}
	}
}

func setLimits(t *testing.T, entrySize, totalSize int64, entries int) {
	t.Helper()
	origEntry, origTotal, origEntries := maxEntrySize, maxTotalSize, maxEntries
	t.Cleanup(func() { maxEntrySize, maxTotalSize, maxEntries = origEntry, origTotal, origEntries })
	maxEntrySize, maxTotalSize, maxEntries = entrySize, totalSize, entries
}

func TestReadLimits(t *testing.T) {
	files := make(map[string][]byte)
	for i := range 3 {
		files[fmt.Sprintf("part-%d.txt", i)] = bytes.Repeat([]byte("x"), 40)
	}

	tests := []struct {
		name      string
		entrySize int64
		totalSize int64
		entries   int
		wantErr   string
	}{
		{name: "within limits", entrySize: 64, totalSize: 1024, entries: 10},
		{name: "entry too large", entrySize: 16, totalSize: 1024, entries: 10, wantErr: "failed to read"},
		{name: "total too large", entrySize: 64, totalSize: 100, entries: 10, wantErr: "expands beyond 100 bytes"},
		{name: "too many entries", entrySize: 64, totalSize: 1024, entries: 2, wantErr: "entries"},
	}

	for _, format := range []Format{FormatTarGz, FormatTarXz, FormatZip} {
		var buf bytes.Buffer
		if err := Write(&buf, format, files); err != nil {
			t.Fatalf("Write(%s) error: %v", format, err)
		}

		for _, tt := range tests {
			t.Run(string(format)+"/"+tt.name, func(t *testing.T) {
				setLimits(t, tt.entrySize, tt.totalSize, tt.entries)

				got, err := Read(buf.Bytes(), format)
				if tt.wantErr == "" {
					if err != nil || len(got) != 3 {
						t.Errorf("Read() = %d files, %v", len(got), err)
					}
					return
				}
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("Read() error = %v, want it to mention %q", err, tt.wantErr)
				}
			})
		}
	}
}

func TestReadFileTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.zip")
	if err := os.WriteFile(path, bytes.Repeat([]byte("z"), 200), 0o600); err != nil {
		t.Fatal(err)
	}
	setLimits(t, 64, 100, 10)

	if _, err := ReadFile(path); err == nil || !strings.Contains(err.Error(), "larger than 100 bytes") {
		t.Errorf("ReadFile() error = %v", err)
	}
}
