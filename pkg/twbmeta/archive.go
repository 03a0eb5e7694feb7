package twbmeta

import (
	"archive/zip"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ReadPackagedWorkbook opens a packaged workbook (.twbx, a zip archive) and
// returns the raw bytes of its inner .twb document. When the archive holds
// several .twb entries, the one matching the archive's file stem is
// preferred, otherwise the first entry wins.
//
// This is the archive-unpack boundary: extraction itself never touches the
// filesystem and operates on the returned bytes only.
func ReadPackagedWorkbook(path string) ([]byte, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open packaged workbook: %w", err)
	}
	defer r.Close()

	entry := findWorkbookEntry(&r.Reader, workbookStem(path))
	if entry == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoWorkbookEntry, path)
	}

	f, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("open archive entry %s: %w", entry.Name, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read archive entry %s: %w", entry.Name, err)
	}
	return data, nil
}

func findWorkbookEntry(r *zip.Reader, stem string) *zip.File {
	var first *zip.File
	preferred := stem + ".twb"
	for _, f := range r.File {
		if !strings.HasSuffix(strings.ToLower(f.Name), ".twb") {
			continue
		}
		if first == nil {
			first = f
		}
		if strings.HasSuffix(f.Name, preferred) {
			return f
		}
	}
	return first
}

// workbookStem returns the file name without directory or extension.
func workbookStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
