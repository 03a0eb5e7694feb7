package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/metagraph-io/twbmeta/pkg/twbmeta"
)

func writeWorkbook(t *testing.T, dir, name, version string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := `<workbook version='` + version + `'><worksheets><worksheet name='S' /></worksheets></workbook>`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeWorkbook(t, dir, "first.twb", "18.1"),
		filepath.Join(dir, "missing.twb"),
		writeWorkbook(t, dir, "third.twb", "18.1"),
	}

	results, err := Run(context.Background(), paths, twbmeta.DefaultOptions(), 2)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(results) != len(paths) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(paths))
	}

	for i, res := range results {
		if res.Path != paths[i] {
			t.Errorf("results[%d].Path = %q, want %q (input order)", i, res.Path, paths[i])
		}
		if res.JobID == uuid.Nil {
			t.Errorf("results[%d] has no job id", i)
		}
	}

	if results[0].Err != nil || results[2].Err != nil {
		t.Errorf("valid files failed: %v, %v", results[0].Err, results[2].Err)
	}
	if results[0].Workbook == nil || results[0].Workbook.Name != "first" {
		t.Errorf("results[0].Workbook = %+v", results[0].Workbook)
	}

	// One bad file never takes the batch down.
	if !errors.Is(results[1].Err, twbmeta.ErrFileNotFound) {
		t.Errorf("results[1].Err = %v, want ErrFileNotFound", results[1].Err)
	}
	if results[1].Workbook != nil {
		t.Error("failed file produced a workbook")
	}
}

func TestRunEmpty(t *testing.T) {
	results, err := Run(context.Background(), nil, twbmeta.DefaultOptions(), 1)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}

func TestRunDefaultWorkerCount(t *testing.T) {
	dir := t.TempDir()
	paths := []string{writeWorkbook(t, dir, "only.twb", "18.1")}

	results, err := Run(context.Background(), paths, twbmeta.DefaultOptions(), 0)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if results[0].Err != nil {
		t.Errorf("results[0].Err = %v", results[0].Err)
	}
}
