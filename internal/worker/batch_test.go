package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/medpipe/draftgate/internal/model"
)

// fakeReviewer releases every bundle except those named bad*.
type fakeReviewer struct{}

func (r *fakeReviewer) ReviewBundle(ctx context.Context, path string) (*model.Report, error) {
	base := filepath.Base(path)
	if len(base) >= 3 && base[:3] == "bad" {
		return nil, fmt.Errorf("broken bundle %s", base)
	}
	return &model.Report{RunID: base, Released: true}, nil
}

func TestProcessPaths(t *testing.T) {
	b := NewBatchProcessor(&fakeReviewer{}, 3)

	paths := []string{"a.yaml", "b.yaml", "bad.yaml", "c.yaml"}
	results := b.ProcessPaths(context.Background(), paths)
	if len(results) != len(paths) {
		t.Fatalf("got %d results, want %d", len(results), len(paths))
	}

	var ok, failed []string
	for _, result := range results {
		if result.Error != nil {
			failed = append(failed, result.Path)
			continue
		}
		ok = append(ok, result.Path)
		if result.Report == nil || !result.Report.Released {
			t.Errorf("result %s = %+v", result.Path, result.Report)
		}
	}
	sort.Strings(ok)
	if !reflect.DeepEqual(ok, []string{"a.yaml", "b.yaml", "c.yaml"}) {
		t.Errorf("succeeded = %v", ok)
	}
	if !reflect.DeepEqual(failed, []string{"bad.yaml"}) {
		t.Errorf("failed = %v", failed)
	}
}

func TestProcessPathsEmpty(t *testing.T) {
	b := NewBatchProcessor(&fakeReviewer{}, 2)
	if results := b.ProcessPaths(context.Background(), nil); len(results) != 0 {
		t.Errorf("results = %+v", results)
	}
}

func TestReadPathsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.txt")
	content := "# reviewed bundles\nfirst.yaml\n\nsecond.yaml\nfirst.yaml\n  third.yaml  \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	paths, err := ReadPathsFromFile(path)
	if err != nil {
		t.Fatalf("ReadPathsFromFile: %v", err)
	}
	want := []string{"first.yaml", "second.yaml", "third.yaml"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}

func TestReadPathsFromFileMissing(t *testing.T) {
	if _, err := ReadPathsFromFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Errorf("expected error")
	}
}

func TestProcessFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.txt")
	if err := os.WriteFile(path, []byte("a.yaml\nbad.yaml\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	b := NewBatchProcessor(&fakeReviewer{}, 2)
	results, err := b.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("got %d results", len(results))
	}
}
