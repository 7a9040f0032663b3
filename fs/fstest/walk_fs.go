package fstest

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/cjdinger/lint-sasjs/fs"
)

// TestWalkFS tests that Walk visits every entry in lexical order and
// honours filepath.SkipDir.
func TestWalkFS(t *testing.T, filesystem fs.Filesystem, root string) {
	base := filepath.Join(root, "walk")
	for _, name := range []string{"b.sas", "a/x.sas", "a/skip/y.sas", "c/z.sas"} {
		path := filepath.Join(base, filepath.FromSlash(name))
		if err := filesystem.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("MkdirAll(%q): setup failed: %v", filepath.Dir(path), err)
		}
		if err := filesystem.WriteFile(path, []byte(name), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): setup failed: %v", path, err)
		}
	}

	var files []string
	err := filesystem.Walk(base, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() && info.Name() == "skip" {
			return filepath.SkipDir
		}
		if !info.IsDir() {
			rel, relErr := filepath.Rel(base, path)
			if relErr != nil {
				return relErr
			}
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk(%q): got error %v, want nil", base, err)
	}

	want := []string{"a/x.sas", "b.sas", "c/z.sas"}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("Walk(%q): visited %v, want %v", base, files, want)
	}
}
