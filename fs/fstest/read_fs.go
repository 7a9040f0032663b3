package fstest

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cjdinger/lint-sasjs/fs"
)

// TestReadFS tests read-only operations: Exists, ReadFile, Stat.
func TestReadFS(t *testing.T, filesystem fs.Filesystem, root string) {
	testContent := []byte("%macro test();\n%mend test;\n")
	dir := filepath.Join(root, "testdir")
	file := filepath.Join(dir, "testfile.sas")

	if err := filesystem.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll(%q): setup failed: %v", dir, err)
	}
	if err := filesystem.WriteFile(file, testContent, 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", file, err)
	}

	t.Run("ReadFile", func(t *testing.T) {
		data, err := filesystem.ReadFile(file)
		if err != nil {
			t.Fatalf("ReadFile(%q): got error %v, want nil", file, err)
		}
		if !bytes.Equal(data, testContent) {
			t.Errorf("ReadFile(%q): got %q, want %q", file, data, testContent)
		}
	})

	t.Run("StatFile", func(t *testing.T) {
		info, err := filesystem.Stat(file)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", file, err)
		}
		if info.IsDir() {
			t.Errorf("Stat(%q).IsDir(): got true, want false", file)
		}
		if info.Size() != int64(len(testContent)) {
			t.Errorf("Stat(%q).Size(): got %d, want %d", file, info.Size(), len(testContent))
		}
	})

	t.Run("StatDir", func(t *testing.T) {
		info, err := filesystem.Stat(dir)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%q).IsDir(): got false, want true", dir)
		}
	})

	t.Run("ReadFileNotExist", func(t *testing.T) {
		missing := filepath.Join(root, "nonexistent.sas")
		_, err := filesystem.ReadFile(missing)
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("ReadFile(%q): got error %v, want os.ErrNotExist", missing, err)
		}
	})

	t.Run("Exists", func(t *testing.T) {
		for path, want := range map[string]bool{
			file:                            true,
			dir:                             true,
			filepath.Join(root, "nope.sas"): false,
			filepath.Join(dir, "nope", "x"): false,
		} {
			got, err := filesystem.Exists(path)
			if err != nil {
				t.Errorf("Exists(%q): got error %v, want nil", path, err)
				continue
			}
			if got != want {
				t.Errorf("Exists(%q): got %v, want %v", path, got, want)
			}
		}
	})
}
