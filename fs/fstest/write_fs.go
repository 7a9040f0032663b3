package fstest

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/cjdinger/lint-sasjs/fs"
)

// TestWriteFS tests WriteFile and MkdirAll.
func TestWriteFS(t *testing.T, filesystem fs.Filesystem, root string) {
	t.Run("WriteFile", func(t *testing.T) {
		path := filepath.Join(root, "write.sas")
		if err := filesystem.WriteFile(path, []byte("first"), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): got error %v, want nil", path, err)
		}
		if err := filesystem.WriteFile(path, []byte("second"), 0o644); err != nil {
			t.Fatalf("WriteFile(%q) overwrite: got error %v, want nil", path, err)
		}

		data, err := filesystem.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile(%q): got error %v, want nil", path, err)
		}
		if !bytes.Equal(data, []byte("second")) {
			t.Errorf("ReadFile(%q) after overwrite: got %q, want %q", path, data, "second")
		}
	})

	t.Run("MkdirAll", func(t *testing.T) {
		deep := filepath.Join(root, "a", "b", "c")
		if err := filesystem.MkdirAll(deep, 0o755); err != nil {
			t.Fatalf("MkdirAll(%q): got error %v, want nil", deep, err)
		}
		if err := filesystem.MkdirAll(deep, 0o755); err != nil {
			t.Errorf("MkdirAll(%q) existing: got error %v, want nil", deep, err)
		}

		info, err := filesystem.Stat(filepath.Join(root, "a", "b"))
		if err != nil {
			t.Fatalf("Stat: got error %v, want nil", err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(a/b).IsDir(): got false, want true")
		}
	})
}

// TestManageFS tests Rename, Remove and RemoveAll.
func TestManageFS(t *testing.T, filesystem fs.Filesystem, root string) {
	t.Run("Rename", func(t *testing.T) {
		from := filepath.Join(root, "from.sas")
		to := filepath.Join(root, "to.sas")
		if err := filesystem.WriteFile(from, []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): setup failed: %v", from, err)
		}

		if err := filesystem.Rename(from, to); err != nil {
			t.Fatalf("Rename(%q, %q): got error %v, want nil", from, to, err)
		}
		if ok, _ := filesystem.Exists(from); ok {
			t.Errorf("Exists(%q) after rename: got true, want false", from)
		}
		if ok, _ := filesystem.Exists(to); !ok {
			t.Errorf("Exists(%q) after rename: got false, want true", to)
		}
	})

	t.Run("RenameReplaces", func(t *testing.T) {
		tmp := filepath.Join(root, "entry.tmp")
		target := filepath.Join(root, "entry.mp")
		if err := filesystem.WriteFile(target, []byte("old"), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): setup failed: %v", target, err)
		}
		if err := filesystem.WriteFile(tmp, []byte("new"), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): setup failed: %v", tmp, err)
		}

		if err := filesystem.Rename(tmp, target); err != nil {
			t.Fatalf("Rename(%q, %q): got error %v, want nil", tmp, target, err)
		}
		data, err := filesystem.ReadFile(target)
		if err != nil {
			t.Fatalf("ReadFile(%q): got error %v, want nil", target, err)
		}
		if string(data) != "new" {
			t.Errorf("ReadFile(%q): got %q, want %q", target, data, "new")
		}
	})

	t.Run("Remove", func(t *testing.T) {
		path := filepath.Join(root, "remove.sas")
		if err := filesystem.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): setup failed: %v", path, err)
		}
		if err := filesystem.Remove(path); err != nil {
			t.Fatalf("Remove(%q): got error %v, want nil", path, err)
		}
		if ok, err := filesystem.Exists(path); err != nil || ok {
			t.Errorf("Exists(%q): got %v, %v; want false, nil", path, ok, err)
		}
	})

	t.Run("RemoveAll", func(t *testing.T) {
		dir := filepath.Join(root, "tree")
		if err := filesystem.MkdirAll(filepath.Join(dir, "x", "y"), 0o755); err != nil {
			t.Fatalf("MkdirAll: setup failed: %v", err)
		}
		if err := filesystem.WriteFile(filepath.Join(dir, "x", "y", "z.sas"), []byte("z"), 0o644); err != nil {
			t.Fatalf("WriteFile: setup failed: %v", err)
		}

		if err := filesystem.RemoveAll(dir); err != nil {
			t.Fatalf("RemoveAll(%q): got error %v, want nil", dir, err)
		}
		if ok, _ := filesystem.Exists(dir); ok {
			t.Errorf("Exists(%q) after RemoveAll: got true, want false", dir)
		}
	})
}
