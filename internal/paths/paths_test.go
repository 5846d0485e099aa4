package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIconFileName(t *testing.T) {
	tests := []struct {
		size int
		want string
	}{
		{16, "icon16.png"},
		{32, "icon32.png"},
		{48, "icon48.png"},
		{128, "icon128.png"},
	}
	for _, tt := range tests {
		if got := IconFileName(tt.size); got != tt.want {
			t.Errorf("IconFileName(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestAtomicWriteCreatesParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets", "icons", "icon16.png")
	if err := AtomicWrite(path, []byte("png")); err != nil {
		t.Fatalf("AtomicWrite: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "png" {
		t.Errorf("read back %q, want %q", got, "png")
	}
}

func TestAtomicWriteReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon32.png")
	if err := AtomicWrite(path, []byte("old")); err != nil {
		t.Fatalf("first AtomicWrite: %v", err)
	}
	if err := AtomicWrite(path, []byte("new")); err != nil {
		t.Fatalf("second AtomicWrite: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "new" {
		t.Errorf("read back %q, want %q", got, "new")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: stat err = %v", err)
	}
}
