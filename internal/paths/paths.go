// Package paths holds the extension's asset-path conventions.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	DirPerm  = 0755
	FilePerm = 0644
)

// IconsDir is the directory the extension manifest points its icon
// entries at, relative to the repository root.
var IconsDir = filepath.Join("assets", "icons")

// IconFileName returns the manifest naming convention for one icon size,
// e.g. IconFileName(16) == "icon16.png".
func IconFileName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
