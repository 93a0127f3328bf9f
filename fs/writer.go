// Package fs writes downloaded images to the local filesystem under
// the archival naming scheme.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Writer writes images beneath a base directory. The relative path is
// produced by the crawl runner from the item's metadata; Writer only
// materializes it.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer rooted at baseDir.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteImage writes data to baseDir/relPath, creating parent
// directories as needed. The file is written to a temporary name and
// renamed into place so a failed write never leaves a truncated image
// behind.
func (w *Writer) WriteImage(ctx context.Context, relPath string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dest := filepath.Join(w.baseDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmp := dest + ".part"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename image: %w", err)
	}
	return nil
}
