package files

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

type localFileManager struct {
	perm os.FileMode
}

func NewLocalFileManager() FileManager {
	return &localFileManager{perm: 0644}
}

// SaveJPEG encodes into a pending file next to path and renames it into
// place. The target directory must already exist.
func (fm *localFileManager) SaveJPEG(path string, img image.Image, quality int) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("output directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output directory %s is not a directory", dir)
	}

	pf, err := renameio.NewPendingFile(path, renameio.WithStaticPermissions(fm.perm))
	if err != nil {
		return fmt.Errorf("failed to create pending file: %w", err)
	}
	defer pf.Cleanup()

	if err := jpeg.Encode(pf, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("failed to encode jpeg: %w", err)
	}

	if err := pf.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
