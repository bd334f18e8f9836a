package files

import (
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
)

func uniformImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

func decodeSize(t *testing.T, path string) image.Point {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	cfg, err := jpeg.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return image.Pt(cfg.Width, cfg.Height)
}

func TestSaveJPEG(t *testing.T) {
	fm := NewLocalFileManager()

	t.Run("Creates File", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.jpg")

		if err := fm.SaveJPEG(path, uniformImage(40, 30, color.White), 75); err != nil {
			t.Fatalf("SaveJPEG failed: %v", err)
		}
		if got := decodeSize(t, path); got != image.Pt(40, 30) {
			t.Errorf("Expected 40x30, got %v", got)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 {
			t.Errorf("Expected only the output file, found %d entries", len(entries))
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0644 {
			t.Errorf("Expected mode 0644, got %v", info.Mode().Perm())
		}
	})

	t.Run("Overwrites Existing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.jpg")
		if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
			t.Fatal(err)
		}

		if err := fm.SaveJPEG(path, uniformImage(16, 16, color.Black), 75); err != nil {
			t.Fatalf("SaveJPEG failed: %v", err)
		}
		if got := decodeSize(t, path); got != image.Pt(16, 16) {
			t.Errorf("Expected 16x16, got %v", got)
		}
	})

	t.Run("Missing Directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "missing")
		path := filepath.Join(dir, "out.jpg")

		if err := fm.SaveJPEG(path, uniformImage(8, 8, color.White), 75); err == nil {
			t.Fatal("Expected error for missing directory")
		}
		if _, err := os.Stat(dir); !os.IsNotExist(err) {
			t.Errorf("Expected directory to stay missing, got %v", err)
		}
	})

	t.Run("Parent Is A File", func(t *testing.T) {
		parent := filepath.Join(t.TempDir(), "uploads")
		if err := os.WriteFile(parent, nil, 0644); err != nil {
			t.Fatal(err)
		}

		if err := fm.SaveJPEG(filepath.Join(parent, "out.jpg"), uniformImage(8, 8, color.White), 75); err == nil {
			t.Fatal("Expected error when parent is not a directory")
		}
	})

	t.Run("Encode Failure Keeps Existing", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.jpg")
		if err := os.WriteFile(path, []byte("old photo"), 0644); err != nil {
			t.Fatal(err)
		}

		// Wider than the JPEG encoder accepts.
		tooWide := image.NewRGBA(image.Rect(0, 0, 1<<16, 1))
		if err := fm.SaveJPEG(path, tooWide, 75); err == nil {
			t.Fatal("Expected encode error")
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "old photo" {
			t.Error("Expected existing file to be left untouched")
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 {
			t.Errorf("Expected pending file to be removed, found %d entries", len(entries))
		}
	})

	t.Run("Target Is A Directory", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "out.jpg")
		if err := os.Mkdir(target, 0755); err != nil {
			t.Fatal(err)
		}

		if err := fm.SaveJPEG(target, uniformImage(8, 8, color.White), 75); err == nil {
			t.Fatal("Expected error when target is a directory")
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 {
			t.Errorf("Expected temp file to be removed, found %d entries", len(entries))
		}
	})
}
