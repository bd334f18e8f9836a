package config

import "path/filepath"

const (
	DefaultFont        = "basic"
	DefaultJPEGQuality = 75

	// OutputFile is where the backend expects the fallback candidate photo.
	OutputFile = "public/uploads/default-candidate.jpg"
)

type Config struct {
	WorkspaceRoot string `yaml:"workspace_root"`
	Font          string `yaml:"font"`
	JPEGQuality   int    `yaml:"jpeg_quality"`
}

func (c *Config) OutputPath() string {
	return filepath.Join(c.WorkspaceRoot, filepath.FromSlash(OutputFile))
}
