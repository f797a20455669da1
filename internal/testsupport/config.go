// Package testsupport provides fixtures shared by tests: canned configs,
// generated image files, and in-memory collaborator fakes.
package testsupport

import (
	"path/filepath"
	"testing"

	"shortlist/internal/config"
)

// NewConfig produces a config seeded with a unique temp log directory per
// test and small decode edges so fixture images stay tiny.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(t.TempDir(), "logs")
	cfg.Imaging.ThumbnailMaxEdge = 16
	cfg.Imaging.PreviewMaxEdge = 64
	cfg.Imaging.DecodeWorkers = 2
	return &cfg
}
