package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeScan()
	c.normalizeImaging()
	c.normalizeTags()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeScan() {
	cleaned := make([]string, 0, len(c.Scan.Extensions))
	for _, ext := range c.Scan.Extensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext == "" {
			continue
		}
		cleaned = append(cleaned, ext)
	}
	if len(cleaned) == 0 {
		cleaned = defaultExtensions()
	}
	c.Scan.Extensions = cleaned
}

func (c *Config) normalizeImaging() {
	if c.Imaging.ThumbnailMaxEdge <= 0 {
		c.Imaging.ThumbnailMaxEdge = defaultThumbnailMaxEdge
	}
	if c.Imaging.PreviewMaxEdge <= 0 {
		c.Imaging.PreviewMaxEdge = defaultPreviewMaxEdge
	}
	if c.Imaging.DecodeWorkers <= 0 {
		c.Imaging.DecodeWorkers = defaultDecodeWorkers
	}
}

func (c *Config) normalizeTags() {
	c.Tags.Attribute = strings.TrimSpace(c.Tags.Attribute)
	if c.Tags.Attribute == "" {
		c.Tags.Attribute = defaultTagAttribute
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
