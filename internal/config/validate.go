package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateImaging(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateImaging() error {
	if c.Imaging.ThumbnailMaxEdge >= c.Imaging.PreviewMaxEdge {
		return fmt.Errorf("imaging.thumbnail_max_edge (%d) must be smaller than imaging.preview_max_edge (%d)",
			c.Imaging.ThumbnailMaxEdge, c.Imaging.PreviewMaxEdge)
	}
	if c.Imaging.DecodeWorkers > 64 {
		return errors.New("imaging.decode_workers must be 64 or fewer")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug/info/warn/error, got %q", c.Logging.Level)
	}
	return nil
}
