package config

const (
	defaultLogDir           = "~/.local/share/shortlist/logs"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultThumbnailMaxEdge = 256
	defaultPreviewMaxEdge   = 2048
	defaultDecodeWorkers    = 4
	defaultTagAttribute     = "user.shortlist.label"
)

func defaultExtensions() []string {
	return []string{"jpg", "jpeg", "png", "gif"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Scan: Scan{
			Extensions: defaultExtensions(),
		},
		Imaging: Imaging{
			ThumbnailMaxEdge: defaultThumbnailMaxEdge,
			PreviewMaxEdge:   defaultPreviewMaxEdge,
			DecodeWorkers:    defaultDecodeWorkers,
		},
		Tags: Tags{
			Attribute:    defaultTagAttribute,
			WriteEnabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
