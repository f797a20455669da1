// Package config loads, normalizes, and validates the shortlist configuration
// file.
//
// Configuration is TOML, by default at ~/.config/shortlist/config.toml, with a
// project-local shortlist.toml honored as a fallback. Load applies defaults
// for every missing key, expands ~ in paths, and rejects values the pipeline
// cannot work with (zero worker counts, inverted edge sizes). A missing file
// is not an error; defaults are designed to be usable as-is.
package config
