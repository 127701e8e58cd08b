package compat

import (
	"errors"
	"strings"

	"q3-demo-checker/core/deps"
)

// Config selects the archives of a check.
type Config struct {
	// MapPath is a local map archive. Only one of MapPath and MapURL may be set.
	MapPath string `mapstructure:"map_path" default:""`
	// MapURL is a map archive to download.
	MapURL string `mapstructure:"map_url" default:""`
	// DemoBase is the demo pak0.pk3.
	DemoBase string `mapstructure:"demo_base" default:"baseq3/pak0-demo.pk3"`
	// FullBase is the retail pak0.pk3.
	FullBase string `mapstructure:"full_base" default:"baseq3/pak0-full.pk3"`
	// Patches are the point-release paks. Missing ones are skipped.
	Patches []string `mapstructure:"patches" default:"baseq3/pak1.pk3,baseq3/pak2.pk3,baseq3/pak3.pk3,baseq3/pak4.pk3,baseq3/pak5.pk3,baseq3/pak6.pk3,baseq3/pak7.pk3"`
	// Ignore lists dependencies that are never checked.
	Ignore deps.Rules `mapstructure:"ignore"`
	// CacheTTLSeconds keeps loaded references between checks. Zero disables it.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}

// ErrAmbiguousMap is returned when both a map path and a map URL are configured.
var ErrAmbiguousMap = errors.New("configure either check.map_path or check.map_url, not both")

// MapSource returns the configured map location.
func (c Config) MapSource() (string, error) {
	path := strings.TrimSpace(c.MapPath)
	url := strings.TrimSpace(c.MapURL)
	if path != "" && url != "" {
		return "", ErrAmbiguousMap
	}
	if path != "" {
		return path, nil
	}
	return url, nil
}

// ReferenceKey identifies the reference archives for caching.
func (c Config) ReferenceKey() string {
	parts := append([]string{c.DemoBase, c.FullBase}, c.Patches...)
	return strings.Join(parts, "|")
}
