package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.False(t, cfg.Server.AllowLocal)
	assert.Equal(t, 64, cfg.Server.BodyLimitMB)
	assert.Equal(t, "maps", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 60, cfg.Fetch.TimeoutSeconds)
	assert.Equal(t, int64(268435456), cfg.Fetch.MaxBytes)

	assert.Equal(t, "baseq3/pak0-demo.pk3", cfg.Check.DemoBase)
	assert.Equal(t, "baseq3/pak0-full.pk3", cfg.Check.FullBase)
	require.Len(t, cfg.Check.Patches, 7)
	assert.Equal(t, "baseq3/pak1.pk3", cfg.Check.Patches[0])
	assert.Equal(t, "baseq3/pak7.pk3", cfg.Check.Patches[6])
	assert.Equal(t, []string{"textures/common/", "textures/radiant/notex"}, cfg.Check.Ignore.IgnorePaths)
	assert.Contains(t, cfg.Check.Ignore.IgnoreTerms, "$lightmap")
	assert.Equal(t, 300, cfg.Check.CacheTTLSeconds)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_ALLOW_LOCAL", "true")
	t.Setenv("CHECK_MAP_URL", "https://example.com/tig_den.pk3")
	t.Setenv("CHECK_PATCHES", "a.pk3,b.pk3")
	t.Setenv("CHECK_IGNORE_TERMS", "noshader")
	t.Setenv("FETCH_MAX_BYTES", "1024")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Server.AllowLocal)
	assert.Equal(t, "https://example.com/tig_den.pk3", cfg.Check.MapURL)
	assert.Equal(t, []string{"a.pk3", "b.pk3"}, cfg.Check.Patches)
	assert.Equal(t, []string{"noshader"}, cfg.Check.Ignore.IgnoreTerms)
	assert.Equal(t, int64(1024), cfg.Fetch.MaxBytes)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CHECK_DEMO_BASE=/srv/q3/demo.pk3\nLOG_LEVEL=debug\n"), 0644))
	t.Cleanup(func() {
		os.Unsetenv("CHECK_DEMO_BASE")
		os.Unsetenv("LOG_LEVEL")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "/srv/q3/demo.pk3", cfg.Check.DemoBase)
	assert.Equal(t, "debug", cfg.Log.Level)
}
