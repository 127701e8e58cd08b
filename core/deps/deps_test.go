package deps_test

import (
	"bytes"
	"errors"
	"testing"

	"q3-demo-checker/core/archive"
	"q3-demo-checker/core/archive/archivetest"
	"q3-demo-checker/core/bsp"
	"q3-demo-checker/core/bsp/bsptest"
	"q3-demo-checker/core/deps"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openPK3(t *testing.T, files map[string][]byte) *archive.Archive {
	t.Helper()
	data := archivetest.PK3(t, files)
	a, err := archive.Open("map.pk3", bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	return a
}

func TestRules_Ignored(t *testing.T) {
	rules := deps.DefaultRules()

	tests := []struct {
		dep  string
		want bool
	}{
		{"noshader", true},
		{"$LIGHTMAP", true},
		{"textures/common/caulk", true},
		{"Textures/Common/clip", true},
		{"textures/radiant/notex", true},
		{"textures/base_wall/metal2", false},
		{"common/caulk", false},
	}

	for _, tt := range tests {
		t.Run(tt.dep, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.Ignored(tt.dep))
		})
	}

	assert.False(t, deps.Rules{}.Ignored("noshader"))
}

func TestShaderImages(t *testing.T) {
	script := `
// editor only
textures/tig/lava
{
	qer_editorImage textures/tig/lava_ed.tga
	/* map textures/hidden/commented.tga */
	{
		map $lightmap
	}
	{
		MAP "textures/tig/lava.tga" // inline comment
		clampMap textures/tig/glow.jpg
	}
	{
		animMap 10 textures/tig/f1.tga textures/tig/f2.tga
	}
	{
		map gfx/2d/not_an_asset_dir.tga
	}
}
`
	assert.Equal(t, []string{
		"textures/tig/lava_ed.tga",
		"textures/tig/lava.tga",
		"textures/tig/glow.jpg",
		"textures/tig/f1.tga",
		"textures/tig/f2.tga",
	}, deps.ShaderImages(script))
}

func TestGather(t *testing.T) {
	map1 := bsptest.Build(
		[]string{"textures/base_wall/metal2", "noshader", "textures/common/caulk", "textures/tig/floor"},
		`{ "classname" "worldspawn" }
{ "classname" "misc_model" "model" "models/mapobjects/Lamp.md3" }
{ "classname" "func_door" "model" "*1" "noise" "sound/world/hum.wav" }`,
	)

	a := openPK3(t, map[string][]byte{
		"maps/tig_den.bsp":      map1,
		"maps/tig_den.aas":      []byte("aas"),
		"scripts/tig.shader":    []byte("textures/tig/floor\n{\n\tmap textures/tig/floor_d.tga\n}\n"),
		"textures/tig/floor.jpg": []byte("jpg"),
	})

	d, err := deps.Gather(a, deps.DefaultRules())
	require.NoError(t, err)

	assert.Equal(t, "maps/tig_den.bsp", d.BSP)
	assert.Equal(t, []string{"textures/base_wall/metal2", "textures/tig/floor"}, d.Textures)
	assert.Equal(t, []string{"models/mapobjects/lamp.md3", "sound/world/hum.wav"}, d.Entities)
	assert.Equal(t, []string{"textures/tig/floor_d.tga"}, d.ShaderImages)
	assert.Equal(t, []string{"noshader", "textures/common/caulk"}, d.Ignored)
	assert.Equal(t, []string{
		"models/mapobjects/lamp.md3",
		"sound/world/hum.wav",
		"textures/base_wall/metal2",
		"textures/tig/floor",
		"textures/tig/floor_d.tga",
	}, d.Required.Sorted())
}

func TestGather_Errors(t *testing.T) {
	t.Run("NoBSP", func(t *testing.T) {
		a := openPK3(t, map[string][]byte{"textures/x/a.tga": nil})
		_, err := deps.Gather(a, deps.DefaultRules())
		assert.ErrorIs(t, err, deps.ErrNoBSP)
	})

	t.Run("BadMagic", func(t *testing.T) {
		a := openPK3(t, map[string][]byte{"maps/bad.bsp": []byte("RBSP0000")})
		_, err := deps.Gather(a, deps.DefaultRules())

		var readErr *archive.ReadError
		require.True(t, errors.As(err, &readErr))
		assert.Equal(t, "maps/bad.bsp", readErr.Entry)
		assert.ErrorIs(t, err, bsp.ErrBadMagic)
	})
}
