package archive_test

import (
	"bytes"
	"errors"
	"testing"

	"q3-demo-checker/core/archive"
	"q3-demo-checker/core/archive/archivetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Lowercase", "Textures/Base_Wall/Metal.TGA", "textures/base_wall/metal.tga"},
		{"Backslashes", `models\mapobjects\lamp.md3`, "models/mapobjects/lamp.md3"},
		{"LeadingDotSlash", "./sound/world/hum.wav", "sound/world/hum.wav"},
		{"LeadingSlash", "//maps/q3dm1.bsp", "maps/q3dm1.bsp"},
		{"Whitespace", "  scripts/base.shader ", "scripts/base.shader"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, archive.Canonical(tt.in))
		})
	}
}

func TestInventory(t *testing.T) {
	inv := archive.NewInventory("A.tga", "a.tga", "dir/", "", `Sub\B.jpg`)

	assert.Equal(t, 2, inv.Len())
	assert.True(t, inv.Has("a.TGA"))
	assert.True(t, inv.Has("sub/b.jpg"))
	assert.False(t, inv.Has("dir/"))
	assert.Equal(t, []string{"a.tga", "sub/b.jpg"}, inv.Sorted())

	u := inv.Union(archive.NewInventory("c.wav"), nil)
	assert.Equal(t, 3, u.Len())
	assert.Equal(t, 2, inv.Len(), "union must not modify the receiver")
}

func TestOpen(t *testing.T) {
	data := archivetest.PK3(t, map[string][]byte{
		"maps/":                 nil,
		"maps/Test.bsp":         []byte("IBSP"),
		"textures/custom/a.TGA": []byte("tga"),
		"scripts/custom.shader": []byte("textures/custom/a {}"),
	})

	a, err := archive.Open("test.pk3", bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	assert.Equal(t, "test.pk3", a.Name())
	assert.Equal(t, []string{
		"maps/test.bsp",
		"scripts/custom.shader",
		"textures/custom/a.tga",
	}, a.Inventory().Sorted())
	bsps, err := a.Glob("maps/**/*.bsp")
	require.NoError(t, err)
	assert.Equal(t, []string{"maps/test.bsp"}, bsps)

	_, err = a.Glob("maps/[")
	assert.Error(t, err)

	content, err := a.ReadFile("MAPS/test.bsp")
	require.NoError(t, err)
	assert.Equal(t, []byte("IBSP"), content)

	_, err = a.ReadFile("maps/other.bsp")
	var readErr *archive.ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, "test.pk3", readErr.Archive)
	assert.Equal(t, "maps/other.bsp", readErr.Entry)
}

func TestReadInventory_Invalid(t *testing.T) {
	t.Run("NotAZip", func(t *testing.T) {
		data := []byte("definitely not a zip archive")
		_, err := archive.ReadInventory("broken.pk3", bytes.NewReader(data), int64(len(data)))

		var readErr *archive.ReadError
		require.True(t, errors.As(err, &readErr))
		assert.Equal(t, "broken.pk3", readErr.Archive)
		assert.Contains(t, err.Error(), "broken.pk3")
	})

	t.Run("Truncated", func(t *testing.T) {
		data := archivetest.Paths(t, "a.tga", "b.tga")
		cut := data[:len(data)/2]
		_, err := archive.ReadInventory("cut.pk3", bytes.NewReader(cut), int64(len(cut)))

		var readErr *archive.ReadError
		assert.True(t, errors.As(err, &readErr))
	})
}

func TestReadInventory_DirectoriesExcluded(t *testing.T) {
	data := archivetest.Paths(t, "textures/", "textures/base/", "textures/base/x.jpg")

	inv, err := archive.ReadInventory("pak.pk3", bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Equal(t, []string{"textures/base/x.jpg"}, inv.Sorted())
}
