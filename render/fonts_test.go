package render

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFont_MissingFileNeverFails(t *testing.T) {
	r := NewRenderer(Dirs{Fonts: t.TempDir()})

	face := r.loadFont("does_not_exist.ttf", 30)

	require.NotNil(t, face)
	assert.Greater(t, face.Metrics().Ascent.Ceil(), 0)
}

func TestLoadFont_EmptyNameUsesBuiltin(t *testing.T) {
	r := NewRenderer(Dirs{})

	face := r.loadFont("", 24)

	require.NotNil(t, face)
	assert.Greater(t, face.Metrics().Height.Ceil(), 0)
}

func TestLoadFont_CorruptFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.ttf"), []byte("not a font"), 0o644))
	r := NewRenderer(Dirs{Fonts: dir})

	face := r.loadFont("broken.ttf", 30)

	require.NotNil(t, face)
}

func TestLoadFont_NonPositiveSizeClamped(t *testing.T) {
	r := NewRenderer(Dirs{})

	face := r.loadFont("", 0)

	require.NotNil(t, face)
	assert.Greater(t, face.Metrics().Height.Ceil(), 0)
}

func TestLoadImageAsset(t *testing.T) {
	dir := t.TempDir()

	// one valid png and one garbage file
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 6))))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ok.png"), buf.Bytes(), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "junk.png"), []byte("junk"), 0o644))

	r := NewRenderer(Dirs{Icons: dir})

	t.Run("valid image decodes", func(t *testing.T) {
		img := r.loadImageAsset(assetIcon, "ok.png")
		require.NotNil(t, img)
		assert.Equal(t, 8, img.Bounds().Dx())
	})
	t.Run("empty name skips", func(t *testing.T) {
		assert.Nil(t, r.loadImageAsset(assetIcon, ""))
	})
	t.Run("missing file skips", func(t *testing.T) {
		assert.Nil(t, r.loadImageAsset(assetIcon, "gone.png"))
	})
	t.Run("undecodable file skips", func(t *testing.T) {
		assert.Nil(t, r.loadImageAsset(assetIcon, "junk.png"))
	})
	t.Run("unconfigured root skips", func(t *testing.T) {
		assert.Nil(t, r.loadImageAsset(assetBackground, "ok.png"))
	})
}

func TestScaleImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))

	dst := scaleImage(src, 25, 5)

	assert.Equal(t, 25, dst.Bounds().Dx())
	assert.Equal(t, 5, dst.Bounds().Dy())
}
