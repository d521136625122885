package photosource

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestLoad_OnePhotoPerFile(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "file2.png", 4, 6)
	writePNG(t, dir, "file10.png", 5, 7)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644)

	photos, err := Load(dir, Options{Quantity: 2})
	require.NoError(t, err)
	require.Len(t, photos, 2)

	for _, p := range photos {
		assert.NotEqual(t, [16]byte{}, p.ID)
		assert.Equal(t, 2, p.Quantity)
	}
}

func TestLoad_NaturalSortOrdersHumanly(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "file10.png", 1, 1)
	writePNG(t, dir, "file2.png", 1, 1)

	photos, err := Load(dir, Options{NaturalSort: true})
	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Equal(t, "file2.png", photos[0].Size.Name)
	assert.Equal(t, "file10.png", photos[1].Size.Name)
}

func TestLoad_DefaultQuantityIsOne(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "a.png", 2, 2)

	photos, err := Load(dir, Options{})
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, 1, photos[0].Quantity)
}

func TestLoad_SkipsUnreadableFilesWithoutPanic(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "good.png", 3, 3)
	// A .png that isn't actually a PNG: DecodeConfig should fail on it,
	// and Load must skip it rather than panic.
	os.WriteFile(filepath.Join(dir, "bad.png"), []byte("not a png"), 0o644)

	photos, err := Load(dir, Options{})
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, "good.png", photos[0].Size.Name)
}

func TestLoad_MissingDirectoryErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist"), Options{})
	assert.Error(t, err)
}
