package image

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestPNG writes a small PNG to dir and returns its path.
func writeTestPNG(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "portrait.png")

	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	img := image.NewNRGBA(image.Rect(0, 0, 12, 9))
	require.NoError(t, png.Encode(file, img))
	return path
}

func TestFileLoaderLoad(t *testing.T) {
	path := writeTestPNG(t, t.TempDir())

	img, err := NewFileLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 9, img.Bounds().Dy())
}

func TestFileLoaderErrors(t *testing.T) {
	loader := NewFileLoader()

	_, err := loader.Load("")
	assert.Error(t, err)

	_, err = loader.Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)

	dir := t.TempDir()
	_, err = loader.Load(dir)
	assert.Error(t, err)

	// A file that is not an image at all.
	bogus := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(bogus, []byte("not an image"), 0o644))
	_, err = loader.Load(bogus)
	assert.Error(t, err)
}

func TestValidateImagePath(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir)

	assert.NoError(t, ValidateImagePath(path))
	assert.Error(t, ValidateImagePath(""))
	assert.Error(t, ValidateImagePath(filepath.Join(dir, "missing.png")))
	assert.Error(t, ValidateImagePath(dir))
}

func TestGetImageDimensions(t *testing.T) {
	path := writeTestPNG(t, t.TempDir())

	width, height, err := GetImageDimensions(path)
	require.NoError(t, err)
	assert.Equal(t, 12, width)
	assert.Equal(t, 9, height)
}
