package image

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// portrait builds a synthetic test image: a skin-coloured block where the
// default face crop lands, on a dark background.
func portrait(width, height int, face color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.NRGBA{R: 10, G: 10, B: 10, A: 255}}, image.Point{}, draw.Src)

	faceRect := DefaultFaceCrop.Rect(width, height)
	draw.Draw(img, faceRect, &image.Uniform{C: face}, image.Point{}, draw.Src)
	return img
}

func TestCropFractionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		crop    CropFractions
		wantErr bool
	}{
		{"default face crop", DefaultFaceCrop, false},
		{"full frame", CropFractions{X: 0, Y: 0, W: 1, H: 1}, false},
		{"zero width", CropFractions{X: 0.1, Y: 0.1, W: 0, H: 0.5}, true},
		{"negative origin", CropFractions{X: -0.1, Y: 0.1, W: 0.5, H: 0.5}, true},
		{"exceeds right edge", CropFractions{X: 0.7, Y: 0.1, W: 0.5, H: 0.5}, true},
		{"exceeds bottom edge", CropFractions{X: 0.1, Y: 0.7, W: 0.5, H: 0.5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.crop.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCropFractionsRect(t *testing.T) {
	rect := DefaultFaceCrop.Rect(100, 100)
	assert.Equal(t, image.Rect(30, 20, 70, 80), rect)

	rect = CropFractions{X: 0, Y: 0, W: 1, H: 1}.Rect(640, 480)
	assert.Equal(t, image.Rect(0, 0, 640, 480), rect)
}

func TestCropRegionExtractsFaceRectangle(t *testing.T) {
	skin := color.NRGBA{R: 200, G: 150, B: 120, A: 255}
	img := portrait(100, 100, skin)

	region, err := CropRegion(img, DefaultFaceCrop)
	require.NoError(t, err)
	require.NoError(t, region.Validate())

	assert.Equal(t, 40, region.Width)
	assert.Equal(t, 60, region.Height)

	// Every pixel of the cropped region is the face colour.
	for i := 0; i < region.Width*region.Height; i++ {
		assert.Equal(t, skin.R, region.Pix[i*4])
		assert.Equal(t, skin.G, region.Pix[i*4+1])
		assert.Equal(t, skin.B, region.Pix[i*4+2])
		assert.Equal(t, skin.A, region.Pix[i*4+3])
	}
}

func TestCropRegionRejectsBadInput(t *testing.T) {
	_, err := CropRegion(nil, DefaultFaceCrop)
	require.Error(t, err)

	img := portrait(100, 100, color.NRGBA{R: 200, G: 150, B: 120, A: 255})
	_, err = CropRegion(img, CropFractions{X: 0.8, Y: 0, W: 0.5, H: 0.5})
	require.Error(t, err)
}

func TestRegionFromImage(t *testing.T) {
	skin := color.NRGBA{R: 180, G: 140, B: 110, A: 255}
	img := image.NewNRGBA(image.Rect(0, 0, 8, 5))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: skin}, image.Point{}, draw.Src)

	region, err := RegionFromImage(img)
	require.NoError(t, err)
	require.NoError(t, region.Validate())

	assert.Equal(t, 8, region.Width)
	assert.Equal(t, 5, region.Height)
	assert.Len(t, region.Pix, 8*5*4)
	assert.Equal(t, uint8(180), region.Pix[0])
	assert.Equal(t, uint8(255), region.Pix[3])
}

func TestRegionFromImageNilImage(t *testing.T) {
	_, err := RegionFromImage(nil)
	require.Error(t, err)
}
