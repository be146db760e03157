package image

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/chromatone/chromatone/internal/colour"
)

// CropFractions describes a crop rectangle as fractions of the source image,
// origin at the top left. It is the contract point where real face detection
// could plug in: anything able to produce a rectangle can replace the default.
type CropFractions struct {
	X float64
	Y float64
	W float64
	H float64
}

// DefaultFaceCrop is the fixed fractional rectangle used as a face-region
// stand-in when no detector is available: centred horizontally, biased
// towards the upper part of the frame where portrait photos put faces.
var DefaultFaceCrop = CropFractions{X: 0.3, Y: 0.2, W: 0.4, H: 0.6}

// Validate checks that the fractions describe a non-empty rectangle inside
// the unit square.
func (c CropFractions) Validate() error {
	if c.W <= 0 || c.H <= 0 {
		return fmt.Errorf("crop width and height fractions must be positive, got w=%g h=%g", c.W, c.H)
	}
	if c.X < 0 || c.Y < 0 {
		return fmt.Errorf("crop origin fractions must be non-negative, got x=%g y=%g", c.X, c.Y)
	}
	if c.X+c.W > 1 || c.Y+c.H > 1 {
		return fmt.Errorf("crop rectangle exceeds image bounds: x+w=%g y+h=%g", c.X+c.W, c.Y+c.H)
	}
	return nil
}

// Rect resolves the fractional rectangle against concrete image dimensions.
func (c CropFractions) Rect(width, height int) image.Rectangle {
	x0 := int(c.X * float64(width))
	y0 := int(c.Y * float64(height))
	x1 := x0 + int(c.W*float64(width))
	y1 := y0 + int(c.H*float64(height))
	return image.Rect(x0, y0, x1, y1)
}

// CropRegion crops the fractional rectangle out of img and returns the pixel
// region the analysis pipeline consumes.
func CropRegion(img image.Image, frac CropFractions) (colour.Region, error) {
	if img == nil {
		return colour.Region{}, fmt.Errorf("image cannot be nil")
	}
	if err := frac.Validate(); err != nil {
		return colour.Region{}, err
	}

	bounds := img.Bounds()
	rect := frac.Rect(bounds.Dx(), bounds.Dy()).Add(bounds.Min)
	if rect.Empty() {
		return colour.Region{}, fmt.Errorf("crop rectangle is empty for %dx%d image", bounds.Dx(), bounds.Dy())
	}

	cropped := imaging.Crop(img, rect)
	return regionFromNRGBA(cropped), nil
}

// RegionFromImage converts a whole image into the interleaved RGBA buffer
// layout without cropping.
func RegionFromImage(img image.Image) (colour.Region, error) {
	if img == nil {
		return colour.Region{}, fmt.Errorf("image cannot be nil")
	}
	return regionFromNRGBA(imaging.Clone(img)), nil
}

// regionFromNRGBA flattens an NRGBA image into a tightly packed row-major
// buffer. imaging allocates fresh images with stride == width*4, but padded
// strides are handled anyway.
func regionFromNRGBA(img *image.NRGBA) colour.Region {
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()

	if img.Stride == width*4 {
		return colour.Region{Pix: img.Pix, Width: width, Height: height}
	}

	pix := make([]uint8, width*height*4)
	for y := 0; y < height; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+width*4]
		copy(pix[y*width*4:], src)
	}
	return colour.Region{Pix: pix, Width: width, Height: height}
}
