package colour

import "fmt"

// Region is a rectangular pixel buffer in interleaved RGBA layout: row-major,
// four bytes per pixel, width*height*4 bytes in total. The buffer is owned by
// whoever decoded the image; the extractor only reads it.
//
// How the rectangle was chosen is deliberately outside this package. The
// default caller uses a fixed fractional crop as a face-region stand-in, but
// any rectangular RGBA buffer meeting this layout is accepted.
type Region struct {
	Pix    []uint8
	Width  int
	Height int
}

// Validate checks that the buffer length matches the declared dimensions.
func (r Region) Validate() error {
	if r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("region dimensions must be non-negative, got %dx%d", r.Width, r.Height)
	}
	if want := r.Width * r.Height * 4; len(r.Pix) != want {
		return fmt.Errorf("region buffer length %d does not match %dx%d RGBA layout (want %d)",
			len(r.Pix), r.Width, r.Height, want)
	}
	return nil
}
