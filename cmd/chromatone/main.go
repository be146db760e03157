// ChromaTone - skin tone analysis and colour recommendation
//
// ChromaTone analyses the face region of a photograph, estimates skin colour
// by clustering sampled pixels, and recommends clothing and makeup palettes
// for the classified undertone and lightness level.
package main

import "github.com/chromatone/chromatone/internal/cli"

func main() {
	cli.Execute()
}
