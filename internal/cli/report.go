package cli

import (
	"fmt"
	"strings"

	"github.com/chromatone/chromatone/internal/colour"
	"github.com/chromatone/chromatone/internal/tone"
)

// renderTextReport formats an analysis result as a human-readable report.
// When preview is true, ANSI swatch strips are added for the colour lists.
func renderTextReport(result *tone.Result, preview bool) string {
	var b strings.Builder

	profile := result.Profile
	fmt.Fprintf(&b, "Undertone:      %s (%s)\n", profile.Undertone, profile.UndertoneLabel)
	fmt.Fprintf(&b, "Skin tone:      level %d %s (%s)\n", profile.Level.Level, profile.Level.Name, profile.Level.Hex)
	fmt.Fprintf(&b, "Avg hue:        %.1f\n", profile.AvgHue)
	fmt.Fprintf(&b, "Avg lightness:  %.1f\n", profile.AvgLightness)

	b.WriteString("\nDominant colours:\n")
	fmt.Fprintf(&b, "  %s\n", strings.Join(result.DominantColours, " "))
	if preview {
		fmt.Fprintf(&b, "  %s\n", swatchStrip(result.DominantColours))
	}

	rec := result.Recommendation
	b.WriteString("\nRecommended palettes:\n")
	palettes := NewTable([]string{"Palette", "Colours"})
	palettes.AddRow([]string{"Clothing", strings.Join(rec.Clothing, " ")})
	palettes.AddRow([]string{"Makeup", strings.Join(rec.Makeup, " ")})
	palettes.AddRow([]string{"Lips", strings.Join(rec.Lips, " ")})
	palettes.AddRow([]string{"Eyeshadow", strings.Join(rec.Eyeshadow, " ")})
	b.WriteString(palettes.Render())

	b.WriteString("\nUpper wear variants:\n")
	variants := NewTable([]string{"Variant", "Colours"})
	for _, group := range rec.UpperWear {
		variants.AddRow([]string{group.Name, strings.Join(group.Colours, " ")})
	}
	b.WriteString(variants.Render())

	b.WriteString("\nOutfit ideas:\n")
	for _, outfit := range rec.Outfits {
		fmt.Fprintf(&b, "  - %s\n", outfit)
	}

	return b.String()
}

// swatchStrip renders a row of truecolor background blocks for hex colours.
// Colours that fail to parse are skipped; the strip is cosmetic.
func swatchStrip(colours []string) string {
	var b strings.Builder
	for _, hexColour := range colours {
		rgb, err := colour.ParseHex(hexColour)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "\x1b[48;2;%d;%d;%dm   \x1b[0m", rgb.R, rgb.G, rgb.B)
	}
	return b.String()
}
