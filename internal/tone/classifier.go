package tone

import (
	"errors"
	"fmt"
	"math"

	"github.com/chromatone/chromatone/internal/colour"
)

// Undertone is the warm/cool/neutral hue bias category of a skin sample.
type Undertone string

const (
	UndertoneWarm    Undertone = "warm"
	UndertoneCool    Undertone = "cool"
	UndertoneNeutral Undertone = "neutral"
)

// Label returns the display label for an undertone category.
func (u Undertone) Label() string {
	switch u {
	case UndertoneWarm:
		return "Golden/Yellow"
	case UndertoneCool:
		return "Pink/Red"
	case UndertoneNeutral:
		return "Balanced"
	default:
		return "Unknown"
	}
}

// Profile is the classified tone of a dominant colour set.
type Profile struct {
	Undertone      Undertone `json:"undertone"`
	UndertoneLabel string    `json:"undertone_label"`
	Level          Level     `json:"level"`
	AvgHue         float64   `json:"avg_hue"`
	AvgLightness   float64   `json:"avg_lightness"`
}

// ErrEmptyColourSet is returned when classification is invoked with no
// colours. The pipeline guards against this, so hitting it indicates a
// caller bug rather than bad image data.
var ErrEmptyColourSet = errors.New("colour set is empty")

// Classifier derives a tone profile from a set of dominant colours.
type Classifier struct {
	circularHue bool
}

// NewClassifier creates a Classifier with the default linear hue mean.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// UseCircularHue switches hue averaging to the circular mean. The default
// linear mean misreads sets that straddle the 0/360 wrap (e.g. {350, 10}
// averages to 180), but it is what the undertone threshold table was tuned
// against, so it stays the default.
func (c *Classifier) UseCircularHue(enabled bool) {
	c.circularHue = enabled
}

// Classify converts every colour to HSL, averages hue and lightness, and
// assigns an undertone category and a lightness level.
func (c *Classifier) Classify(colours []string) (Profile, error) {
	if len(colours) == 0 {
		return Profile{}, ErrEmptyColourSet
	}

	hues := make([]float64, 0, len(colours))
	var lightnessSum float64
	for _, hexColour := range colours {
		rgb, err := colour.ParseHex(hexColour)
		if err != nil {
			return Profile{}, fmt.Errorf("classify colour %d: %w", len(hues), err)
		}
		hsl := rgb.ToHSL()
		hues = append(hues, hsl.H)
		lightnessSum += hsl.L
	}

	avgHue := c.meanHue(hues)
	avgLightness := lightnessSum / float64(len(colours))

	undertone := undertoneForHue(avgHue)
	return Profile{
		Undertone:      undertone,
		UndertoneLabel: undertone.Label(),
		Level:          LevelForLightness(avgLightness),
		AvgHue:         avgHue,
		AvgLightness:   avgLightness,
	}, nil
}

// meanHue averages hues either linearly or on the colour wheel.
func (c *Classifier) meanHue(hues []float64) float64 {
	if !c.circularHue {
		var sum float64
		for _, h := range hues {
			sum += h
		}
		return sum / float64(len(hues))
	}

	var sinSum, cosSum float64
	for _, h := range hues {
		rad := h * math.Pi / 180
		sinSum += math.Sin(rad)
		cosSum += math.Cos(rad)
	}
	mean := math.Atan2(sinSum, cosSum) * 180 / math.Pi
	// Atan2 can land a hair below zero for sets straddling the wrap, and
	// adding 360 to such a value rounds to exactly 360. Mod keeps the
	// result inside [0, 360).
	mean = math.Mod(mean+360, 360)
	return mean
}

// undertoneForHue maps an average hue to an undertone category. The warm
// branch is evaluated before the cool branch, so hue 20 (which both ranges
// cover) classifies as warm. This matches the historical first-match order
// and must not be reordered.
func undertoneForHue(hue float64) Undertone {
	switch {
	case hue >= 20 && hue <= 50:
		return UndertoneWarm
	case hue >= 300 || hue <= 20:
		return UndertoneCool
	default:
		return UndertoneNeutral
	}
}
