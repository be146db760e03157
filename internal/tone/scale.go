// Package tone classifies dominant colour sets into skin tone profiles and
// maps them to styling recommendations.
package tone

// Level is one bucket of the ten-step skin tone scale.
type Level struct {
	Level int    `json:"level"`
	Name  string `json:"name"`
	Hex   string `json:"hex"`
}

// scaleEntry pairs a level with the minimum average lightness (percentage)
// that selects it. Entries are evaluated top-down; the first threshold at or
// below the measured lightness wins, so level 1 is the lightest.
type scaleEntry struct {
	minLightness float64
	level        Level
}

var scale = []scaleEntry{
	{85, Level{Level: 1, Name: "Porcelain", Hex: "#f6ede4"}},
	{80, Level{Level: 2, Name: "Ivory", Hex: "#f3e7db"}},
	{75, Level{Level: 3, Name: "Light Beige", Hex: "#f7ead0"}},
	{70, Level{Level: 4, Name: "Warm Beige", Hex: "#eadaba"}},
	{65, Level{Level: 5, Name: "Golden Beige", Hex: "#d7bd96"}},
	{55, Level{Level: 6, Name: "Tan", Hex: "#a07e56"}},
	{45, Level{Level: 7, Name: "Medium Brown", Hex: "#825c43"}},
	{35, Level{Level: 8, Name: "Deep Brown", Hex: "#604134"}},
	{25, Level{Level: 9, Name: "Dark Espresso", Hex: "#3a312a"}},
}

// ebony is the fall-through darkest level.
var ebony = Level{Level: 10, Name: "Ebony", Hex: "#292421"}

// LevelForLightness maps an average lightness percentage to a scale level.
func LevelForLightness(lightness float64) Level {
	for _, entry := range scale {
		if lightness >= entry.minLightness {
			return entry.level
		}
	}
	return ebony
}

// Scale returns the full ten-level skin tone scale, lightest first.
func Scale() []Level {
	levels := make([]Level, 0, len(scale)+1)
	for _, entry := range scale {
		levels = append(levels, entry.level)
	}
	return append(levels, ebony)
}
