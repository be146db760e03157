package tone

import "slices"

// PaletteGroup is a named group of related upper-wear colours.
type PaletteGroup struct {
	Name    string   `json:"name"`
	Colours []string `json:"colours"`
}

// Recommendation bundles the palettes and outfit examples for one profile.
// All fields are determined by the undertone category; lightness level only
// selects whether the extra deep-tone upper-wear variant and phrase are
// included.
type Recommendation struct {
	Clothing  []string       `json:"clothing_palette"`
	Makeup    []string       `json:"makeup_palette"`
	Lips      []string       `json:"lip_palette"`
	Eyeshadow []string       `json:"eyeshadow_palette"`
	UpperWear []PaletteGroup `json:"upper_wear"`
	Outfits   []string       `json:"outfit_examples"`
}

// deepLevelThreshold marks the lightness level from which the richer
// deep-tone variant is appended.
const deepLevelThreshold = 7

// entry is the static catalog content for one undertone.
type entry struct {
	clothing  []string
	makeup    []string
	lips      []string
	eyeshadow []string
	upperWear []PaletteGroup
	outfits   []string

	// Appended for lightness level >= deepLevelThreshold.
	deepUpperWear PaletteGroup
	deepOutfit    string
}

// Catalog is the static recommendation table, keyed by undertone. Construct
// it once at startup and share it by reference; it is never mutated after
// construction, so concurrent lookups need no coordination.
type Catalog struct {
	entries map[Undertone]entry
}

// Lookup returns the recommendation for an undertone and lightness level.
// The returned slices are fresh copies down to the inner colour lists, so
// callers may mutate the result without affecting the catalog.
func (c *Catalog) Lookup(u Undertone, level int) Recommendation {
	e := c.entries[u]

	rec := Recommendation{
		Clothing:  slices.Clone(e.clothing),
		Makeup:    slices.Clone(e.makeup),
		Lips:      slices.Clone(e.lips),
		Eyeshadow: slices.Clone(e.eyeshadow),
		UpperWear: cloneGroups(e.upperWear),
		Outfits:   slices.Clone(e.outfits),
	}
	if level >= deepLevelThreshold {
		rec.UpperWear = append(rec.UpperWear, cloneGroup(e.deepUpperWear))
		rec.Outfits = append(rec.Outfits, e.deepOutfit)
	}
	return rec
}

func cloneGroup(g PaletteGroup) PaletteGroup {
	return PaletteGroup{Name: g.Name, Colours: slices.Clone(g.Colours)}
}

func cloneGroups(groups []PaletteGroup) []PaletteGroup {
	out := make([]PaletteGroup, len(groups))
	for i, g := range groups {
		out[i] = cloneGroup(g)
	}
	return out
}

// Undertones returns the categories the catalog covers.
func (c *Catalog) Undertones() []Undertone {
	return []Undertone{UndertoneWarm, UndertoneCool, UndertoneNeutral}
}

// NewCatalog builds the full recommendation catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		entries: map[Undertone]entry{
			UndertoneWarm: {
				clothing: []string{
					"#8b4513", // warm brown
					"#e2725b", // terracotta
					"#c19a6b", // camel
					"#cc5500", // burnt orange
					"#e1ad01", // mustard yellow
					"#b7410e", // rust red
				},
				makeup: []string{
					"#ffcba4", // peach
					"#f88379", // coral pink
					"#b08d57", // golden bronze
					"#e3b98a", // warm nude
				},
				lips: []string{
					"#ff6f61", // coral
					"#b22222", // brick red
					"#e2725b", // terracotta
					"#c48189", // warm rose
				},
				eyeshadow: []string{
					"#d4af37", // gold
					"#b87333", // copper
					"#cd7f32", // bronze
					"#8b6c42", // warm taupe
				},
				upperWear: []PaletteGroup{
					{Name: "Earthy Warmth", Colours: []string{"#8b4513", "#a0522d", "#c19a6b", "#deb887", "#f5deb3"}},
					{Name: "Sunset Glow", Colours: []string{"#e2725b", "#ff7f50", "#ffa07a", "#cc5500", "#ff8c00"}},
					{Name: "Golden Harvest", Colours: []string{"#e1ad01", "#ffd700", "#daa520", "#b8860b", "#f0e68c"}},
					{Name: "Olive Grove", Colours: []string{"#556b2f", "#6b8e23", "#808000", "#9acd32", "#bdb76b"}},
				},
				outfits: []string{
					"Terracotta blouse with black trousers and gold accessories",
					"Burnt orange sweater with dark denim jeans",
				},
				deepUpperWear: PaletteGroup{Name: "Spiced Ember", Colours: []string{"#8a3324", "#b7410e", "#7b3f00", "#954535", "#6f4e37"}},
				deepOutfit:    "Rust red wrap top with cream wide-leg trousers and brass jewellery",
			},
			UndertoneCool: {
				clothing: []string{
					"#000080", // navy blue
					"#ffffff", // crisp white
					"#4682b4", // steel blue
					"#36454f", // charcoal grey
					"#50c878", // emerald green
					"#7851a9", // royal purple
				},
				makeup: []string{
					"#f7cac9", // rose
					"#dda0dd", // plum
					"#b784a7", // mauve
					"#c9a9a6", // cool nude
				},
				lips: []string{
					"#c71585", // raspberry
					"#db7093", // cool pink
					"#b03060", // berry
					"#9e1b32", // cherry red
				},
				eyeshadow: []string{
					"#c0c0c0", // silver
					"#708090", // slate grey
					"#4682b4", // steel blue
					"#9896a4", // cool taupe
				},
				upperWear: []PaletteGroup{
					{Name: "Ocean Depths", Colours: []string{"#000080", "#003153", "#4682b4", "#5d8aa8", "#b0e0e6"}},
					{Name: "Jewel Tones", Colours: []string{"#50c878", "#0f52ba", "#7851a9", "#9966cc", "#e0115f"}},
					{Name: "Frosted Greys", Colours: []string{"#36454f", "#708090", "#c0c0c0", "#dcdcdc", "#ffffff"}},
					{Name: "Berry Crush", Colours: []string{"#8e4585", "#b03060", "#c54b8c", "#db7093", "#ffc0cb"}},
				},
				outfits: []string{
					"Navy blue shirt with beige chinos and silver watch",
					"Emerald green top with white jeans and pearl necklace",
				},
				deepUpperWear: PaletteGroup{Name: "Midnight Jewels", Colours: []string{"#191970", "#013220", "#301934", "#28282b", "#4b0082"}},
				deepOutfit:    "Royal purple blouse with charcoal trousers and silver statement earrings",
			},
			UndertoneNeutral: {
				clothing: []string{
					"#000000", // classic black
					"#ffffff", // pure white
					"#808080", // medium grey
					"#9caf88", // sage green
					"#b9a281", // taupe brown
					"#f5f5dc", // soft beige
				},
				makeup: []string{
					"#e3bc9a", // nude
					"#c48189", // dusty rose
					"#b9a281", // taupe
					"#d2b1a3", // soft mauve
				},
				lips: []string{
					"#b76e79", // rose gold
					"#c48189", // dusty rose
					"#9e5b40", // soft brick
					"#d19c97", // muted pink
				},
				eyeshadow: []string{
					"#b9a281", // taupe
					"#a89f91", // mushroom
					"#857e70", // stone
					"#5c5248", // smoke
				},
				upperWear: []PaletteGroup{
					{Name: "Monochrome", Colours: []string{"#000000", "#36454f", "#808080", "#d3d3d3", "#ffffff"}},
					{Name: "Soft Naturals", Colours: []string{"#9caf88", "#b2ac88", "#c3b091", "#d8c7b6", "#f5f5dc"}},
					{Name: "Dusty Pastels", Colours: []string{"#c48189", "#aa98a9", "#91a3b0", "#b2beb5", "#d8bfd8"}},
					{Name: "Modern Minimal", Colours: []string{"#b9a281", "#968772", "#708090", "#536872", "#36454f"}},
				},
				outfits: []string{
					"Charcoal grey shirt with dark denim and black leather belt",
					"Sage green cardigan with cream-colored pants",
				},
				deepUpperWear: PaletteGroup{Name: "Rich Neutrals", Colours: []string{"#3b3c36", "#483c32", "#654321", "#704241", "#36454f"}},
				deepOutfit:    "Espresso brown blazer with ivory turtleneck and onyx accessories",
			},
		},
	}
}
