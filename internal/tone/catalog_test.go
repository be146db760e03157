package tone

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chromatone/chromatone/internal/colour"
)

func TestCatalogCompleteness(t *testing.T) {
	catalog := NewCatalog()

	for _, undertone := range catalog.Undertones() {
		for level := 1; level <= 10; level++ {
			t.Run(fmt.Sprintf("%s/level-%d", undertone, level), func(t *testing.T) {
				rec := catalog.Lookup(undertone, level)

				assert.Len(t, rec.Clothing, 6)
				assert.Len(t, rec.Makeup, 4)
				assert.Len(t, rec.Lips, 4)
				assert.Len(t, rec.Eyeshadow, 4)
				require.NotEmpty(t, rec.Outfits)

				deep := level >= deepLevelThreshold
				if deep {
					assert.Len(t, rec.UpperWear, 5)
					assert.Len(t, rec.Outfits, 3)
				} else {
					assert.Len(t, rec.UpperWear, 4)
					assert.Len(t, rec.Outfits, 2)
				}

				for _, group := range rec.UpperWear {
					assert.NotEmpty(t, group.Name)
					assert.Len(t, group.Colours, 5)
				}
			})
		}
	}
}

func TestCatalogColoursParse(t *testing.T) {
	catalog := NewCatalog()

	for _, undertone := range catalog.Undertones() {
		rec := catalog.Lookup(undertone, 10)

		var all []string
		all = append(all, rec.Clothing...)
		all = append(all, rec.Makeup...)
		all = append(all, rec.Lips...)
		all = append(all, rec.Eyeshadow...)
		for _, group := range rec.UpperWear {
			all = append(all, group.Colours...)
		}

		for _, hexColour := range all {
			_, err := colour.ParseHex(hexColour)
			assert.NoError(t, err, "undertone %s colour %s", undertone, hexColour)
		}
	}
}

func TestCatalogLookupIsolation(t *testing.T) {
	// Mutating a returned recommendation must not leak back into the catalog.
	catalog := NewCatalog()

	rec := catalog.Lookup(UndertoneWarm, 8)
	rec.Clothing[0] = "#000000"
	rec.Outfits = append(rec.Outfits, "clobbered")
	rec.UpperWear[0].Name = "clobbered"
	rec.UpperWear[0].Colours[0] = "#000000"
	rec.UpperWear[len(rec.UpperWear)-1].Colours[0] = "#000000"

	fresh := catalog.Lookup(UndertoneWarm, 8)
	assert.Equal(t, "#8b4513", fresh.Clothing[0])
	assert.Len(t, fresh.Outfits, 3)
	assert.Equal(t, "Earthy Warmth", fresh.UpperWear[0].Name)
	assert.Equal(t, "#8b4513", fresh.UpperWear[0].Colours[0])
	assert.Equal(t, "#8a3324", fresh.UpperWear[len(fresh.UpperWear)-1].Colours[0])
}

func TestCatalogDeepVariantOnlyAffectsUpperWearAndOutfits(t *testing.T) {
	catalog := NewCatalog()

	light := catalog.Lookup(UndertoneCool, 3)
	deep := catalog.Lookup(UndertoneCool, 7)

	assert.Equal(t, light.Clothing, deep.Clothing)
	assert.Equal(t, light.Makeup, deep.Makeup)
	assert.Equal(t, light.Lips, deep.Lips)
	assert.Equal(t, light.Eyeshadow, deep.Eyeshadow)

	assert.Equal(t, light.UpperWear, deep.UpperWear[:len(light.UpperWear)])
	assert.Equal(t, light.Outfits, deep.Outfits[:len(light.Outfits)])
}
