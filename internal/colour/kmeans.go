package colour

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"
)

// Seeding selects how initial k-means centroids are chosen.
type Seeding string

const (
	// SeedingRandom picks initial centroids uniformly at random from the
	// filtered samples, with replacement. This matches the historical
	// behaviour: output varies run to run unless a seed is fixed.
	SeedingRandom Seeding = "random"

	// SeedingSpread picks evenly spaced samples from the filtered sample
	// list. Deterministic for a given region without needing a seed.
	SeedingSpread Seeding = "spread"
)

// ValidSeedings returns the recognised seeding strategy names.
func ValidSeedings() []Seeding {
	return []Seeding{SeedingRandom, SeedingSpread}
}

// IsValidSeeding checks whether the given seeding strategy is recognised.
func IsValidSeeding(s Seeding) bool {
	for _, valid := range ValidSeedings() {
		if s == valid {
			return true
		}
	}
	return false
}

// Sampling and filter thresholds for skin pixel selection.
const (
	// sampleStride keeps every Nth pixel of the linear buffer.
	sampleStride = 4

	// minAlpha rejects near-transparent pixels.
	minAlpha = 200

	// Channel bounds reject near-black and near-white pixels, which are
	// presumed to be background or clothing rather than skin.
	minChannel = 30
	maxChannel = 250
)

// iterations is the fixed number of k-means refinement rounds. There is no
// convergence check: the cost is bounded and the result is good enough for
// tone classification.
const iterations = 10

// Extractor clusters sampled region pixels into representative colours using
// k-means in RGB space.
type Extractor struct {
	seeding Seeding

	// mu guards rng: rand.Rand is not safe for concurrent use, and an
	// Extractor may serve concurrent Analyze calls.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewExtractor creates an Extractor with random centroid seeding and a
// time-derived seed.
func NewExtractor() *Extractor {
	return &Extractor{
		seeding: SeedingRandom,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// UseSeed fixes the random source, making extraction reproducible under
// random seeding.
func (e *Extractor) UseSeed(seed int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rng = rand.New(rand.NewSource(seed))
}

// UseSeeding selects the centroid seeding strategy.
func (e *Extractor) UseSeeding(s Seeding) error {
	if !IsValidSeeding(s) {
		return fmt.Errorf("unknown seeding strategy: %s (valid strategies: %v)", s, ValidSeedings())
	}
	e.seeding = s
	return nil
}

// point represents a point in 3D RGB colour space.
type point struct {
	R, G, B float64
}

// distanceSq calculates the squared Euclidean distance between two points.
// Squared distance preserves ordering, so the square root is skipped.
func (p point) distanceSq(other point) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return dr*dr + dg*dg + db*db
}

// Extract samples the region, filters out transparent and near-black or
// near-white pixels, and clusters the survivors into k representative
// colours. The result is a k-length slice of hex strings in centroid-index
// order; clusters may collapse, so duplicates are possible.
//
// If no samples survive filtering, Extract returns an empty slice and no
// error. Callers must treat an empty result as a terminal failure for the
// region; re-running the same input produces the same filter outcome.
func (e *Extractor) Extract(region Region, k int) ([]string, error) {
	if k < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", k)
	}
	if err := region.Validate(); err != nil {
		return nil, err
	}

	samples := sampleRegion(region)
	if len(samples) == 0 {
		return []string{}, nil
	}

	centroids := e.initialCentroids(samples, k)

	assignments := make([]int, len(samples))
	for iter := 0; iter < iterations; iter++ {
		for i, s := range samples {
			assignments[i] = nearestCentroid(s, centroids)
		}
		centroids = recalculateCentroids(samples, assignments, centroids)
	}

	colours := make([]string, len(centroids))
	for i, c := range centroids {
		colours[i] = HexFromFloat(c.R, c.G, c.B)
	}
	return colours, nil
}

// sampleRegion walks the linear pixel buffer with a fixed stride and keeps
// only plausibly-skin samples: opaque enough and away from the black and
// white extremes on every channel.
func sampleRegion(region Region) []point {
	total := len(region.Pix) / 4
	samples := make([]point, 0, total/sampleStride+1)

	for i := 0; i < total; i += sampleStride {
		off := i * 4
		r := region.Pix[off]
		g := region.Pix[off+1]
		b := region.Pix[off+2]
		a := region.Pix[off+3]

		if a <= minAlpha {
			continue
		}
		if r <= minChannel || r >= maxChannel ||
			g <= minChannel || g >= maxChannel ||
			b <= minChannel || b >= maxChannel {
			continue
		}

		samples = append(samples, point{
			R: float64(r),
			G: float64(g),
			B: float64(b),
		})
	}
	return samples
}

// initialCentroids seeds k centroids from the sample set according to the
// configured strategy.
func (e *Extractor) initialCentroids(samples []point, k int) []point {
	centroids := make([]point, k)
	switch e.seeding {
	case SeedingSpread:
		for i := 0; i < k; i++ {
			centroids[i] = samples[i*len(samples)/k]
		}
	default:
		e.mu.Lock()
		for i := 0; i < k; i++ {
			centroids[i] = samples[e.rng.Intn(len(samples))]
		}
		e.mu.Unlock()
	}
	return centroids
}

// nearestCentroid finds the index of the closest centroid to a sample.
// Ties break to the lowest index.
func nearestCentroid(s point, centroids []point) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, c := range centroids {
		if dist := s.distanceSq(c); dist < minDist {
			minDist = dist
			nearest = i
		}
	}
	return nearest
}

// recalculateCentroids replaces each centroid with the mean of its assigned
// samples. A centroid with no assigned samples retains its previous value
// rather than being reseeded.
func recalculateCentroids(samples []point, assignments []int, prev []point) []point {
	k := len(prev)
	sums := make([]point, k)
	counts := make([]int, k)

	for i, s := range samples {
		cluster := assignments[i]
		sums[cluster].R += s.R
		sums[cluster].G += s.G
		sums[cluster].B += s.B
		counts[cluster]++
	}

	centroids := make([]point, k)
	for i := 0; i < k; i++ {
		if counts[i] > 0 {
			centroids[i] = point{
				R: sums[i].R / float64(counts[i]),
				G: sums[i].G / float64(counts[i]),
				B: sums[i].B / float64(counts[i]),
			}
		} else {
			centroids[i] = prev[i]
		}
	}
	return centroids
}
