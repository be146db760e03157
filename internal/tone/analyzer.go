package tone

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/chromatone/chromatone/internal/colour"
	"github.com/hashicorp/go-hclog"
)

// DefaultColourCount is the number of dominant colours extracted when the
// caller does not pick its own k.
const DefaultColourCount = 14

// ErrInsufficientColourData is returned when sampling and filtering leave no
// usable pixels (fully transparent, near-black or near-white regions).
// The filter is deterministic, so retrying the same region cannot succeed.
var ErrInsufficientColourData = errors.New("no usable pixels survived sampling")

// Analyzer composes dominant-colour extraction, tone classification, and
// catalog lookup into a single synchronous pipeline call.
//
// An Analyzer is safe for concurrent use: the catalog is read-only after
// construction and everything else is local to each Analyze call.
type Analyzer struct {
	extractor  *colour.Extractor
	classifier *Classifier
	catalog    *Catalog
	logger     hclog.Logger
}

// NewAnalyzer wires the pipeline together. A nil logger disables logging.
func NewAnalyzer(extractor *colour.Extractor, classifier *Classifier, catalog *Catalog, logger hclog.Logger) *Analyzer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Analyzer{
		extractor:  extractor,
		classifier: classifier,
		catalog:    catalog,
		logger:     logger,
	}
}

// Result aggregates everything one analysis produces. It is immutable once
// returned; no state is shared across invocations.
type Result struct {
	DominantColours []string       `json:"dominant_colours"`
	Profile         Profile        `json:"profile"`
	Recommendation  Recommendation `json:"recommendation"`
}

// ToJSON renders the result as indented JSON. The field layout is the stable
// contract consumed across process boundaries.
func (r *Result) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Analyze runs the full pipeline on a pixel region: extract k dominant
// colours, classify them, and look up the styling recommendation.
// It returns no partial results; either the whole record or an error.
func (a *Analyzer) Analyze(region colour.Region, k int) (*Result, error) {
	if k < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", k)
	}

	colours, err := a.extractor.Extract(region, k)
	if err != nil {
		return nil, fmt.Errorf("extract dominant colours: %w", err)
	}
	if len(colours) == 0 {
		return nil, ErrInsufficientColourData
	}
	a.logger.Debug("extracted dominant colours", "count", len(colours), "region", fmt.Sprintf("%dx%d", region.Width, region.Height))

	profile, err := a.classifier.Classify(colours)
	if err != nil {
		// Unreachable given the emptiness guard above, but never swallowed.
		return nil, fmt.Errorf("classify colours: %w", err)
	}
	a.logger.Debug("classified tone",
		"undertone", profile.Undertone,
		"level", profile.Level.Level,
		"avg_hue", profile.AvgHue,
		"avg_lightness", profile.AvgLightness)

	return &Result{
		DominantColours: colours,
		Profile:         profile,
		Recommendation:  a.catalog.Lookup(profile.Undertone, profile.Level.Level),
	}, nil
}
