package cli

import (
	"fmt"
	stdimage "image"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/chromatone/chromatone/internal/colour"
	"github.com/chromatone/chromatone/internal/image"
	"github.com/chromatone/chromatone/internal/tone"
)

var (
	// Analyze command flags
	analyzeColours     int
	analyzeFormat      string
	analyzeOutput      string
	analyzeSeed        int64
	analyzeSeeding     string
	analyzeCircularHue bool
	analyzeCrop        string
	analyzeFullFrame   bool
	analyzeShowPreview bool
)

// analyzeCmd represents the analyze command.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <image>",
	Short: "Analyse skin tone and recommend colours",
	Long: `Analyse the face region of a photograph and produce a styling
recommendation.

The command crops a fixed fractional face-region rectangle out of the image
(override with --crop, or analyse everything with --full-frame), clusters the
sampled pixels into dominant colours, classifies undertone and lightness
level, and prints the matching clothing and makeup recommendation.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Analyse a portrait with defaults
  chromatone analyze portrait.jpg

  # Reproducible run with a fixed seed
  chromatone analyze --seed 42 portrait.jpg

  # Deterministic without a seed: spread centroid seeding
  chromatone analyze --seeding spread portrait.jpg

  # JSON output for other tools
  chromatone analyze --format json portrait.jpg

  # Custom face rectangle (fractions: x,y,w,h)
  chromatone analyze --crop 0.25,0.15,0.5,0.7 portrait.jpg

  # Show colour swatches in the terminal
  chromatone analyze --preview portrait.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVarP(&analyzeColours, "colours", "c", tone.DefaultColourCount, "number of dominant colours to extract")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "text", "output format (text, json)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "output file (default: stdout)")
	analyzeCmd.Flags().Int64Var(&analyzeSeed, "seed", -1, "random seed for centroid initialisation (-1: time-derived)")
	analyzeCmd.Flags().StringVar(&analyzeSeeding, "seeding", string(colour.SeedingRandom), "centroid seeding strategy (random, spread)")
	analyzeCmd.Flags().BoolVar(&analyzeCircularHue, "circular-hue", false, "average hues on the colour wheel instead of linearly")
	analyzeCmd.Flags().StringVar(&analyzeCrop, "crop", "", "face-region rectangle as image fractions x,y,w,h (default 0.3,0.2,0.4,0.6)")
	analyzeCmd.Flags().BoolVar(&analyzeFullFrame, "full-frame", false, "analyse the whole image instead of the face-region crop")
	analyzeCmd.Flags().BoolVar(&analyzeShowPreview, "preview", false, "show colour swatches in terminal output")

	for _, flag := range []string{"colours", "seeding", "circular-hue"} {
		if err := viper.BindPFlag(flag, analyzeCmd.Flags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag: %v", err))
		}
	}
}

// runAnalyze executes the analyze command.
func runAnalyze(cmd *cobra.Command, args []string) error {
	imagePath := args[0]
	logger := newLogger()

	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	loader := image.NewFileLoader()
	img, err := loader.Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	bounds := img.Bounds()
	logger.Debug("image loaded", "path", imagePath, "size", fmt.Sprintf("%dx%d", bounds.Dx(), bounds.Dy()))

	region, err := resolveRegion(img)
	if err != nil {
		return err
	}
	logger.Debug("face region resolved", "size", fmt.Sprintf("%dx%d", region.Width, region.Height))

	extractor := colour.NewExtractor()
	if analyzeSeed >= 0 {
		extractor.UseSeed(analyzeSeed)
	}
	if err := extractor.UseSeeding(colour.Seeding(viper.GetString("seeding"))); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	classifier := tone.NewClassifier()
	classifier.UseCircularHue(viper.GetBool("circular-hue"))

	analyzer := tone.NewAnalyzer(extractor, classifier, tone.NewCatalog(), logger)

	result, err := analyzer.Analyze(region, viper.GetInt("colours"))
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	rendered, err := renderResult(result)
	if err != nil {
		return err
	}
	return writeOutput(rendered)
}

// resolveRegion carves the analysis region out of the loaded image, honouring
// the --full-frame and --crop flags.
func resolveRegion(img stdimage.Image) (colour.Region, error) {
	if analyzeFullFrame {
		return image.RegionFromImage(img)
	}

	crop := image.DefaultFaceCrop
	if analyzeCrop != "" {
		parsed, err := parseCropFractions(analyzeCrop)
		if err != nil {
			return colour.Region{}, fmt.Errorf("invalid --crop value: %w", err)
		}
		crop = parsed
	}
	return image.CropRegion(img, crop)
}

// parseCropFractions parses an "x,y,w,h" fraction list.
func parseCropFractions(s string) (image.CropFractions, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return image.CropFractions{}, fmt.Errorf("expected 4 comma-separated fractions, got %d", len(parts))
	}

	values := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return image.CropFractions{}, fmt.Errorf("fraction %d: %w", i+1, err)
		}
		values[i] = v
	}

	crop := image.CropFractions{X: values[0], Y: values[1], W: values[2], H: values[3]}
	if err := crop.Validate(); err != nil {
		return image.CropFractions{}, err
	}
	return crop, nil
}

// renderResult formats an analysis result according to the --format flag.
func renderResult(result *tone.Result) (string, error) {
	switch analyzeFormat {
	case "json":
		data, err := result.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to encode result: %w", err)
		}
		return string(data) + "\n", nil
	case "text":
		return renderTextReport(result, previewEnabled()), nil
	default:
		return "", fmt.Errorf("unknown output format: %s (valid formats: text, json)", analyzeFormat)
	}
}

// previewEnabled reports whether swatch previews should be rendered: only
// when requested, writing to stdout, and stdout is a terminal.
func previewEnabled() bool {
	if !analyzeShowPreview || analyzeOutput != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// writeOutput writes rendered output to the --output file or stdout.
func writeOutput(rendered string) error {
	if analyzeOutput == "" {
		fmt.Print(rendered)
		return nil
	}
	if err := os.WriteFile(analyzeOutput, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
