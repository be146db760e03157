package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/chromatone/chromatone/internal/tone"
)

var scaleShowPreview bool

// scaleCmd prints the ten-level skin tone scale the classifier maps onto.
var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Print the skin tone scale",
	Long: `Print the ten-level skin tone scale used by the classifier, from
Porcelain (level 1, lightest) to Ebony (level 10, darkest), with the
representative hex swatch for each level.`,
	Run: func(cmd *cobra.Command, args []string) {
		preview := scaleShowPreview && term.IsTerminal(int(os.Stdout.Fd()))

		table := NewTable([]string{"Level", "Name", "Hex"})
		for _, level := range tone.Scale() {
			table.AddRow([]string{strconv.Itoa(level.Level), level.Name, level.Hex})
		}
		fmt.Print(table.Render())

		if preview {
			fmt.Println()
			hexes := make([]string, 0, 10)
			for _, level := range tone.Scale() {
				hexes = append(hexes, level.Hex)
			}
			fmt.Println(swatchStrip(hexes))
		}
	},
}

func init() {
	scaleCmd.Flags().BoolVar(&scaleShowPreview, "preview", false, "show colour swatches in terminal output")
}
