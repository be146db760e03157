// Package cli provides the command-line interface for ChromaTone.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chromatone/chromatone/internal/version"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "chromatone",
	Short: "Skin tone analysis and colour recommendation",
	Long: `ChromaTone analyses the face region of a photograph, estimates the
subject's skin colour by clustering sampled pixels, and derives a styling
recommendation: clothing and makeup palettes, undertone classification, and
example outfits.

The analysis is a pure, synchronous pipeline: sample and filter the pixel
region, cluster with k-means, classify undertone and lightness, and look up
the recommendation catalog.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./chromatone.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
	if err := viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(scaleCmd)
}

// initConfig reads the config file and environment variables if present.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("chromatone")
	}

	viper.SetEnvPrefix("CHROMATONE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// newLogger builds the hclog logger used across commands, with the level
// driven by the verbose/quiet flags.
func newLogger() hclog.Logger {
	level := hclog.Info
	if viper.GetBool("verbose") {
		level = hclog.Debug
	}
	if viper.GetBool("quiet") {
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "chromatone",
		Level:  level,
		Output: os.Stderr,
	})
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
