// cmd/dwdeck/main.go
package main

import (
	"fmt"
	"os"

	"dwdeck/internal/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dwdeck",
	Short: "dwdeck - DWUCK4 input deck encoder and output decoder",
	Long: `dwdeck bridges a modern workflow and the DWUCK4 DWBA code.

It encodes excitation-state tables into fixed-column input decks, switching
each state between the bound and unbound form-factor recipes based on its
derived binding energy, and decodes DWUCK4 output listings back into angular
distribution tables in mb/sr.

Reaction parameters (masses, optical potentials, policies) come from a YAML
parameter file; without one, a built-in 36S(d,p) parameter set is used.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the dwdeck version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dwdeck %s\n", version.Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Reaction parameter file (YAML; default: built-in 36S(d,p) set)")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
