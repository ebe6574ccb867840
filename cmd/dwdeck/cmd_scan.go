// cmd/dwdeck/cmd_scan.go
package main

import (
	"dwdeck/internal/batch"

	"github.com/spf13/cobra"
)

var (
	scanFrom    float64
	scanTo      float64
	scanStep    float64
	scanOrbital string
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Encode an excitation-energy sweep for one orbital",
	Long: `Generates a deck covering a range of hypothetical excitation energies in a
single orbital, one input block per step. Useful for mapping where a level
would cross the particle-emission threshold: states below it come out in
the bound recipe, states above in the unbound one.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().Float64Var(&scanFrom, "from", 0, "First excitation energy (keV)")
	scanCmd.Flags().Float64Var(&scanTo, "to", 0, "Last excitation energy (keV, inclusive)")
	scanCmd.Flags().Float64Var(&scanStep, "step", 100, "Sweep step (keV)")
	scanCmd.Flags().StringVar(&scanOrbital, "orbital", "", "Transferred orbital label, e.g. 0f7/2 (required)")
	scanCmd.Flags().StringVarP(&outPath, "output", "o", "-", "Output deck path ('-' for stdout)")
	scanCmd.Flags().BoolVar(&strict, "strict", false, "Abort on the first state that fails to encode")
	scanCmd.Flags().IntVar(&threads, "threads", 0, "Worker count (0 = all CPUs)")
	_ = scanCmd.MarkFlagRequired("orbital")
	_ = scanCmd.MarkFlagRequired("to")
}

func runScan(cmd *cobra.Command, args []string) error {
	recs, err := batch.ScanStates(scanFrom, scanTo, scanStep, scanOrbital)
	if err != nil {
		return err
	}
	return encodeRecords(recs)
}
