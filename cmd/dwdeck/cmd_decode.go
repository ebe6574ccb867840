// cmd/dwdeck/cmd_decode.go
package main

import (
	"fmt"
	"io"
	"os"

	"dwdeck-core/result"
	"dwdeck/internal/config"
	"dwdeck/internal/writers"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	decodeIn     string
	decodeFormat string
	decodeTag    string
	decodeNative bool
	decodeNoHead bool
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode a DWUCK4 output listing into angular distribution tables",
	Long: `Scans a DWUCK4 output listing for the per-state result sections, extracts
each angular distribution and integrated cross-section, and converts
fm**2/sr values to mb/sr. Sections whose tables are missing or cut short
are reported as gaps; the remaining states still decode.

The reaction tag used to find sections defaults to the parameter file's
title and can be overridden with --tag.`,
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeIn, "input", "i", "-", "DWUCK4 output listing ('-' for stdin)")
	decodeCmd.Flags().StringVarP(&decodeFormat, "format", "f", "tsv", "Output format: tsv, csv or json")
	decodeCmd.Flags().StringVar(&decodeTag, "tag", "", "Reaction tag marking result sections (default: parameter file title)")
	decodeCmd.Flags().BoolVar(&decodeNative, "native", false, "Emit the listing's native unit instead of mb/sr")
	decodeCmd.Flags().BoolVar(&decodeNoHead, "no-header", false, "Suppress the header row in tabular formats")
	decodeCmd.Flags().StringVarP(&outPath, "output", "o", "-", "Output path ('-' for stdout)")
}

func runDecode(cmd *cobra.Command, args []string) error {
	tag := decodeTag
	if tag == "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		tag = cfg.Title
	}

	raw, err := readInput(decodeIn)
	if err != nil {
		return err
	}

	rep := result.Decode(raw, tag)
	logger.Debug("listing decoded",
		zap.Int("states", len(rep.States)),
		zap.Int("gaps", len(rep.Gaps)))

	out, closeOut, err := openOutput(outPath)
	if err != nil {
		return err
	}
	defer closeOut()

	err = writers.Write(decodeFormat, out, rep, writers.Options{
		Native: decodeNative,
		Header: !decodeNoHead,
	})
	if err != nil {
		if writers.IsBrokenPipe(err) {
			return nil
		}
		return err
	}

	for _, g := range rep.Gaps {
		fmt.Fprintf(os.Stderr, "warning: state %d (%s) line %d: %s\n", g.Index, g.Title, g.Line, g.Reason)
	}
	if len(rep.States) == 0 {
		return fmt.Errorf("no result sections found for tag %q", tag)
	}
	if len(rep.Gaps) > 0 {
		return fmt.Errorf("%d of %d sections failed to decode", len(rep.Gaps), len(rep.States)+len(rep.Gaps))
	}
	return nil
}

// readInput slurps path; "-" means stdin.
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return raw, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return raw, nil
}
