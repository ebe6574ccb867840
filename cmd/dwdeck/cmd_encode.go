// cmd/dwdeck/cmd_encode.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"dwdeck-core/state"
	"dwdeck-core/table"
	"dwdeck/internal/batch"
	"dwdeck/internal/config"
	"dwdeck/internal/writers"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	statesPath string
	outPath    string
	strict     bool
	threads    int
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a state table into a DWUCK4 input deck",
	Long: `Reads an excitation-state table (CSV: ex_kev, orbital, n, l, 2j, nodes)
and writes one DWUCK4 input block per state, terminated by the end-of-data
card. States whose binding energy comes out negative get the bound-state
recipe; the rest get the unbound one.

States that fail to encode are skipped with a warning; pass --strict to
abort on the first bad state instead.`,
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().StringVarP(&statesPath, "states", "s", "", "State table (CSV) to encode (required)")
	encodeCmd.Flags().StringVarP(&outPath, "output", "o", "-", "Output deck path ('-' for stdout)")
	encodeCmd.Flags().BoolVar(&strict, "strict", false, "Abort on the first state that fails to encode")
	encodeCmd.Flags().IntVar(&threads, "threads", 0, "Worker count (0 = all CPUs)")
	_ = encodeCmd.MarkFlagRequired("states")
}

func runEncode(cmd *cobra.Command, args []string) error {
	recs, err := table.Load(statesPath)
	if err != nil {
		return err
	}
	return encodeRecords(recs)
}

// encodeRecords drives a batch encode for both the encode and scan commands.
func encodeRecords(recs []state.Record) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	res, err := batch.EncodeStates(ctx, logger, cfg, recs, batch.Options{
		Threads: threads,
		Strict:  strict,
	})
	if err != nil {
		return err
	}
	for _, se := range res.Skipped {
		fmt.Fprintf(os.Stderr, "warning: %v\n", se)
	}

	out, closeOut, err := openOutput(outPath)
	if err != nil {
		return err
	}
	defer closeOut()

	if _, err := io.WriteString(out, res.Deck.String()); err != nil {
		if writers.IsBrokenPipe(err) {
			return nil
		}
		return fmt.Errorf("write deck: %w", err)
	}
	logger.Debug("deck written",
		zap.String("run_id", res.RunID),
		zap.String("path", outPath),
		zap.Int("lines", len(res.Deck.Lines)))
	if len(res.Skipped) > 0 {
		return fmt.Errorf("%d of %d states failed to encode", len(res.Skipped), len(recs))
	}
	return nil
}

// signalContext returns a context cancelled by SIGINT/SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// openOutput opens path for writing; "-" means stdout.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open output: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
