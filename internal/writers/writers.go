// internal/writers/writers.go
// Writers turn a decoded result report into one of the supported output
// formats (format → handler registry). The tabular formats flatten every
// angular point to one row; json carries the full report, gaps included.
package writers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"dwdeck-core/result"
)

// Options tweaks row rendering for the tabular formats.
type Options struct {
	Native bool // emit the file's native unit column instead of mb/sr
	Header bool
}

// ReportWriters maps a format name to its handler.
var ReportWriters = map[string]func(w io.Writer, rep result.Report, opt Options) error{}

// Register installs a handler for a format (last registration wins).
func Register(format string, fn func(io.Writer, result.Report, Options) error) {
	ReportWriters[format] = fn
}

// Formats lists the registered format names.
func Formats() []string {
	names := make([]string, 0, len(ReportWriters))
	for name := range ReportWriters {
		names = append(names, name)
	}
	return names
}

// Write dispatches rep to the handler registered for format.
func Write(format string, w io.Writer, rep result.Report, opt Options) error {
	fn, ok := ReportWriters[format]
	if !ok {
		return fmt.Errorf("writers: unknown output format %q", format)
	}
	return fn(w, rep, opt)
}

var tableHeader = []string{
	"state_index", "ex_kev", "theta_deg", "dsigma_mb_sr", "unit", "total_mb",
}

// rowsOf flattens a report into string rows matching tableHeader.
func rowsOf(rep result.Report, opt Options) [][]string {
	var rows [][]string
	for _, st := range rep.States {
		total := ""
		if st.TotalMB != nil {
			total = strconv.FormatFloat(*st.TotalMB, 'g', -1, 64)
		}
		for _, pt := range st.Points {
			val, unit := pt.MilliBarn, result.UnitMilliBarn
			if opt.Native {
				val, unit = pt.Native, st.Unit
			}
			rows = append(rows, []string{
				strconv.Itoa(st.Index),
				strconv.FormatFloat(st.ExKeV, 'f', 0, 64),
				strconv.FormatFloat(pt.ThetaDeg, 'g', -1, 64),
				strconv.FormatFloat(val, 'g', -1, 64),
				unit,
				total,
			})
		}
	}
	return rows
}

func writeTSV(w io.Writer, rep result.Report, opt Options) error {
	if opt.Header {
		if err := tsvRow(w, tableHeader); err != nil {
			return err
		}
	}
	for _, row := range rowsOf(rep, opt) {
		if err := tsvRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func tsvRow(w io.Writer, cols []string) error {
	for i, c := range cols {
		if i > 0 {
			if _, err := io.WriteString(w, "\t"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, c); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func writeCSV(w io.Writer, rep result.Report, opt Options) error {
	cw := csv.NewWriter(w)
	if opt.Header {
		if err := cw.Write(tableHeader); err != nil {
			return err
		}
	}
	for _, row := range rowsOf(rep, opt) {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, rep result.Report, _ Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func init() {
	Register("tsv", writeTSV)
	Register("csv", writeCSV)
	Register("json", writeJSON)
}
