// core/table/table.go
// Loads state tables from CSV. One row per state:
//
//	Ex_keV, orbital, n, L, j_times_2, nodes[, Q_MeV, E_bind_MeV]
//
// The trailing Q/binding columns are legacy echoes of the reaction
// constants; derivation always works from the configured ground-state
// constants, so those columns are accepted and ignored. Blank rows and
// #-comment rows are skipped.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"dwdeck-core/state"
)

var wantHeader = []string{"Ex_keV", "orbital", "n", "L", "j_times_2", "nodes"}

// Read parses a state table from r. name is used in error messages.
func Read(r io.Reader, name string) ([]state.Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // optional trailing columns
	cr.Comment = '#'

	var recs []state.Record
	header := true
	row := 0
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		row++
		if blank(fields) {
			continue
		}
		if header && looksLikeHeader(fields) {
			header = false
			continue
		}
		header = false

		rec, err := parseRow(fields)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, row, err)
		}
		recs = append(recs, rec)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%s: no states found", name)
	}
	return recs, nil
}

// Load reads a state table from a file.
func Load(path string) ([]state.Record, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return Read(fh, path)
}

func blank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func looksLikeHeader(fields []string) bool {
	if len(fields) < len(wantHeader) {
		return false
	}
	// The first column of a data row is numeric; a header's is not.
	_, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	return err != nil
}

func parseRow(fields []string) (state.Record, error) {
	var rec state.Record
	if len(fields) < 6 {
		return rec, fmt.Errorf("want at least 6 columns (%s), got %d",
			strings.Join(wantHeader, ", "), len(fields))
	}

	ex, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return rec, fmt.Errorf("bad Ex_keV %q: %v", fields[0], err)
	}
	if math.IsNaN(ex) || math.IsInf(ex, 0) {
		// ParseFloat accepts "nan" and "inf"; neither is a usable energy.
		return rec, fmt.Errorf("bad Ex_keV %q: not a finite number", fields[0])
	}
	rec.ExKeV = ex
	rec.Orbital = strings.TrimSpace(fields[1])

	ints := []struct {
		name string
		dst  *int
		col  int
	}{
		{"n", &rec.N, 2},
		{"L", &rec.L, 3},
		{"j_times_2", &rec.J2, 4},
		{"nodes", &rec.Nodes, 5},
	}
	for _, f := range ints {
		v, err := strconv.Atoi(strings.TrimSpace(fields[f.col]))
		if err != nil {
			return rec, fmt.Errorf("bad %s %q: %v", f.name, fields[f.col], err)
		}
		*f.dst = v
	}
	return rec, nil
}
