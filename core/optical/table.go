// core/optical/table.go
package optical

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/interp"
)

// Table is a depth-vs-energy point set evaluated by piecewise-linear
// interpolation. Two points reduce to the plain slope model; more points let
// a channel follow an empirical fit directly. Outside the tabulated range the
// end segments are extended — deliberately, matching the slope model's lack
// of an extrapolation guard.
type Table struct {
	EnergiesMeV []float64 `yaml:"energies_mev"`
	DepthsMeV   []float64 `yaml:"depths_mev"`

	pl     interp.PiecewiseLinear
	fitted bool
}

// Fit validates the points and prepares the interpolant. Call once after
// loading configuration; At falls back to direct evaluation when unfitted.
func (t *Table) Fit() error {
	if len(t.EnergiesMeV) != len(t.DepthsMeV) {
		return fmt.Errorf("optical: table has %d energies but %d depths",
			len(t.EnergiesMeV), len(t.DepthsMeV))
	}
	if len(t.EnergiesMeV) < 2 {
		return fmt.Errorf("optical: table needs at least 2 points, got %d", len(t.EnergiesMeV))
	}
	if !sort.Float64sAreSorted(t.EnergiesMeV) {
		return fmt.Errorf("optical: table energies must be strictly increasing")
	}
	for i := 1; i < len(t.EnergiesMeV); i++ {
		if t.EnergiesMeV[i] == t.EnergiesMeV[i-1] {
			return fmt.Errorf("optical: duplicate table energy %g", t.EnergiesMeV[i])
		}
	}
	if err := t.pl.Fit(t.EnergiesMeV, t.DepthsMeV); err != nil {
		return fmt.Errorf("optical: %w", err)
	}
	t.fitted = true
	return nil
}

// At evaluates the table at energy e, extending end segments linearly.
func (t *Table) At(e float64) float64 {
	xs, ys := t.EnergiesMeV, t.DepthsMeV
	n := len(xs)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return ys[0]
	}
	switch {
	case e <= xs[0]:
		s := (ys[1] - ys[0]) / (xs[1] - xs[0])
		return ys[0] + s*(e-xs[0])
	case e >= xs[n-1]:
		s := (ys[n-1] - ys[n-2]) / (xs[n-1] - xs[n-2])
		return ys[n-1] + s*(e-xs[n-1])
	}
	if t.fitted {
		return t.pl.Predict(e)
	}
	// Unfitted fallback: locate the bracketing segment directly.
	i := sort.SearchFloat64s(xs, e)
	if xs[i] == e {
		return ys[i]
	}
	s := (ys[i] - ys[i-1]) / (xs[i] - xs[i-1])
	return ys[i-1] + s*(e-xs[i-1])
}
