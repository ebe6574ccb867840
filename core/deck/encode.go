// core/deck/encode.go
package deck

import (
	"fmt"
	"strings"

	"dwdeck-core/field"
	"dwdeck-core/optical"
	"dwdeck-core/state"
)

// Terminator is the fixed end-of-data marker closing every deck.
const Terminator = "9                   END OF DATA for DWUCK4"

// LinesPerState is the card count of one state block.
const LinesPerState = 15

// controlColumns is the width reserved for the control code on the title card.
const controlColumns = 20

// Deck is an encoded card image: per-state blocks in input order plus the
// terminator.
type Deck struct {
	Lines []string
}

// String renders the deck as newline-terminated text.
func (d Deck) String() string {
	return strings.Join(d.Lines, "\n") + "\n"
}

// renderLine pairs specs with values on a fresh space-filled line.
func renderLine(card string, specs []field.Spec, vals []float64) (string, error) {
	if len(specs) != len(vals) {
		return "", fmt.Errorf("card %s: %d specs but %d values", card, len(specs), len(vals))
	}
	width := 0
	for _, s := range specs {
		if s.End() > width {
			width = s.End()
		}
	}
	line := []byte(strings.Repeat(" ", width))
	for i, s := range specs {
		txt, err := field.Format(vals[i], s)
		if err != nil {
			return "", fmt.Errorf("card %s: %w", card, err)
		}
		field.Place(line, s, txt)
	}
	return string(line), nil
}

// renderIntLine is renderLine for I-format cards.
func renderIntLine(card string, specs []field.Spec, vals []int) (string, error) {
	if len(specs) != len(vals) {
		return "", fmt.Errorf("card %s: %d specs but %d values", card, len(specs), len(vals))
	}
	width := 0
	for _, s := range specs {
		if s.End() > width {
			width = s.End()
		}
	}
	line := []byte(strings.Repeat(" ", width))
	for i, s := range specs {
		txt, err := field.FormatInt(vals[i], s)
		if err != nil {
			return "", fmt.Errorf("card %s: %w", card, err)
		}
		field.Place(line, s, txt)
	}
	return string(line), nil
}

// potentialCards lays a particle's potential over the three shared card
// templates: central + volume imaginary, surface imaginary, spin-orbit.
func potentialCards(p optical.Potential) [][]float64 {
	return [][]float64{
		{optCentral, p.Real.Depth, p.Real.Radius, p.Real.Diffuseness,
			p.VolImag.Depth, p.VolImag.Radius, p.VolImag.Diffuseness},
		{optSurface, 0, 0, 0,
			p.SurfImag.Depth, p.SurfImag.Radius, p.SurfImag.Diffuseness},
		{optSpinOrbit, p.RealSO.Depth, p.RealSO.Radius, p.RealSO.Diffuseness,
			p.ImagSO.Depth, p.ImagSO.Radius, p.ImagSO.Diffuseness},
	}
}

// EncodeOne renders the full card block for a single state. The block is a
// pure function of the record and config; errors carry the state's
// excitation energy and the offending card and field.
func EncodeOne(rec state.Record, cfg Config) ([]string, error) {
	drv, err := state.Derive(rec, cfg.Constants, cfg.Policies)
	if err != nil {
		return nil, err
	}
	pol := drv.Policy

	annotate := func(err error) error {
		if err == nil {
			return nil
		}
		return fmt.Errorf("state %.0f keV: %w", rec.ExKeV, err)
	}

	lines := make([]string, 0, LinesPerState)

	// Title card: control code then the human-readable state label. The
	// label is an echo the result decoder keys on, so its shape is part of
	// the round-trip contract.
	title := fmt.Sprintf("%-*s%s    %.0f keV  %s %s",
		controlColumns, pol.ControlCode, cfg.Title, rec.ExKeV, rec.Orbital, pol.TitleTag)
	lines = append(lines, title)

	l, err := renderLine("angles", anglesSpecs,
		[]float64{cfg.Angles.Count, cfg.Angles.Start, cfg.Angles.Step})
	if err != nil {
		return nil, annotate(err)
	}
	lines = append(lines, l)

	l, err = renderIntLine("quantum", quantumSpecs,
		[]int{pol.LMax, cfg.NLTR, rec.L, rec.J2})
	if err != nil {
		return nil, annotate(err)
	}
	lines = append(lines, l)

	l, err = renderLine("integration", integrationSpecs,
		[]float64{cfg.Integration.StepFm, cfg.Integration.ROriginFm, pol.RMax, cfg.Integration.RangeParam})
	if err != nil {
		return nil, annotate(err)
	}
	lines = append(lines, l)

	// Incoming channel at the beam energy.
	proj := cfg.Projectile
	l, err = renderLine("projectile", projectileKinSpecs, []float64{
		cfg.BeamEnergyMeV, proj.MassAMU, proj.Charge,
		proj.TargetMass, proj.TargetCharge, proj.CoulombRadius, proj.SpinTwice,
	})
	if err != nil {
		return nil, annotate(err)
	}
	lines = append(lines, l)
	for i, vals := range potentialCards(proj.Channel.At(cfg.BeamEnergyMeV)) {
		l, err = renderLine(fmt.Sprintf("projectile potential %d", i+1), potentialSpecs, vals)
		if err != nil {
			return nil, annotate(err)
		}
		lines = append(lines, l)
	}

	// Outgoing channel at beam energy + Q.
	ej := cfg.Ejectile
	outE := cfg.BeamEnergyMeV + drv.QMeV
	l, err = renderLine("ejectile", ejectileKinSpecs, []float64{
		drv.QMeV, ej.MassAMU, ej.Charge,
		ej.TargetMass, ej.TargetCharge, ej.CoulombRadius, ej.SpinTwice,
	})
	if err != nil {
		return nil, annotate(err)
	}
	lines = append(lines, l)
	for i, vals := range potentialCards(ej.Channel.At(outE)) {
		l, err = renderLine(fmt.Sprintf("ejectile potential %d", i+1), potentialSpecs, vals)
		if err != nil {
			return nil, annotate(err)
		}
		lines = append(lines, l)
	}

	// Bound-state well for the transferred nucleon.
	bs := cfg.BoundState
	l, err = renderLine("bound state", boundKinSpecs, []float64{
		drv.BindMeV, bs.MassAMU, bs.Charge,
		bs.CoreMass, bs.CoreCharge, bs.CoulombRadius, bs.SpinTwice,
	})
	if err != nil {
		return nil, annotate(err)
	}
	lines = append(lines, l)

	l, err = renderLine("bound well", boundWellSpecs, []float64{
		bs.WellOption, bs.TrialDepth, bs.Well.Radius, bs.Well.Diffuseness, bs.LambdaSO,
	})
	if err != nil {
		return nil, annotate(err)
	}
	lines = append(lines, l)

	l, err = renderLine("bound quantum", boundQuantumSpecs, []float64{
		float64(rec.Nodes), float64(rec.L), float64(rec.J2), bs.SpinTwice, bs.FISW, 0, 0,
	})
	if err != nil {
		return nil, annotate(err)
	}
	lines = append(lines, l)

	return lines, nil
}

// Encode renders a whole state table into one deck, blocks in input order,
// terminator appended. It fails on the first bad state; callers that prefer
// collecting per-state errors drive EncodeOne themselves.
func Encode(recs []state.Record, cfg Config) (Deck, error) {
	var d Deck
	for _, rec := range recs {
		block, err := EncodeOne(rec, cfg)
		if err != nil {
			return Deck{}, err
		}
		d.Lines = append(d.Lines, block...)
	}
	d.Lines = append(d.Lines, Terminator)
	return d, nil
}
