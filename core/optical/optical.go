// core/optical/optical.go
// Optical-model potentials for one reaction channel and their energy
// dependence. Geometry (radius, diffuseness) is energy-independent; only
// depths move, linearly, with channel energy. Depth values carry their
// conventional signs explicitly — the sign is part of the card contract,
// so nothing here normalizes or flips it.
package optical

// Term is one potential term: a depth (MeV, signed per convention) with its
// Woods-Saxon geometry in fm.
type Term struct {
	Depth       float64 `yaml:"depth"`
	Radius      float64 `yaml:"radius"`
	Diffuseness float64 `yaml:"diffuseness"`
}

// Potential groups the five terms a particle's card block carries.
type Potential struct {
	Real     Term `yaml:"real"`      // real central
	VolImag  Term `yaml:"vol_imag"`  // volume imaginary
	SurfImag Term `yaml:"surf_imag"` // surface imaginary
	RealSO   Term `yaml:"real_so"`   // real spin-orbit
	ImagSO   Term `yaml:"imag_so"`   // imaginary spin-orbit
}

// Slopes are depth derivatives with respect to channel energy, MeV per MeV.
// A zero slope holds the term at its reference depth; in particular the
// volume-imaginary term stays constant unless a slope is supplied.
type Slopes struct {
	Real     float64 `yaml:"real"`
	VolImag  float64 `yaml:"vol_imag"`
	SurfImag float64 `yaml:"surf_imag"`
	RealSO   float64 `yaml:"real_so"`
	ImagSO   float64 `yaml:"imag_so"`
}

// Channel is the energy-dependent potential model for one physical channel
// (incoming projectile or outgoing ejectile). Reference depths are taken at
// RefEnergyMeV; At extrapolates linearly with no domain guard — the fit range
// is the caller's concern. Point tables, when present, take precedence over
// the corresponding slope.
type Channel struct {
	RefEnergyMeV float64   `yaml:"ref_energy_mev"`
	Base         Potential `yaml:"potential"`
	Slopes       Slopes    `yaml:"slopes"`
	Tables       TableSet  `yaml:"tables,omitempty"`
}

// TableSet optionally replaces individual slope models with tabulated
// depth-vs-energy points.
type TableSet struct {
	Real     *Table `yaml:"real,omitempty"`
	VolImag  *Table `yaml:"vol_imag,omitempty"`
	SurfImag *Table `yaml:"surf_imag,omitempty"`
	RealSO   *Table `yaml:"real_so,omitempty"`
	ImagSO   *Table `yaml:"imag_so,omitempty"`
}

// At returns the potential at channel energy e (MeV). Geometry is copied
// unchanged from the reference set.
func (c Channel) At(e float64) Potential {
	de := e - c.RefEnergyMeV
	p := c.Base

	depth := func(ref float64, slope float64, tab *Table) float64 {
		if tab != nil {
			return tab.At(e)
		}
		return ref + slope*de
	}

	p.Real.Depth = depth(c.Base.Real.Depth, c.Slopes.Real, c.Tables.Real)
	p.VolImag.Depth = depth(c.Base.VolImag.Depth, c.Slopes.VolImag, c.Tables.VolImag)
	p.SurfImag.Depth = depth(c.Base.SurfImag.Depth, c.Slopes.SurfImag, c.Tables.SurfImag)
	p.RealSO.Depth = depth(c.Base.RealSO.Depth, c.Slopes.RealSO, c.Tables.RealSO)
	p.ImagSO.Depth = depth(c.Base.ImagSO.Depth, c.Slopes.ImagSO, c.Tables.ImagSO)
	return p
}
