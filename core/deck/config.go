// core/deck/config.go
// Reaction-level configuration consumed by the encoder. One Config describes
// one reaction setup (beam, channels, integration grid); it is explicit
// input, never shared state, so independent reactions can encode
// concurrently without cross-contamination.
package deck

import (
	"fmt"
	"strings"

	"dwdeck-core/optical"
	"dwdeck-core/state"
)

// AngleRange is the angular grid card: number of angles, first angle and
// step, all in degrees.
type AngleRange struct {
	Count float64 `yaml:"count"`
	Start float64 `yaml:"start"`
	Step  float64 `yaml:"step"`
}

// Integration holds the radial integration parameters that do not depend on
// the bound/unbound classification. The integration radius itself comes from
// the state policy, sign included.
type Integration struct {
	StepFm     float64 `yaml:"step_fm"`     // radial mesh, fm
	ROriginFm  float64 `yaml:"r_origin_fm"` // lower cutoff, fm
	RangeParam float64 `yaml:"range_param"` // finite-range parameter
}

// Kinematics describes one scattering particle: masses and charges in the
// card's units, plus its energy-dependent optical channel.
type Kinematics struct {
	MassAMU       float64         `yaml:"mass_amu"`
	Charge        float64         `yaml:"charge"`
	TargetMass    float64         `yaml:"target_mass"`
	TargetCharge  float64         `yaml:"target_charge"`
	CoulombRadius float64         `yaml:"coulomb_radius"`
	SpinTwice     float64         `yaml:"spin_twice"` // 2*s
	Channel       optical.Channel `yaml:"channel"`
}

// BoundState describes the transferred-nucleon well. A negative trial depth
// asks the program to search the depth that reproduces the binding energy.
type BoundState struct {
	MassAMU       float64      `yaml:"mass_amu"`
	Charge        float64      `yaml:"charge"`
	CoreMass      float64      `yaml:"core_mass"`
	CoreCharge    float64      `yaml:"core_charge"`
	CoulombRadius float64      `yaml:"coulomb_radius"`
	SpinTwice     float64      `yaml:"spin_twice"`
	WellOption    float64      `yaml:"well_option"`
	TrialDepth    float64      `yaml:"trial_depth"`
	Well          optical.Term `yaml:"well"` // geometry only; Depth ignored
	LambdaSO      float64      `yaml:"lambda_so"`
	FISW          float64      `yaml:"fisw"`
}

// Config is everything one reaction needs to turn state records into cards.
type Config struct {
	Title         string            `yaml:"title"` // e.g. "36S(d,p)@ 8MeV"
	BeamEnergyMeV float64           `yaml:"beam_energy_mev"`
	Constants     state.Constants   `yaml:"constants"`
	Policies      state.PolicyTable `yaml:"policies"`
	Angles        AngleRange        `yaml:"angles"`
	NLTR          int               `yaml:"nltr"`
	Integration   Integration       `yaml:"integration"`
	Projectile    Kinematics        `yaml:"projectile"`
	Ejectile      Kinematics        `yaml:"ejectile"`
	BoundState    BoundState        `yaml:"bound_state"`
}

// Validate checks the parts of a Config the encoder cannot express as a
// field error: control codes must be 16 digits, titles must exist, tables
// must fit.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("deck: config has no title")
	}
	for _, p := range []state.Policy{c.Policies.Bound, c.Policies.Unbound} {
		if len(p.ControlCode) != 16 {
			return fmt.Errorf("deck: control code %q is not 16 digits", p.ControlCode)
		}
		for _, r := range p.ControlCode {
			if r < '0' || r > '9' {
				return fmt.Errorf("deck: control code %q is not 16 digits", p.ControlCode)
			}
		}
	}
	if c.Policies.Bound.RMax <= 0 {
		return fmt.Errorf("deck: bound integration radius must be positive, got %g", c.Policies.Bound.RMax)
	}
	if c.Policies.Unbound.RMax >= 0 {
		return fmt.Errorf("deck: unbound integration radius must be negative, got %g", c.Policies.Unbound.RMax)
	}
	for name, ts := range map[string]optical.TableSet{
		"projectile": c.Projectile.Channel.Tables,
		"ejectile":   c.Ejectile.Channel.Tables,
	} {
		for _, tab := range []*optical.Table{ts.Real, ts.VolImag, ts.SurfImag, ts.RealSO, ts.ImagSO} {
			if tab == nil {
				continue
			}
			if err := tab.Fit(); err != nil {
				return fmt.Errorf("deck: %s channel: %w", name, err)
			}
		}
	}
	return nil
}
