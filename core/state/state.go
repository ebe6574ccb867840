// core/state/state.go
// State records and the derivation of per-state reaction parameters.
//
// A state at excitation Ex (keV) shifts the ground-state constants by
// Ex/1000 MeV: the Q-value drops, the binding energy rises. The sign of the
// derived binding energy classifies the state as bound or unbound, and that
// classification selects the control code, LMAX and integration-radius
// convention of the generated cards. For unbound states the radius magnitude
// is emitted negative: the sign itself is the mode switch the downstream
// program reads, not a magnitude choice.
package state

import (
	"fmt"
	"math"

	"dwdeck-core/orbital"
)

// Record is one input row: a nuclear state to encode.
type Record struct {
	ExKeV   float64 // excitation energy, keV, >= 0
	Orbital string  // spectroscopic label, e.g. "0f7/2"
	N       int     // principal quantum number, counting from 1
	L       int     // orbital angular momentum
	J2      int     // 2*J
	Nodes   int     // radial node count
}

// Constants are the fixed ground-state reaction quantities, MeV.
type Constants struct {
	QGroundMeV    float64 `yaml:"q_ground_mev"`
	BindGroundMeV float64 `yaml:"bind_ground_mev"`
}

// Class is the bound/unbound classification.
type Class int

const (
	Bound Class = iota
	Unbound
)

func (c Class) String() string {
	if c == Bound {
		return "bound"
	}
	return "unbound"
}

// Policy carries everything the card templates need that depends on the
// classification. It is data, not behavior: the two-entry table below is the
// whole state machine.
type Policy struct {
	ControlCode string  `yaml:"control_code"` // 16-digit program directive
	TitleTag    string  `yaml:"title_tag"`    // appended to the title card
	LMax        int     `yaml:"lmax"`
	RMax        float64 `yaml:"rmax"` // sign included; negative switches integration mode
}

// PolicyTable maps each classification to its policy.
type PolicyTable struct {
	Bound   Policy `yaml:"bound"`
	Unbound Policy `yaml:"unbound"`
}

// For returns the policy for a classification.
func (t PolicyTable) For(c Class) Policy {
	if c == Bound {
		return t.Bound
	}
	return t.Unbound
}

// DefaultPolicies returns the conventional control codes and radii.
func DefaultPolicies() PolicyTable {
	return PolicyTable{
		Bound:   Policy{ControlCode: "1001000000200000", TitleTag: "bound ZR", LMax: 30, RMax: 50.0},
		Unbound: Policy{ControlCode: "1011000030000000", TitleTag: "unbound ZR", LMax: 15, RMax: -15.0},
	}
}

// Derived holds the per-state quantities the encoder consumes.
type Derived struct {
	QMeV    float64
	BindMeV float64
	Class   Class
	Policy  Policy
}

// Derive computes Q, binding energy and classification for one record and
// validates its quantum numbers against the orbital label. Errors are
// annotated with the excitation energy so a faulty row can be located.
func Derive(rec Record, consts Constants, policies PolicyTable) (Derived, error) {
	if math.IsNaN(rec.ExKeV) || math.IsInf(rec.ExKeV, 0) {
		return Derived{}, fmt.Errorf("state %v keV: excitation energy is not finite", rec.ExKeV)
	}
	if rec.ExKeV < 0 {
		return Derived{}, fmt.Errorf("state %.0f keV: negative excitation energy", rec.ExKeV)
	}
	orb, err := orbital.Parse(rec.Orbital)
	if err != nil {
		return Derived{}, fmt.Errorf("state %.0f keV: %w", rec.ExKeV, err)
	}
	if err := orb.Validate(rec.N, rec.L, rec.J2, rec.Nodes); err != nil {
		return Derived{}, fmt.Errorf("state %.0f keV: %w", rec.ExKeV, err)
	}

	d := Derived{
		QMeV:    consts.QGroundMeV - rec.ExKeV/1000.0,
		BindMeV: consts.BindGroundMeV + rec.ExKeV/1000.0,
	}
	if d.BindMeV < 0 {
		d.Class = Bound
	} else {
		d.Class = Unbound
	}
	d.Policy = policies.For(d.Class)
	return d, nil
}
