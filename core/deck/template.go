// core/deck/template.go
// Declarative card layouts. Each card is a table of field specs on the
// 8-column Fortran grid; the encoder pairs specs with values and renders.
// Keeping the column numbers here, as data, lets the tests pin the layout
// independently of the formatting logic.
package deck

import "dwdeck-core/field"

// Potential-card option codes (the program's term selectors).
const (
	optCentral   = 1.0
	optSurface   = 2.0
	optSpinOrbit = -4.0
)

// f8 places an 8-column F-format field at grid column col.
func f8(name string, col int, intDigits, decimals int, sign, zeroPad bool) field.Spec {
	return field.Spec{
		Name: name, Offset: col * 8, Width: 8,
		IntDigits: intDigits, Decimals: decimals,
		Sign: sign, ZeroPad: zeroPad,
	}
}

// Angular-range card: count, start, step (degrees).
var anglesSpecs = []field.Spec{
	f8("angle_count", 0, 2, 1, false, false),
	f8("angle_start", 1, 2, 1, false, false),
	f8("angle_step", 2, 2, 1, false, false),
}

// Quantum-number card, I3 fields: LMAX, NLTR, L-transfer, 2*J.
var quantumSpecs = []field.Spec{
	{Name: "lmax", Offset: 0, Width: 3, IntDigits: 2, Sign: true},
	{Name: "nltr", Offset: 3, Width: 3, IntDigits: 2, Sign: true},
	{Name: "l_transfer", Offset: 6, Width: 3, IntDigits: 2, Sign: true},
	{Name: "j_twice", Offset: 9, Width: 3, IntDigits: 2, Sign: true},
}

// Integration-parameter card. The radius field carries the bound/unbound
// sign convention.
var integrationSpecs = []field.Spec{
	f8("radial_step", 0, 2, 2, true, false),
	f8("r_origin", 1, 3, 1, true, false),
	f8("rmax", 2, 2, 1, true, false),
	f8("range_param", 4, 1, 1, false, false),
}

// Scattering-particle kinematics card: energy (or Q), masses, charges,
// Coulomb radius, 2*spin. The projectile's spin field is rendered unsigned
// (deuteron " 2.0"), the ejectile's signed ("+01."); both layouts are fixed
// template data.
var projectileKinSpecs = []field.Spec{
	f8("energy", 0, 2, 3, true, false),
	f8("mass", 1, 2, 1, false, false),
	f8("charge", 2, 2, 1, false, false),
	f8("target_mass", 3, 2, 1, false, false),
	f8("target_charge", 4, 2, 1, false, false),
	f8("coulomb_radius", 5, 3, 3, false, true),
	f8("spin_twice", 8, 2, 1, false, false),
}

var ejectileKinSpecs = []field.Spec{
	f8("q_value", 0, 2, 3, true, false),
	f8("mass", 1, 2, 1, false, false),
	f8("charge", 2, 2, 1, false, false),
	f8("target_mass", 3, 2, 1, false, false),
	f8("target_charge", 4, 2, 1, false, false),
	f8("coulomb_radius", 5, 3, 3, false, true),
	f8("spin_twice", 8, 2, 0, true, false),
}

// Bound-state kinematics card: binding energy and the core pairing.
var boundKinSpecs = []field.Spec{
	f8("binding_energy", 0, 2, 3, true, false),
	f8("mass", 1, 2, 1, false, false),
	f8("charge", 2, 2, 1, false, false),
	f8("core_mass", 3, 2, 1, false, false),
	f8("core_charge", 4, 2, 1, false, false),
	f8("coulomb_radius", 5, 2, 2, true, false),
	f8("spin_twice", 8, 2, 0, true, false),
}

// Optical-potential card, shared by every scattering particle and term:
// option code, then two (depth, radius, diffuseness) triples.
var potentialSpecs = []field.Spec{
	f8("option", 0, 2, 0, true, false),
	f8("depth_a", 1, 2, 3, true, false),
	f8("radius_a", 2, 2, 3, true, false),
	f8("diffuseness_a", 3, 2, 3, true, false),
	f8("depth_b", 5, 2, 3, true, false),
	f8("radius_b", 6, 2, 3, true, false),
	f8("diffuseness_b", 7, 2, 3, true, false),
}

// Bound-state well card: option, trial depth (negative = search), geometry,
// Thomas spin-orbit factor.
var boundWellSpecs = []field.Spec{
	f8("well_option", 0, 2, 0, true, false),
	f8("trial_depth", 1, 2, 0, true, false),
	f8("well_radius", 2, 2, 2, true, false),
	f8("well_diffuseness", 3, 2, 2, true, false),
	f8("lambda_so", 4, 2, 1, false, false),
}

// Bound-state quantum card: nodes, L, 2*J, 2*s, FISW, two reserved fields.
var boundQuantumSpecs = []field.Spec{
	f8("nodes", 0, 2, 0, true, false),
	f8("l", 1, 2, 0, true, false),
	f8("j_twice", 2, 2, 0, true, false),
	f8("spin_twice", 3, 2, 0, true, false),
	f8("fisw", 4, 2, 1, true, false),
	f8("reserved_a", 5, 2, 0, true, false),
	f8("reserved_b", 6, 2, 2, true, false),
}
