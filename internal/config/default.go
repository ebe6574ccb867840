// internal/config/default.go
package config

import (
	"dwdeck-core/deck"
	"dwdeck-core/optical"
	"dwdeck-core/state"
)

// Default returns the reference reaction setup: 36S(d,p)37S at 8 MeV
// deuterons, ground-state optical potentials for both channels, zero depth
// slopes. Slope values are deliberately data, not constants: the empirical
// fits behind them are thin, so they belong in the per-reaction file where
// a review can see them.
func Default() deck.Config {
	return deck.Config{
		Title:         "36S(d,p)@ 8MeV",
		BeamEnergyMeV: 8.0,
		Constants:     state.Constants{QGroundMeV: 2.079, BindGroundMeV: -4.304},
		Policies:      state.DefaultPolicies(),
		Angles:        deck.AngleRange{Count: 90, Start: 0, Step: 1},
		NLTR:          1,
		Integration:   deck.Integration{StepFm: 0.30, ROriginFm: 0, RangeParam: 0.7},
		Projectile: deck.Kinematics{
			MassAMU: 2.0, Charge: 1.0, TargetMass: 36.0, TargetCharge: 16.0,
			CoulombRadius: 1.303, SpinTwice: 2.0,
			Channel: optical.Channel{
				RefEnergyMeV: 8.0,
				Base: optical.Potential{
					Real:     optical.Term{Depth: -92.976, Radius: 1.150, Diffuseness: 0.761},
					VolImag:  optical.Term{Depth: -1.602, Radius: 1.335, Diffuseness: 0.525},
					SurfImag: optical.Term{Depth: 42.340, Radius: 1.380, Diffuseness: 0.736},
					RealSO:   optical.Term{Depth: -14.228, Radius: 0.972, Diffuseness: 1.011},
				},
			},
		},
		Ejectile: deck.Kinematics{
			MassAMU: 1.0, Charge: 1.0, TargetMass: 37.0, TargetCharge: 16.0,
			CoulombRadius: 1.292, SpinTwice: 1.0,
			Channel: optical.Channel{
				RefEnergyMeV: 10.079, // beam energy plus ground-state Q
				Base: optical.Potential{
					Real:     optical.Term{Depth: -56.249, Radius: 1.182, Diffuseness: 0.672},
					VolImag:  optical.Term{Depth: -0.786, Radius: 1.182, Diffuseness: 0.672},
					SurfImag: optical.Term{Depth: 34.836, Radius: 1.290, Diffuseness: 0.538},
					RealSO:   optical.Term{Depth: -22.456, Radius: 0.991, Diffuseness: 0.590},
					ImagSO:   optical.Term{Depth: 0.156, Radius: 0.991, Diffuseness: 0.590},
				},
			},
		},
		BoundState: deck.BoundState{
			MassAMU: 1.0, Charge: 0.0, CoreMass: 36.0, CoreCharge: 16.0,
			CoulombRadius: 1.30, SpinTwice: 1.0,
			WellOption: -1, TrialDepth: -1,
			Well:     optical.Term{Radius: 1.28, Diffuseness: 0.65},
			LambdaSO: 24.0, FISW: 50.0,
		},
	}
}
