package result

import (
	"fmt"
	"strings"
	"testing"

	"dwdeck-core/deck"
	"dwdeck-core/optical"
	"dwdeck-core/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Encode a state table, fabricate the listing DWUCK4 would produce for that
// deck (title cards echoed verbatim above each result section), and decode it
// back. The decoder must recover every state by its excitation energy.
func TestRoundTrip_EncodedTitlesSurviveDecoding(t *testing.T) {
	cfg := deck.Config{
		Title:         "36S(d,p)@ 8MeV",
		BeamEnergyMeV: 8.0,
		Constants:     state.Constants{QGroundMeV: 2.079, BindGroundMeV: -4.304},
		Policies:      state.DefaultPolicies(),
		Angles:        deck.AngleRange{Count: 90, Start: 0, Step: 1},
		NLTR:          1,
		Integration:   deck.Integration{StepFm: 0.30, RangeParam: 0.7},
		Projectile: deck.Kinematics{
			MassAMU: 2, Charge: 1, TargetMass: 36, TargetCharge: 16,
			CoulombRadius: 1.303, SpinTwice: 2,
			Channel: optical.Channel{RefEnergyMeV: 8.0},
		},
		Ejectile: deck.Kinematics{
			MassAMU: 1, Charge: 1, TargetMass: 37, TargetCharge: 16,
			CoulombRadius: 1.292, SpinTwice: 1,
			Channel: optical.Channel{RefEnergyMeV: 10.079},
		},
		BoundState: deck.BoundState{
			MassAMU: 1, CoreMass: 36, CoreCharge: 16,
			CoulombRadius: 1.30, SpinTwice: 1,
			WellOption: -1, TrialDepth: -1,
			Well:     optical.Term{Radius: 1.28, Diffuseness: 0.65},
			LambdaSO: 24, FISW: 50,
		},
	}
	recs := []state.Record{
		{ExKeV: 645, Orbital: "0f7/2", N: 1, L: 3, J2: 7, Nodes: 0},
		{ExKeV: 4368, Orbital: "0f7/2", N: 1, L: 3, J2: 7, Nodes: 0},
	}

	d, err := deck.Encode(recs, cfg)
	require.NoError(t, err)

	// The program echoes each title card at the head of its result section.
	var listing strings.Builder
	for i := 0; i < len(recs); i++ {
		title := d.Lines[i*deck.LinesPerState]
		fmt.Fprintf(&listing, "%s\n", title)
		listing.WriteString("    Theta      Inelsig(fm**2/sr)\n")
		fmt.Fprintf(&listing, "    0.00     %.4fE+00\n", 1.5+float64(i))
		fmt.Fprintf(&listing, "    5.00     %.4fE+00\n", 1.1+float64(i))
		fmt.Fprintf(&listing, "\n Tot-sig =   %.4fE+00\n\n", 9.9+float64(i))
	}

	rep := Decode([]byte(listing.String()), cfg.Title)
	require.Len(t, rep.States, len(recs))
	require.Empty(t, rep.Gaps)

	for i, rec := range recs {
		st := rep.States[i]
		assert.Equal(t, rec.ExKeV, st.ExKeV, "state %d", i)
		assert.Equal(t, UnitFmSq, st.Unit)
		require.Len(t, st.Points, 2)
		assert.InDelta(t, (1.5+float64(i))*FmSqToMilliBarn, st.Points[0].MilliBarn, 1e-9)
		require.NotNil(t, st.TotalMB)
	}

	// The deck side of the loop stays deterministic too.
	again, err := deck.Encode(recs, cfg)
	require.NoError(t, err)
	assert.Equal(t, d.String(), again.String())
}
