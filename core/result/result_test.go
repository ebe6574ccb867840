package result

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoStateOutput = `0DWUCK4 output echo
1001000000200000    36S(d,p)@ 8MeV    645 keV  0f7/2 bound ZR
 some input echo lines
    Theta      Inelsig(fm**2/sr)
    0.00     5.6956E+00
    5.00     4.1200E+00
   10.00     2.0310E+00

 Tot-sig =   1.2340E+01

1011000030000000    36S(d,p)@ 8MeV    4368 keV  0f7/2 unbound ZR
 more echo
    Theta      Inelsig(fm**2/sr)
    0.00     1.0000E-01
    5.00     9.0000E-02

 Tot-sig =   2.5000E-01
`

func TestDecode_TwoStates(t *testing.T) {
	rep := Decode([]byte(twoStateOutput), "36S(d,p)")
	require.Len(t, rep.States, 2)
	require.Empty(t, rep.Gaps)
	assert.True(t, rep.Resolved())

	s := rep.States[0]
	assert.Equal(t, 645.0, s.ExKeV)
	assert.Equal(t, UnitFmSq, s.Unit)
	require.Len(t, s.Points, 3)

	want := AngularPoint{ThetaDeg: 0, Native: 5.6956, MilliBarn: 56.956}
	if diff := cmp.Diff(want, s.Points[0], cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("first point mismatch (-want +got):\n%s", diff)
	}
	require.NotNil(t, s.TotalMB)
	assert.Equal(t, 12.34, *s.TotalMB)
	assert.False(t, s.Truncated)

	u := rep.States[1]
	assert.Equal(t, 4368.0, u.ExKeV)
	require.Len(t, u.Points, 2)
	assert.InDelta(t, 1.0, u.Points[0].MilliBarn, 1e-12)
	require.NotNil(t, u.TotalMB)
	assert.Equal(t, 0.25, *u.TotalMB)
}

func TestDecode_UnitConversionFactorOfTen(t *testing.T) {
	rep := Decode([]byte(twoStateOutput), "36S(d,p)")
	require.NotEmpty(t, rep.States)
	p := rep.States[0].Points[0]
	assert.Equal(t, 5.6956, p.Native)
	assert.InDelta(t, 56.956, p.MilliBarn, 1e-12)
}

func TestDecode_MilliBarnHeaderPassesThrough(t *testing.T) {
	out := `36S(d,p)@ 8MeV    0 keV  0f7/2 bound ZR
    Theta      Inelsig(mb/sr)
    0.00     5.6956E+00
`
	rep := Decode([]byte(out), "36S(d,p)")
	require.Len(t, rep.States, 1)
	assert.Equal(t, UnitMilliBarn, rep.States[0].Unit)
	assert.Equal(t, 5.6956, rep.States[0].Points[0].MilliBarn)
}

func TestDecode_MalformedRowTruncatesTable(t *testing.T) {
	out := `36S(d,p)@ 8MeV    1200 keV  0f7/2 bound ZR
    Theta      Inelsig(fm**2/sr)
    0.00     5.0000E+00
    5.00     4.0000E+00
   10.00     ***********
   15.00     2.0000E+00
`
	rep := Decode([]byte(out), "36S(d,p)")
	require.Len(t, rep.States, 1)
	s := rep.States[0]
	assert.Len(t, s.Points, 2, "table ends at the last good row")
	assert.True(t, s.Truncated)
	assert.Equal(t, 5, s.BadLine)
}

func TestDecode_BackwardsAngleEndsTable(t *testing.T) {
	out := `36S(d,p)@ 8MeV    0 keV  0f7/2 bound ZR
    Theta      Inelsig(fm**2/sr)
   10.00     5.0000E+00
   20.00     4.0000E+00
    5.00     3.0000E+00
`
	rep := Decode([]byte(out), "36S(d,p)")
	require.Len(t, rep.States, 1)
	s := rep.States[0]
	assert.Len(t, s.Points, 2)
	assert.True(t, s.Truncated)
	// Remaining angles are still non-decreasing.
	for i := 1; i < len(s.Points); i++ {
		assert.GreaterOrEqual(t, s.Points[i].ThetaDeg, s.Points[i-1].ThetaDeg)
	}
}

func TestDecode_MissingSectionBecomesGap(t *testing.T) {
	out := `36S(d,p)@ 8MeV    645 keV  0f7/2 bound ZR
 the table never shows up here

36S(d,p)@ 8MeV    1992 keV  0f7/2 bound ZR
    Theta      Inelsig(fm**2/sr)
    0.00     3.0000E+00

 Tot-sig =   7.0000E+00
`
	rep := Decode([]byte(out), "36S(d,p)")
	require.Len(t, rep.Gaps, 1, "broken section reported as a gap")
	require.Len(t, rep.States, 1, "later section still recovered")
	assert.False(t, rep.Resolved())

	assert.Equal(t, 0, rep.Gaps[0].Index)
	assert.Contains(t, rep.Gaps[0].Title, "645 keV")
	assert.Equal(t, 1992.0, rep.States[0].ExKeV)
}

func TestDecode_EmptyAndUnrelatedInput(t *testing.T) {
	rep := Decode(nil, "36S(d,p)")
	assert.Empty(t, rep.States)
	assert.Empty(t, rep.Gaps)

	rep = Decode([]byte("nothing to see\n1.0 2.0\n"), "36S(d,p)")
	assert.Empty(t, rep.States)
}

func TestDecode_TotalWithoutTable(t *testing.T) {
	// A section with only a total is still a result, not a gap.
	out := `36S(d,p)@ 8MeV    645 keV  0f7/2 bound ZR
 Tot-sig =   3.1000E+00
`
	rep := Decode([]byte(out), "36S(d,p)")
	require.Len(t, rep.States, 1)
	assert.Empty(t, rep.States[0].Points)
	require.NotNil(t, rep.States[0].TotalMB)
	assert.InDelta(t, 3.1, *rep.States[0].TotalMB, 1e-12)
}

func TestReportSummary(t *testing.T) {
	rep := Decode([]byte(twoStateOutput), "36S(d,p)")
	assert.True(t, strings.Contains(rep.Summary(), "2 states"))
}
