package orbital

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		label string
		want  Orbital
	}{
		{"0f7/2", Orbital{Label: "0f7/2", Nodes: 0, L: 3, J2: 7}},
		{"1p3/2", Orbital{Label: "1p3/2", Nodes: 1, L: 1, J2: 3}},
		{"0d3/2", Orbital{Label: "0d3/2", Nodes: 0, L: 2, J2: 3}},
		{"2s1/2", Orbital{Label: "2s1/2", Nodes: 2, L: 0, J2: 1}},
		{"0g9/2", Orbital{Label: "0g9/2", Nodes: 0, L: 4, J2: 9}},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			got, err := Parse(tc.label)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse_Bad(t *testing.T) {
	for _, label := range []string{"", "f7/2", "0x7/2", "0f7", "0f7/3", "0f9/2", "0s3/2"} {
		t.Run(label, func(t *testing.T) {
			_, err := Parse(label)
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	o, err := Parse("0f7/2")
	require.NoError(t, err)
	assert.NoError(t, o.Validate(1, 3, 7, 0))

	var qe *QuantumError

	err = o.Validate(1, 3, 7, 1)
	require.True(t, errors.As(err, &qe))
	assert.Equal(t, "node count", qe.Quantity)

	err = o.Validate(2, 3, 7, 0)
	require.True(t, errors.As(err, &qe))
	assert.Equal(t, "principal quantum number", qe.Quantity)

	err = o.Validate(1, 2, 7, 0)
	require.True(t, errors.As(err, &qe))
	assert.Equal(t, "L", qe.Quantity)

	err = o.Validate(1, 3, 5, 0)
	require.True(t, errors.As(err, &qe))
	assert.Equal(t, "2J", qe.Quantity)
}

// A label whose leading digit is 1 demands one radial node; a row claiming
// zero nodes for it must be rejected.
func TestValidate_NodeCountFromLabel(t *testing.T) {
	o, err := Parse("1p3/2")
	require.NoError(t, err)

	var qe *QuantumError
	err = o.Validate(2, 1, 3, 0)
	require.True(t, errors.As(err, &qe))
	assert.Equal(t, "node count", qe.Quantity)
	assert.Equal(t, 0, qe.Got)
	assert.Equal(t, 1, qe.Want)

	assert.NoError(t, o.Validate(2, 1, 3, 1))
}
