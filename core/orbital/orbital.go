// core/orbital/orbital.go
// Spectroscopic orbital labels ("0f7/2", "1p3/2") and the quantum-number
// consistency checks they imply. The leading digit of a label is the radial
// node count; the principal quantum number counts from 1, so nodes = n - 1.
package orbital

import (
	"fmt"
	"regexp"
	"strconv"
)

// letterL maps spectroscopic letters to orbital angular momentum L.
var letterL = map[string]int{
	"s": 0, "p": 1, "d": 2, "f": 3, "g": 4, "h": 5, "i": 6, "j": 7,
}

var labelRe = regexp.MustCompile(`^(\d+)([spdfghij])(\d+)/2$`)

// Orbital is a parsed spectroscopic label.
type Orbital struct {
	Label string
	Nodes int // radial node count (the leading digit)
	L     int
	J2    int // 2*J
}

// QuantumError reports a quantum number that disagrees with the orbital label.
type QuantumError struct {
	Label    string
	Quantity string
	Got      int
	Want     int
}

func (e *QuantumError) Error() string {
	return fmt.Sprintf("orbital %s: %s = %d, label requires %d", e.Label, e.Quantity, e.Got, e.Want)
}

// Parse reads a label of the form <nodes><letter><2J>/2.
func Parse(label string) (Orbital, error) {
	m := labelRe.FindStringSubmatch(label)
	if m == nil {
		return Orbital{}, fmt.Errorf("orbital: bad label %q", label)
	}
	nodes, err := strconv.Atoi(m[1])
	if err != nil {
		return Orbital{}, fmt.Errorf("orbital: bad label %q: %v", label, err)
	}
	l := letterL[m[2]]
	j2, err := strconv.Atoi(m[3])
	if err != nil {
		return Orbital{}, fmt.Errorf("orbital: bad label %q: %v", label, err)
	}
	if j2 != 2*l+1 && j2 != 2*l-1 {
		return Orbital{}, fmt.Errorf("orbital: label %q has j=%d/2, not l±1/2 for l=%d", label, j2, l)
	}
	return Orbital{Label: label, Nodes: nodes, L: l, J2: j2}, nil
}

// Validate checks an input row's quantum numbers against the label.
// n is the principal quantum number counting from 1.
func (o Orbital) Validate(n, l, j2, nodes int) error {
	if nodes != o.Nodes {
		return &QuantumError{Label: o.Label, Quantity: "node count", Got: nodes, Want: o.Nodes}
	}
	if n != o.Nodes+1 {
		return &QuantumError{Label: o.Label, Quantity: "principal quantum number", Got: n, Want: o.Nodes + 1}
	}
	if l != o.L {
		return &QuantumError{Label: o.Label, Quantity: "L", Got: l, Want: o.L}
	}
	if j2 != o.J2 {
		return &QuantumError{Label: o.Label, Quantity: "2J", Got: j2, Want: o.J2}
	}
	return nil
}
