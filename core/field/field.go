// core/field/field.go
// Fixed-width rendering of numeric card fields for Fortran-style formatted
// reads (F8.4, I3 and friends). Every encoded line is built from Spec tables,
// so column layout is data the tests can pin down independently of the
// formatting logic.
//
// Rendering convention:
//   - signed fields emit '+'/'-' followed by a zero-padded integer part
//     ("+01.434", "-92.976");
//   - unsigned fields right-align the integer part in IntDigits columns,
//     space-padded (" 2.0"), or zero-padded when ZeroPad is set ("001.303");
//   - Decimals==0 still emits the trailing point ("+01.", "90."), which the
//     consuming program's F-format reads require;
//   - the rendered number is left-justified inside Width and padded with
//     spaces on the right.
//
// A value whose digits cannot fit Width is a hard OverflowError, never a
// truncation: the consumer reads positionally and a silently shortened field
// would corrupt every column after it.
package field

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Spec describes one fixed-column field on a card line.
type Spec struct {
	Name      string // for error reporting
	Offset    int    // 0-based column of the first character
	Width     int    // total columns occupied, sign and point included
	IntDigits int    // minimum digits before the decimal point
	Decimals  int    // digits after the decimal point
	Sign      bool   // always emit an explicit '+'/'-'
	ZeroPad   bool   // zero-pad the integer part of unsigned fields
}

// End returns the column one past the field.
func (s Spec) End() int { return s.Offset + s.Width }

// OverflowError reports a value that cannot be represented in its field.
type OverflowError struct {
	Field string
	Value float64
	Width int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("field %s: value %g does not fit %d columns", e.Field, e.Value, e.Width)
}

// pow10 for the small decimal counts cards use.
func pow10(n int) float64 {
	p := 1.0
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

// Format renders v per s. The result is exactly s.Width characters long.
func Format(v float64, s Spec) (string, error) {
	if s.Width <= 0 {
		return "", fmt.Errorf("field %s: non-positive width %d", s.Name, s.Width)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", &OverflowError{Field: s.Name, Value: v, Width: s.Width}
	}
	neg := v < 0

	// Round half away from zero at the last representable decimal digit.
	scale := pow10(s.Decimals)
	scaled := math.Abs(v)*scale + 0.5
	if scaled >= math.MaxInt64 {
		return "", &OverflowError{Field: s.Name, Value: v, Width: s.Width}
	}
	n := int64(scaled)

	ip := n / int64(scale)
	fp := n % int64(scale)

	// The sign stays attached to the digits: zero padding goes between sign
	// and digits, space padding outside the sign.
	intStr := strconv.FormatInt(ip, 10)
	switch {
	case s.Sign:
		if pad := s.IntDigits - len(intStr); pad > 0 {
			intStr = strings.Repeat("0", pad) + intStr
		}
		if neg {
			intStr = "-" + intStr
		} else {
			intStr = "+" + intStr
		}
	case s.ZeroPad:
		if pad := s.IntDigits - len(intStr); pad > 0 {
			intStr = strings.Repeat("0", pad) + intStr
		}
		if neg {
			intStr = "-" + intStr
		}
	default:
		if neg {
			intStr = "-" + intStr
		}
		if pad := s.IntDigits - len(intStr); pad > 0 {
			intStr = strings.Repeat(" ", pad) + intStr
		}
	}

	var b strings.Builder
	b.WriteString(intStr)
	b.WriteByte('.')
	if s.Decimals > 0 {
		frac := strconv.FormatInt(fp, 10)
		b.WriteString(strings.Repeat("0", s.Decimals-len(frac)))
		b.WriteString(frac)
	}

	out := b.String()
	if len(out) > s.Width {
		return "", &OverflowError{Field: s.Name, Value: v, Width: s.Width}
	}
	return out + strings.Repeat(" ", s.Width-len(out)), nil
}

// FormatInt renders v as a Fortran I-format integer: explicit sign when
// s.Sign is set, integer digits zero-padded to IntDigits, right-aligned in
// Width otherwise. Used by the quantum-number card ("+30+01+03+07").
func FormatInt(v int, s Spec) (string, error) {
	if s.Width <= 0 {
		return "", fmt.Errorf("field %s: non-positive width %d", s.Name, s.Width)
	}
	digits := strconv.Itoa(absInt(v))
	if pad := s.IntDigits - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	var out string
	switch {
	case s.Sign && v < 0:
		out = "-" + digits
	case s.Sign:
		out = "+" + digits
	case v < 0:
		out = "-" + digits
	default:
		out = digits
	}
	if len(out) > s.Width {
		return "", &OverflowError{Field: s.Name, Value: float64(v), Width: s.Width}
	}
	return strings.Repeat(" ", s.Width-len(out)) + out, nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Place copies text into line at the field's offset. The line must already
// be long enough; templates size their lines from the last field's End.
func Place(line []byte, s Spec, text string) {
	copy(line[s.Offset:], text)
}
