// core/result/result.go
// Parses the calculation program's textual output back into structured
// angular distributions and total cross sections.
//
// The output is an echo-heavy free-text document. Per state it contains the
// title card echo (reaction tag plus "<Ex> keV"), an angular table under a
// header line naming Theta and the cross-section column with its unit, and a
// labeled total. Native differential cross sections may be printed in fm²/sr
// (converted to mb/sr by the fixed factor 10) or directly in mb/sr; totals
// are always mb.
//
// Parsing degrades gracefully: a state whose table never appears becomes a
// gap, a row that stops parsing ends that table at the last good row, and
// later states are still recovered. Batch runs are the normal mode, so one
// corrupt section must not cost the rest of the document.
package result

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// FmSqToMilliBarn converts fm²/sr to mb/sr.
const FmSqToMilliBarn = 10.0

// Known native units.
const (
	UnitFmSq      = "fm**2/sr"
	UnitMilliBarn = "mb/sr"
)

// AngularPoint is one row of a distribution: angle plus the cross section in
// native and converted units.
type AngularPoint struct {
	ThetaDeg  float64 `json:"theta_deg"`
	Native    float64 `json:"dsigma_native"`
	MilliBarn float64 `json:"dsigma_mb_sr"`
}

// StateResult is the parsed output for one state section.
type StateResult struct {
	Index     int            `json:"index"` // section order in the document
	Title     string         `json:"title"`
	ExKeV     float64        `json:"ex_kev"` // -1 when the title carries no energy
	Unit      string         `json:"unit"`   // native unit of the table
	Points    []AngularPoint `json:"points"`
	TotalMB   *float64       `json:"total_mb,omitempty"`
	Truncated bool           `json:"truncated,omitempty"` // table ended at a malformed row
	BadLine   int            `json:"bad_line,omitempty"`  // 1-based line of the malformed row
}

// Gap records a state section whose angular table could not be located.
type Gap struct {
	Index  int    `json:"index"`
	Title  string `json:"title"`
	Line   int    `json:"line"` // 1-based line of the section start
	Reason string `json:"reason"`
}

// Report is the decoded document: resolved states plus explicit gaps.
type Report struct {
	States []StateResult `json:"states"`
	Gaps   []Gap         `json:"gaps,omitempty"`
}

// Resolved reports whether every detected section produced a table.
func (r Report) Resolved() bool { return len(r.Gaps) == 0 }

var (
	exRe    = regexp.MustCompile(`(\d+)\s*keV`)
	floatRe = regexp.MustCompile(`[+-]?\d+(?:\.\d*)?(?:[eE][+-]?\d+)?`)
)

// Decode parses raw program output. reactionTag is the reaction string the
// title cards carry (e.g. "36S(d,p)"); every line containing it together
// with a keV annotation starts a new state section.
func Decode(raw []byte, reactionTag string) Report {
	lines := strings.Split(string(raw), "\n")

	var rep Report
	var cur *section

	flush := func() {
		if cur == nil {
			return
		}
		if len(cur.res.Points) == 0 && cur.res.TotalMB == nil {
			rep.Gaps = append(rep.Gaps, Gap{
				Index: cur.res.Index, Title: cur.res.Title,
				Line: cur.startLine, Reason: "no angular table found",
			})
		} else {
			rep.States = append(rep.States, cur.res)
		}
		cur = nil
	}

	for i, line := range lines {
		if isSectionStart(line, reactionTag) {
			flush()
			cur = newSection(len(rep.States)+len(rep.Gaps), strings.TrimSpace(line), i+1)
			continue
		}
		if cur == nil {
			continue
		}
		cur.feed(line, i+1)
	}
	flush()
	return rep
}

func isSectionStart(line, tag string) bool {
	return strings.Contains(line, tag) && exRe.MatchString(line)
}

// section accumulates one state's output while scanning.
type section struct {
	res       StateResult
	startLine int
	inTable   bool
	factor    float64
}

func newSection(index int, title string, line int) *section {
	s := &section{startLine: line}
	s.res.Index = index
	s.res.Title = title
	s.res.ExKeV = -1
	if m := exRe.FindStringSubmatch(title); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			s.res.ExKeV = v
		}
	}
	return s
}

func (s *section) feed(line string, lineNo int) {
	// Total line is independent of the angular table.
	if strings.Contains(line, "Tot-sig") {
		s.inTable = false
		if m := floatRe.FindString(afterLabel(line, "Tot-sig")); m != "" {
			if v, err := strconv.ParseFloat(m, 64); err == nil {
				s.res.TotalMB = &v
			}
		}
		return
	}

	if !s.inTable && s.res.Unit == "" && strings.Contains(line, "Theta") {
		s.res.Unit, s.factor = headerUnit(line)
		s.inTable = true
		return
	}
	if !s.inTable {
		return
	}

	theta, sigma, ok := parseRow(line)
	if !ok {
		s.endTable(line, lineNo)
		return
	}
	if n := len(s.res.Points); n > 0 && theta < s.res.Points[n-1].ThetaDeg {
		// Angles must be non-decreasing; a backwards angle means we have
		// run into unrelated numbers.
		s.endTable(line, lineNo)
		return
	}
	s.res.Points = append(s.res.Points, AngularPoint{
		ThetaDeg:  theta,
		Native:    sigma,
		MilliBarn: sigma * s.factor,
	})
}

// endTable closes the table at the last good row. Blank lines and obvious
// terminators are the normal end of a table, not damage.
func (s *section) endTable(line string, lineNo int) {
	s.inTable = false
	if strings.TrimSpace(line) == "" {
		return
	}
	if len(s.res.Points) > 0 {
		s.res.Truncated = true
		s.res.BadLine = lineNo
	}
}

// headerUnit reads the units annotation off a table header.
// The program's native fm²/sr needs the factor of 10; an explicit mb/sr
// annotation passes through unchanged. An unannotated header is treated as
// the native fm²/sr convention.
func headerUnit(header string) (string, float64) {
	h := strings.ToLower(header)
	if strings.Contains(h, "mb/sr") || strings.Contains(h, "mb /sr") {
		return UnitMilliBarn, 1.0
	}
	return UnitFmSq, FmSqToMilliBarn
}

// parseRow reads an angular-table row: angle then cross section, whitespace
// delimited; extra columns are ignored.
func parseRow(line string) (theta, sigma float64, ok bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, false
	}
	theta, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || theta < 0 || theta > 180 {
		return 0, 0, false
	}
	sigma, err = strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, false
	}
	return theta, sigma, true
}

func afterLabel(line, label string) string {
	if i := strings.Index(line, label); i >= 0 {
		return line[i+len(label):]
	}
	return line
}

// Summary renders a one-line account of the report for logs.
func (r Report) Summary() string {
	return fmt.Sprintf("%d states decoded, %d gaps", len(r.States), len(r.Gaps))
}
