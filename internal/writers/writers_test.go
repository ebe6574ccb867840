// internal/writers/writers_test.go
package writers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"dwdeck-core/result"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() result.Report {
	total := 12.5
	return result.Report{
		States: []result.StateResult{
			{
				Index: 0,
				Title: "36S(d,p)    645 keV  0f7/2 bound ZR",
				ExKeV: 645,
				Unit:  result.UnitFmSq,
				Points: []result.AngularPoint{
					{ThetaDeg: 0, Native: 5.6956, MilliBarn: 56.956},
					{ThetaDeg: 1, Native: 5.5, MilliBarn: 55},
				},
				TotalMB: &total,
			},
		},
		Gaps: []result.Gap{
			{Index: 1, Title: "4368 keV", Line: 40, Reason: "no angular table"},
		},
	}
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	err := Write("tsv", &buf, sampleReport(), Options{Header: true})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "state_index\tex_kev\ttheta_deg\tdsigma_mb_sr\tunit\ttotal_mb", lines[0])
	assert.Equal(t, "0\t645\t0\t56.956\tmb/sr\t12.5", lines[1])
	assert.Equal(t, "0\t645\t1\t55\tmb/sr\t12.5", lines[2])
}

func TestWriteTSV_NativeUnit(t *testing.T) {
	var buf bytes.Buffer
	err := Write("tsv", &buf, sampleReport(), Options{Native: true})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "0\t645\t0\t5.6956\tfm**2/sr\t12.5", lines[0])
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := Write("csv", &buf, sampleReport(), Options{Header: true})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "state_index,ex_kev,theta_deg,dsigma_mb_sr,unit,total_mb", lines[0])
	assert.Equal(t, "0,645,0,56.956,mb/sr,12.5", lines[1])
}

func TestWriteJSON_CarriesGaps(t *testing.T) {
	var buf bytes.Buffer
	err := Write("json", &buf, sampleReport(), Options{})
	require.NoError(t, err)

	var rep result.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rep))
	require.Len(t, rep.States, 1)
	require.Len(t, rep.Gaps, 1)
	assert.Equal(t, "no angular table", rep.Gaps[0].Reason)
	require.NotNil(t, rep.States[0].TotalMB)
	assert.InDelta(t, 12.5, *rep.States[0].TotalMB, 1e-12)
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write("xml", &bytes.Buffer{}, sampleReport(), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"xml"`)
}

func TestFormats(t *testing.T) {
	assert.ElementsMatch(t, []string{"tsv", "csv", "json"}, Formats())
}
