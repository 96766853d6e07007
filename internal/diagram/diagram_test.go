package diagram_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/mcshear/internal/diagram"
)

var resistance = diagram.ResistanceDiagramData{
	VEd:        100e3,
	VRds:       232749,
	VRdMax:     255384,
	VRd:        232749,
	Governing:  "stirrups",
	IsAdequate: true,
}

func TestDrawASCIIResistanceDiagram(t *testing.T) {
	out := diagram.DrawASCIIResistanceDiagram(resistance)

	assert.Contains(t, out, "SHEAR RESISTANCE")
	assert.Contains(t, out, "VRd,s")
	assert.Contains(t, out, "VRd,max")
	assert.NotContains(t, out, "VRd,c")
	assert.Contains(t, out, "232.7 kN")
	assert.Contains(t, out, "Governed by stirrups")
	assert.Contains(t, out, "✓")
}

func TestDrawASCIIResistanceDiagram_Inadequate(t *testing.T) {
	data := diagram.ResistanceDiagramData{Title: "B1", VEd: 300e3, VRdc: 20863, VRd: 20863}
	out := diagram.DrawASCIIResistanceDiagram(data)

	assert.True(t, strings.HasPrefix(out, "\n  B1\n"))
	assert.Contains(t, out, "VRd,c")
	assert.Contains(t, out, "✗")
}

func TestDrawASCIIResistanceDiagram_NegativeResistance(t *testing.T) {
	data := diagram.ResistanceDiagramData{VEd: 100e3, VRds: -133593, VRdMax: -432193, VRd: -432193}

	var out string
	require.NotPanics(t, func() { out = diagram.DrawASCIIResistanceDiagram(data) })
	assert.Contains(t, out, "-432.2 kN")
	assert.NotContains(t, out, "VRd,s")
	assert.Contains(t, out, "✗")
}

func TestDrawThetaTable(t *testing.T) {
	curve := diagram.ThetaCurve{
		Theta:  []float64{20, 30, 40},
		VRds:   []float64{300e3, 200e3, 150e3},
		VRdMax: []float64{100e3, 180e3, 250e3},
	}
	out, err := diagram.DrawThetaTable(curve)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	var marked []string
	for _, l := range lines {
		if strings.Contains(l, "max VRd") {
			marked = append(marked, l)
		}
	}
	require.Len(t, marked, 1)
	assert.Contains(t, marked[0], "30.0")
}

func TestDrawSummaryBox(t *testing.T) {
	out := diagram.DrawSummaryBox("RESULT", []string{"VRd = 232.7 kN", "θ = 40°"})
	rows := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// borders, title and separator around the content rows
	require.Len(t, rows, 4+2)

	assert.Contains(t, rows[1], "RESULT")
	assert.Contains(t, rows[3], "VRd = 232.7 kN")
	assert.Contains(t, rows[4], "θ = 40°")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(rows[0]), "╔"))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(rows[5]), "╚"))

	width := len([]rune(rows[0]))
	for _, l := range rows {
		assert.Equal(t, width, len([]rune(l)), "%q", l)
		assert.True(t, strings.HasSuffix(l, "╗") || strings.HasSuffix(l, "║") ||
			strings.HasSuffix(l, "╣") || strings.HasSuffix(l, "╝"), "%q", l)
	}
}

func TestExportResistanceDiagram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "vrd.png")
	require.NoError(t, diagram.ExportResistanceDiagram(resistance, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestExportThetaDiagram(t *testing.T) {
	curve := diagram.ThetaCurve{
		Theta:  []float64{20, 30, 40, 45},
		VRds:   []float64{400e3, 300e3, 230e3, 200e3},
		VRdMax: []float64{150e3, 200e3, 250e3, 260e3},
	}
	dir := t.TempDir()

	require.NoError(t, diagram.ExportThetaDiagram(curve, 100e3, filepath.Join(dir, "theta.svg")))
	_, err := os.Stat(filepath.Join(dir, "theta.svg"))
	assert.NoError(t, err)

	require.NoError(t, diagram.ExportThetaDiagram(curve, 100e3, filepath.Join(dir, "theta")))
	_, err = os.Stat(filepath.Join(dir, "theta.png"))
	assert.NoError(t, err)

	assert.Error(t, diagram.ExportThetaDiagram(diagram.ThetaCurve{Theta: []float64{30}}, 0, filepath.Join(dir, "x.png")))
}

func TestDrawThetaCurve(t *testing.T) {
	curve := diagram.ThetaCurve{
		Theta:  []float64{20, 25, 30, 35, 40, 45},
		VRds:   []float64{400e3, 330e3, 280e3, 240e3, 210e3, 180e3},
		VRdMax: []float64{150e3, 180e3, 205e3, 225e3, 240e3, 245e3},
	}
	out, err := diagram.DrawThetaCurve(curve)
	require.NoError(t, err)
	assert.Contains(t, out, "kN over θ = 20° to 45°")
	assert.Contains(t, out, "VRd,max")
	assert.Greater(t, strings.Count(out, "\n"), 10)

	_, err = diagram.DrawThetaCurve(diagram.ThetaCurve{})
	assert.Error(t, err)
}

func TestThetaCurve_MismatchedSamples(t *testing.T) {
	curve := diagram.ThetaCurve{
		Theta:  []float64{20, 30, 40},
		VRds:   []float64{300e3, 200e3},
		VRdMax: []float64{100e3, 180e3, 250e3},
	}

	_, err := diagram.DrawThetaTable(curve)
	assert.Error(t, err)
	_, err = diagram.DrawThetaCurve(curve)
	assert.Error(t, err)
	assert.Error(t, diagram.ExportThetaDiagram(curve, 0, filepath.Join(t.TempDir(), "theta.png")))
}
