package diagram

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ResistanceDiagramData holds data for drawing a shear resistance diagram
type ResistanceDiagramData struct {
	Title string

	// Design shear force (N)
	VEd float64

	// Resistance contributions (N), zero when not calculated
	VRdc   float64
	VRds   float64
	VRdMax float64

	// Design shear resistance (N)
	VRd float64

	// Status
	Governing  string
	IsAdequate bool
}

// bar is one row of the resistance diagram
type bar struct {
	label string
	value float64
}

func (d ResistanceDiagramData) bars() []bar {
	bars := []bar{{"VEd", d.VEd}}
	if d.VRdc > 0 {
		bars = append(bars, bar{"VRd,c", d.VRdc})
	}
	if d.VRds > 0 {
		bars = append(bars, bar{"VRd,s", d.VRds})
	}
	if d.VRdMax > 0 {
		bars = append(bars, bar{"VRd,max", d.VRdMax})
	}
	return append(bars, bar{"VRd", d.VRd})
}

// DrawASCIIResistanceDiagram creates an ASCII bar chart of the shear
// force and resistances, with a marker at VEd on every bar
func DrawASCIIResistanceDiagram(data ResistanceDiagramData) string {
	var sb strings.Builder

	widthChars := 40
	bars := data.bars()

	maxValue := 0.0
	for _, b := range bars {
		maxValue = math.Max(maxValue, b.value)
	}
	if maxValue <= 0 {
		maxValue = 1
	}
	scale := float64(widthChars) / maxValue
	vedCol := int(math.Round(data.VEd * scale))

	title := data.Title
	if title == "" {
		title = "SHEAR RESISTANCE"
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", title))
	sb.WriteString(fmt.Sprintf("  %s\n\n", strings.Repeat("─", len([]rune(title)))))

	for _, b := range bars {
		n := max(0, min(widthChars, int(math.Round(b.value*scale))))
		fill := "█"
		if b.label == "VEd" {
			fill = "▒"
		}
		row := []rune(strings.Repeat(fill, n) + strings.Repeat(" ", widthChars-n))
		if b.label != "VEd" && vedCol > 0 && vedCol <= widthChars {
			if vedCol-1 < n {
				row[vedCol-1] = '┃'
			} else {
				row[vedCol-1] = '┊'
			}
		}
		sb.WriteString(fmt.Sprintf("  %-8s│%s│ %8.1f kN\n", b.label, string(row), b.value/1000))
	}

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ▒▒▒ = Design shear force\n")
	sb.WriteString("  ███ = Resistance, ┃ marks VEd\n")
	if data.Governing != "" {
		sb.WriteString(fmt.Sprintf("  Governed by %s\n", data.Governing))
	}
	if data.IsAdequate {
		sb.WriteString("  Status: ✓ VEd ≤ VRd\n")
	} else {
		sb.WriteString("  Status: ✗ VEd > VRd\n")
	}

	return sb.String()
}

// ThetaCurve holds resistances sampled over the compression field inclination
type ThetaCurve struct {
	Theta  []float64 // degrees
	VRds   []float64 // N
	VRdMax []float64 // N
}

func (c ThetaCurve) validate() error {
	if len(c.VRds) != len(c.Theta) || len(c.VRdMax) != len(c.Theta) {
		return fmt.Errorf("diagram: %d θ samples but %d VRd,s and %d VRd,max values",
			len(c.Theta), len(c.VRds), len(c.VRdMax))
	}
	if len(c.Theta) < 2 {
		return errors.New("diagram: at least two θ samples are required")
	}
	return nil
}

// DrawThetaTable creates an ASCII table of the stirrup and crushing
// resistance over θ, marking the θ where the smaller of the two peaks
func DrawThetaTable(curve ThetaCurve) (string, error) {
	if err := curve.validate(); err != nil {
		return "", err
	}

	var sb strings.Builder

	best := -1
	bestValue := 0.0
	for i := range curve.Theta {
		v := math.Min(curve.VRds[i], curve.VRdMax[i])
		if best < 0 || v > bestValue {
			best, bestValue = i, v
		}
	}

	sb.WriteString("\n")
	sb.WriteString("  RESISTANCE vs COMPRESSION FIELD INCLINATION\n")
	sb.WriteString("  ───────────────────────────────────────────\n\n")
	sb.WriteString("     θ (°)    VRd,s (kN)   VRd,max (kN)\n")
	for i, theta := range curve.Theta {
		mark := ""
		if i == best {
			mark = " ◄─ max VRd"
		}
		sb.WriteString(fmt.Sprintf("  %8.1f  %12.1f  %13.1f%s\n",
			theta, curve.VRds[i]/1000, curve.VRdMax[i]/1000, mark))
	}

	return sb.String(), nil
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s with spaces to n runes
func pad(s string, n int) string {
	if k := n - len([]rune(s)); k > 0 {
		return s + strings.Repeat(" ", k)
	}
	return s
}
