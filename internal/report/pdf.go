package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexiusacademia/mcshear/internal/shear"
	"github.com/alexiusacademia/mcshear/internal/version"
	"github.com/phpdave11/gofpdf"
)

// asciiSymbols maps symbols the core PDF fonts cannot encode
var asciiSymbols = strings.NewReplacer(
	"θ", "theta", "α", "alpha", "ε", "eps", "γ", "gamma",
	"²", "2", "≤", "<=", "≥", ">=", "°", " deg", "·", "*",
)

// WriteCheckPDF writes a one-page calculation sheet for a member check
func WriteCheckPDF(path string, m *shear.Member, r *shear.CheckResult) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Shear check "+m.Name, false)
	pdf.SetCreator("mcshear "+version.Version, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Shear Resistance Check - "+version.Code)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if m.Name != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Member: %s", m.Name))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	s := m.Section
	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
	}
	line := func(label, value string) {
		pdf.CellFormat(80, 6, asciiSymbols.Replace(label), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, asciiSymbols.Replace(value), "", 1, "L", false, 0, "")
	}

	section("Input")
	line("fck / gamma_c", fmt.Sprintf("%.1f MPa / %.2f", s.Fck, s.GammaC))
	line("z / bw", fmt.Sprintf("%.0f mm / %.0f mm", s.Z, s.Bw))
	if s.As > 0 {
		line("As / Es", fmt.Sprintf("%.0f mm² / %.0f MPa", s.As, s.Es))
	}
	line("MEd / VEd / NEd", fmt.Sprintf("%.2f kN-m / %.2f kN / %.2f kN", s.Med/1e6, s.Ved/1e3, s.Ned/1e3))
	if m.Reinforced {
		line("Asw @ sw, fywd", fmt.Sprintf("%.0f mm² @ %.0f mm, %.0f MPa", s.Asw, s.Sw, s.Fywd))
		line("θ / α", fmt.Sprintf("%.1f° / %.1f°", s.Theta, s.Alfa))
	}
	line("Levels (concrete / steel)", fmt.Sprintf("%s / %s", m.ConcreteLevel, m.SteelLevel))
	pdf.Ln(4)

	section("Results")
	if r.EpsilonX > 0 {
		line("εx / θmin", fmt.Sprintf("%.6f / %.2f°", r.EpsilonX, r.ThetaMin))
	}
	if r.VRdc > 0 {
		line("VRd,c", fmt.Sprintf("%.2f kN", r.VRdc/1e3))
	}
	if m.Reinforced {
		line("VRd,s", fmt.Sprintf("%.2f kN", r.VRds/1e3))
		line("VRd,max", fmt.Sprintf("%.2f kN", r.VRdMax/1e3))
	}
	line("VRd", fmt.Sprintf("%.2f kN (%s)", r.VRd/1e3, r.Governing))
	line("VEd / VRd", fmt.Sprintf("%.3f", r.Utilization))
	pdf.Ln(4)

	for _, w := range r.Warnings {
		pdf.MultiCell(0, 6, asciiSymbols.Replace("WARNING "+w.String()), "", "L", false)
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.MultiCell(0, 8, asciiSymbols.Replace(r.Message), "", "L", false)

	return pdf.OutputFileAndClose(path)
}
