package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexiusacademia/mcshear/internal/mc2010"
	"github.com/alexiusacademia/mcshear/internal/shear"
	"github.com/xuri/excelize/v2"
)

// Input sheet keys, in the order they are written. Units follow the
// member JSON file: MPa, mm, N, Nmm and degrees.
var inputKeys = []string{
	"name", "description",
	"fck", "gamma_c", "dg", "z", "bw",
	"es", "as",
	"med", "ved", "ned", "delta_e",
	"asw", "sw", "fywd", "alfa", "theta",
	"concrete_level", "steel_level", "reinforced",
}

// ReadMember reads a member from the first sheet of an xlsx workbook laid
// out as key/value rows (column A the key, column B the value). Missing
// keys keep the defaults of NewMember.
func ReadMember(path string) (*shear.Member, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	m := shear.NewMember(0, 0, 0)
	seen := 0
	for i, row := range rows {
		if len(row) < 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(row[0]))
		value := strings.TrimSpace(row[1])
		ok, err := setField(m, key, value)
		if err != nil {
			return nil, fmt.Errorf("report: %s row %d: %w", sheet, i+1, err)
		}
		if ok {
			seen++
		}
	}
	if seen == 0 {
		return nil, fmt.Errorf("report: sheet %q has no member keys", sheet)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// setField assigns one key/value pair. Unknown keys are ignored so the
// sheet can carry notes and headers.
func setField(m *shear.Member, key, value string) (bool, error) {
	switch key {
	case "name":
		m.Name = value
		return true, nil
	case "description":
		m.Description = value
		return true, nil
	case "reinforced":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("%s: %w", key, err)
		}
		m.Reinforced = b
		return true, nil
	}

	s := &m.Section
	fields := map[string]*float64{
		"fck": &s.Fck, "gamma_c": &s.GammaC, "dg": &s.Dg, "z": &s.Z, "bw": &s.Bw,
		"es": &s.Es, "as": &s.As,
		"med": &s.Med, "ved": &s.Ved, "ned": &s.Ned, "delta_e": &s.DeltaE,
		"asw": &s.Asw, "sw": &s.Sw, "fywd": &s.Fywd, "alfa": &s.Alfa, "theta": &s.Theta,
	}
	levels := map[string]*mc2010.Level{
		"concrete_level": &m.ConcreteLevel,
		"steel_level":    &m.SteelLevel,
	}

	if p, ok := fields[key]; ok {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return false, fmt.Errorf("%s: %w", key, err)
		}
		*p = v
		return true, nil
	}
	if p, ok := levels[key]; ok {
		v, err := strconv.Atoi(value)
		if err != nil {
			return false, fmt.Errorf("%s: %w", key, err)
		}
		*p = mc2010.Level(v)
		return true, nil
	}
	return false, nil
}

// cellNumber keeps non-finite values out of numeric cells
func cellNumber(v float64) interface{} {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return v
}

func inputValues(m *shear.Member) []interface{} {
	s := m.Section
	return []interface{}{
		m.Name, m.Description,
		s.Fck, s.GammaC, s.Dg, s.Z, s.Bw,
		s.Es, s.As,
		s.Med, s.Ved, s.Ned, s.DeltaE,
		s.Asw, s.Sw, s.Fywd, s.Alfa, s.Theta,
		int(m.ConcreteLevel), int(m.SteelLevel), m.Reinforced,
	}
}

// WriteCheckWorkbook writes the member input and its check result to a new
// xlsx workbook. The Input sheet can be read back with ReadMember.
func WriteCheckWorkbook(path string, m *shear.Member, r *shear.CheckResult) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DCE6F1"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	input := "Input"
	if err := f.SetSheetName("Sheet1", input); err != nil {
		return err
	}
	for i, v := range inputValues(m) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(input, cell, &[]interface{}{inputKeys[i], v}); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(input, "A1", fmt.Sprintf("A%d", len(inputKeys)), bold); err != nil {
		return err
	}
	if err := f.SetColWidth(input, "A", "B", 16); err != nil {
		return err
	}

	results := "Results"
	if _, err := f.NewSheet(results); err != nil {
		return err
	}
	status := "OK"
	if !r.IsAdequate {
		status = "NOT OK"
	}
	rows := [][]interface{}{
		{"Quantity", "Value", "Unit"},
		{"epsilon_x", r.EpsilonX, "-"},
		{"theta_min", r.ThetaMin, "deg"},
		{"VRd,c", r.VRdc / 1e3, "kN"},
		{"VRd,s", r.VRds / 1e3, "kN"},
		{"VRd,max", r.VRdMax / 1e3, "kN"},
		{"VRd", r.VRd / 1e3, "kN"},
		{"VEd", r.VEd / 1e3, "kN"},
		{"Utilization", cellNumber(r.Utilization), "-"},
		{"Governing", r.Governing, ""},
		{"Status", status, ""},
	}
	for _, w := range r.Warnings {
		rows = append(rows, []interface{}{"Warning", w.Message, string(w.Code)})
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(results, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(results, "A1", "C1", bold); err != nil {
		return err
	}
	if err := f.SetColWidth(results, "A", "C", 16); err != nil {
		return err
	}

	return f.SaveAs(path)
}
