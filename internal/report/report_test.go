package report_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/mcshear/internal/mc2010"
	"github.com/alexiusacademia/mcshear/internal/report"
	"github.com/alexiusacademia/mcshear/internal/shear"
)

func writeSheet(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(t.TempDir(), "member.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

var memberRows = [][]interface{}{
	{"Beam B1 at support A"},
	{"name", "B1"},
	{"fck", 35}, {"z", 180}, {"bw", 200}, {"dg", 16},
	{"es", 200000}, {"as", 2000},
	{"ved", 2000}, {"delta_e", 20},
	{"asw", 500}, {"sw", 200}, {"fywd", 434}, {"theta", 40},
	{"concrete_level", 1}, {"steel_level", 1},
	{"reinforced", "true"},
	{"checked by", "AA"},
}

func checkedMember(t *testing.T) (*shear.Member, *shear.CheckResult) {
	t.Helper()
	m, err := report.ReadMember(writeSheet(t, memberRows))
	require.NoError(t, err)
	res, err := m.Check()
	require.NoError(t, err)
	return m, res
}

func TestReadMember(t *testing.T) {
	m, res := checkedMember(t)

	assert.Equal(t, "B1", m.Name)
	assert.True(t, m.Reinforced)
	assert.Equal(t, 2000.0, m.Section.Ved)
	assert.Equal(t, mc2010.Level1, m.SteelLevel)
	assert.Equal(t, mc2010.DefaultGammaC, m.Section.GammaC)
	assert.Equal(t, mc2010.DefaultAlfa, m.Section.Alfa)
	assert.InEpsilon(t, 216096, res.VRd, 0.001)
}

func TestReadMember_Invalid(t *testing.T) {
	_, err := report.ReadMember(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)

	_, err = report.ReadMember(writeSheet(t, [][]interface{}{{"title only"}}))
	assert.Error(t, err)

	_, err = report.ReadMember(writeSheet(t, [][]interface{}{{"fck", "abc"}}))
	assert.ErrorContains(t, err, "row 1")

	_, err = report.ReadMember(writeSheet(t, [][]interface{}{{"steel_level", "II"}}))
	assert.Error(t, err)

	_, err = report.ReadMember(writeSheet(t, [][]interface{}{{"fck", -35}, {"z", 180}, {"bw", 200}}))
	var verr *shear.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestWriteCheckWorkbook(t *testing.T) {
	m, res := checkedMember(t)

	path := filepath.Join(t.TempDir(), "b1.xlsx")
	require.NoError(t, report.WriteCheckWorkbook(path, m, res))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Results")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 11)
	assert.Equal(t, "Quantity", rows[0][0])
	assert.Equal(t, "Status", rows[10][0])
	assert.Equal(t, "OK", rows[10][1])

	// the Input sheet round-trips through ReadMember
	back, err := report.ReadMember(path)
	require.NoError(t, err)
	assert.Equal(t, m.Name, back.Name)
	assert.Equal(t, m.Section, back.Section)
	assert.Equal(t, m.SteelLevel, back.SteelLevel)
	assert.Equal(t, m.Reinforced, back.Reinforced)
}

func TestWriteCheckWorkbook_InfiniteUtilization(t *testing.T) {
	m, res := checkedMember(t)
	res.VRd = 0
	res.Utilization = math.Inf(1)
	res.IsAdequate = false

	path := filepath.Join(t.TempDir(), "b1.xlsx")
	require.NoError(t, report.WriteCheckWorkbook(path, m, res))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Results")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 11)
	assert.Equal(t, "Utilization", rows[8][0])
	assert.Equal(t, "+Inf", rows[8][1])
	assert.Equal(t, "NOT OK", rows[10][1])

	typ, err := f.GetCellType("Results", "B9")
	require.NoError(t, err)
	assert.Equal(t, excelize.CellTypeSharedString, typ)
}

func TestWriteCheckPDF(t *testing.T) {
	m := shear.NewMember(35, 180, 200)
	m.Name = "B1"
	m.Section.Es, m.Section.As, m.Section.Ved = 200000, 2000, 2000
	m.Section.Asw, m.Section.Sw, m.Section.Fywd, m.Section.Theta = 500, 200, 434, 50
	m.Reinforced = true
	m.ConcreteLevel = mc2010.Level2
	m.SteelLevel = mc2010.Level2

	res, err := m.Check()
	require.NoError(t, err)
	require.NotEmpty(t, res.Warnings)

	path := filepath.Join(t.TempDir(), "b1.pdf")
	require.NoError(t, report.WriteCheckPDF(path, m, res))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}
