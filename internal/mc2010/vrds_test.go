package mc2010_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/mcshear/internal/mc2010"
)

func TestVRds(t *testing.T) {
	cases := []struct {
		asw, sw, z, fywd, theta, alfa float64
		expected                      float64
	}{
		{1600, 50, 200, 355, 25, 30, 4403769},
		{2000, 50, 200, 355, 25, 30, 5504711},
		{1600, 100, 200, 355, 25, 30, 2201884},
		{1600, 50, 200, 275, 25, 30, 3411370},
		{1600, 50, 200, 355, 22, 30, 4779308},
		{1600, 50, 200, 355, 25, 25, 4118262},
	}
	for _, c := range cases {
		var diag mc2010.Diagnostics
		got, err := mc2010.VRds(c.asw, c.sw, c.z, c.fywd, c.theta, c.alfa, &diag)
		require.NoError(t, err)
		assert.InEpsilon(t, c.expected, got, 0.001)
		assert.Zero(t, diag.Len(), "θ=%g is inside the code range", c.theta)
	}
}

func TestVRds_ThetaOutOfRangeWarns(t *testing.T) {
	for _, theta := range []float64{10, 19.99, 45.01, 60} {
		var diag mc2010.Diagnostics
		got, err := mc2010.VRds(500, 200, 180, 434, theta, 90, &diag)
		require.NoError(t, err, "out-of-range θ is not fatal")
		assert.Greater(t, got, 0.0)
		assert.True(t, diag.Has(mc2010.WarnThetaOutOfRange), "θ=%g", theta)
	}

	for _, theta := range []float64{20, 30, 45} {
		var diag mc2010.Diagnostics
		_, err := mc2010.VRds(500, 200, 180, 434, theta, 90, &diag)
		require.NoError(t, err)
		assert.False(t, diag.Has(mc2010.WarnThetaOutOfRange), "θ=%g", theta)
	}
}

func TestVRds_NilDiagnostics(t *testing.T) {
	got, err := mc2010.VRds(500, 200, 180, 434, 10, 90, nil)
	require.NoError(t, err)
	assert.Greater(t, got, 0.0)
}

func TestVRds_DomainErrors(t *testing.T) {
	_, err := mc2010.VRds(500, 0, 180, 434, 40, 90, nil)
	require.ErrorIs(t, err, mc2010.ErrDomain)

	_, err = mc2010.VRds(500, 200, 180, 434, 0, 90, nil)
	require.ErrorIs(t, err, mc2010.ErrDomain)

	_, err = mc2010.VRds(500, 200, 180, 434, 40, 180, nil)
	require.ErrorIs(t, err, mc2010.ErrDomain)
}

func TestSectionVRds_MatchesFunction(t *testing.T) {
	s := mc2010.NewSection(35, 180, 200)
	s.Asw, s.Sw, s.Fywd, s.Theta = 500, 200, 434, 40

	want, err := mc2010.VRds(500, 200, 180, 434, 40, mc2010.DefaultAlfa, nil)
	require.NoError(t, err)
	got, err := s.VRds(nil)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
