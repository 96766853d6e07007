package mc2010_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/mcshear/internal/mc2010"
)

func TestMaterials(t *testing.T) {
	fctm, err := mc2010.Fctm(30)
	require.NoError(t, err)
	assert.InEpsilon(t, 2.8965, fctm, 1e-4)

	fctm, err = mc2010.Fctm(60)
	require.NoError(t, err)
	assert.InEpsilon(t, 4.3547, fctm, 1e-4)

	fctd, err := mc2010.Fctd(30, mc2010.DefaultGammaC)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.3517, fctd, 1e-4)

	fcd, err := mc2010.Fcd(35, mc2010.DefaultGammaC)
	require.NoError(t, err)
	assert.InEpsilon(t, 23.333, fcd, 1e-4)

	fyd, err := mc2010.Fyd(500, mc2010.DefaultGammaS)
	require.NoError(t, err)
	assert.InEpsilon(t, 434.78, fyd, 1e-4)

	eci, err := mc2010.Eci(30)
	require.NoError(t, err)
	assert.InEpsilon(t, 33550, eci, 1e-4)

	assert.Equal(t, 38.0, mc2010.Fcm(30))
}

func TestMaterials_Domain(t *testing.T) {
	_, err := mc2010.Fctm(0)
	assert.ErrorIs(t, err, mc2010.ErrDomain)

	_, err = mc2010.Fcd(30, 0)
	assert.ErrorIs(t, err, mc2010.ErrDomain)

	_, err = mc2010.Fyd(500, 0)
	assert.ErrorIs(t, err, mc2010.ErrDomain)

	_, err = mc2010.Eci(-10)
	assert.ErrorIs(t, err, mc2010.ErrDomain)
}

func TestGoverning(t *testing.T) {
	actions := mc2010.Actions{Permanent: 50e3, Variable: 30e3}

	ved, combo := mc2010.Governing(actions, mc2010.ULSCombinations)
	assert.InDelta(t, 112.5e3, ved, 1e-6)
	assert.Equal(t, "1", combo.ID)

	// seismic governs a reversed shear
	actions = mc2010.Actions{Permanent: 10e3, Variable: 5e3, Seismic: -200e3}
	ved, combo = mc2010.Governing(actions, mc2010.ULSCombinations)
	assert.InDelta(t, -188.5e3, ved, 1e-6)
	assert.Equal(t, "4", combo.ID)

	ved, _ = mc2010.Governing(mc2010.Actions{}, mc2010.ULSCombinations)
	assert.Zero(t, ved)
}
