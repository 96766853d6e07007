package mc2010_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/mcshear/internal/mc2010"
)

// concreteCase mirrors the argument order of the concrete contribution:
// concrete level, steel level, fck, z, bw, dg, Es, As, Med, Ved, Ned, Δe, α, γc
type concreteCase struct {
	concrete, steel                     mc2010.Level
	fck, z, bw, dg, es, as              float64
	med, ved, ned, deltaE, alfa, gammaC float64
	expected                            float64
}

func (c concreteCase) section() mc2010.Section {
	return mc2010.Section{
		Fck: c.fck, Z: c.z, Bw: c.bw, Dg: c.dg,
		Es: c.es, As: c.as,
		Med: c.med, Ved: c.ved, Ned: c.ned, DeltaE: c.deltaE,
		Alfa: c.alfa, GammaC: c.gammaC,
	}
}

func TestVRdc(t *testing.T) {
	cases := []concreteCase{
		{mc2010.Level1, mc2010.LevelNone, 35, 180, 300, 0, 0, 0, 0, 0, 0, 0, 0, 1.5, 31294},
		{mc2010.Level1, mc2010.LevelNone, 35, 200, 300, 0, 0, 0, 0, 0, 0, 0, 0, 1.5, 34077},
		{mc2010.Level1, mc2010.Level1, 35, 200, 300, 0, 0, 0, 0, 0, 0, 0, 0, 1.5, 34077},
		{mc2010.Level2, mc2010.Level1, 35, 140, 300, 16, 21e4, 2000, 40e6, 2e4, 1000, 50, 0, 1.5, 48828},
		{mc2010.Level2, mc2010.Level1, 35, 140, 300, 32, 21e4, 2000, 40e6, 2e4, 1000, 50, 0, 1.5, 50375},
		{mc2010.LevelNone, mc2010.Level3, 35, 200, 300, 32, 21e4, 2000, 40e6, 2e4, 1000, 50, 1.5, 1.5, 67566},
	}
	for _, c := range cases {
		got, err := c.section().VRdc(c.concrete, c.steel)
		require.NoError(t, err)
		assert.InEpsilon(t, c.expected, got, 0.001, "concrete %s, steel %s", c.concrete, c.steel)
	}
}

// TestVRdcApprox3_FlooredAtZero uses a shear far above the crushing
// resistance, which would make kv negative without the floor.
func TestVRdcApprox3_FlooredAtZero(t *testing.T) {
	c := concreteCase{mc2010.LevelNone, mc2010.Level3, 35, 200, 300, 32, 21e4, 2000, 40e6, 20e6, 1000, 50, 1.5, 1.5, 0}
	got, err := c.section().VRdc(c.concrete, c.steel)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestVRdcApprox3_ExplicitConcreteLevel(t *testing.T) {
	s := concreteCase{fck: 35, z: 200, bw: 300, dg: 32, es: 21e4, as: 2000, med: 40e6, ved: 2e4, ned: 1000, deltaE: 50, alfa: 1.5, gammaC: 1.5}.section()

	implicit, err := s.VRdc(mc2010.LevelNone, mc2010.Level3)
	require.NoError(t, err)
	explicit, err := s.VRdc(mc2010.Level3, mc2010.Level3)
	require.NoError(t, err)
	direct, err := s.VRdcApprox3()
	require.NoError(t, err)

	assert.Equal(t, direct, implicit)
	assert.Equal(t, direct, explicit)
}

// TestVRdcApprox1_IndependentOfForces varies only the strain inputs.
func TestVRdcApprox1_IndependentOfForces(t *testing.T) {
	base, err := mc2010.VRdcApprox1(35, 180, 300, 1.5)
	require.NoError(t, err)

	variants := []mc2010.Section{
		{Fck: 35, Z: 180, Bw: 300, GammaC: 1.5},
		{Fck: 35, Z: 180, Bw: 300, GammaC: 1.5, Es: 200000, As: 1000, Med: 50e6, Ved: 1e4, Ned: 2e3, DeltaE: 50},
		{Fck: 35, Z: 180, Bw: 300, GammaC: 1.5, Es: 1, As: 1, Med: -1e9, Ved: -1e7, Ned: 5e5, DeltaE: -20},
	}
	for _, s := range variants {
		got, err := s.VRdcApprox1()
		require.NoError(t, err)
		assert.Equal(t, base, got)
	}
}

func TestVRdcApprox1_SqrtFckCap(t *testing.T) {
	// √100 = 10 is capped at 8, so fck = 64 and fck = 100 give the same result
	a, err := mc2010.VRdcApprox1(64, 200, 300, 1.5)
	require.NoError(t, err)
	b, err := mc2010.VRdcApprox1(100, 200, 300, 1.5)
	require.NoError(t, err)
	assert.InDelta(t, a, b, 1e-9)
}

func TestVRdcApprox2_AggregateFactorFloor(t *testing.T) {
	// kdg = 32/(16 + dg) reaches the 0.75 floor from dg ≈ 26.7 mm
	s := concreteCase{fck: 35, z: 140, bw: 300, es: 21e4, as: 2000, med: 40e6, ved: 2e4, ned: 1000, deltaE: 50, gammaC: 1.5}.section()
	s.Dg = 32
	a, err := s.VRdcApprox2()
	require.NoError(t, err)
	s.Dg = 64
	b, err := s.VRdcApprox2()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestVRdc_Combinations(t *testing.T) {
	s := concreteCase{fck: 35, z: 200, bw: 300, dg: 32, es: 21e4, as: 2000, med: 40e6, ved: 2e4, ned: 1000, deltaE: 50, alfa: 1.5, gammaC: 1.5}.section()

	for _, steel := range []mc2010.Level{mc2010.LevelNone, mc2010.Level1, mc2010.Level2} {
		_, err := s.VRdc(mc2010.LevelNone, steel)
		require.ErrorIs(t, err, mc2010.ErrUndefinedCombination, "steel %s", steel)
		_, err = s.VRdc(mc2010.Level3, steel)
		require.ErrorIs(t, err, mc2010.ErrUndefinedCombination, "steel %s", steel)
	}

	for _, pair := range [][2]mc2010.Level{{4, mc2010.Level1}, {-1, mc2010.Level3}, {mc2010.Level1, 4}, {mc2010.Level2, -2}} {
		_, err := s.VRdc(pair[0], pair[1])
		require.ErrorIs(t, err, mc2010.ErrInvalidLevel, "concrete %s, steel %s", pair[0], pair[1])
	}

	for _, steel := range []mc2010.Level{mc2010.LevelNone, mc2010.Level1, mc2010.Level2, mc2010.Level3} {
		a1, err := s.VRdc(mc2010.Level1, steel)
		require.NoError(t, err)
		want1, err := s.VRdcApprox1()
		require.NoError(t, err)
		assert.Equal(t, want1, a1)

		a2, err := s.VRdc(mc2010.Level2, steel)
		require.NoError(t, err)
		want2, err := s.VRdcApprox2()
		require.NoError(t, err)
		assert.Equal(t, want2, a2)
	}
}

func TestVRdc_DomainErrors(t *testing.T) {
	_, err := mc2010.VRdcApprox1(-1, 200, 300, 1.5)
	require.ErrorIs(t, err, mc2010.ErrDomain)

	_, err = mc2010.VRdcApprox1(35, 200, 300, 0)
	require.ErrorIs(t, err, mc2010.ErrDomain)

	s := concreteCase{fck: 35, z: 140, bw: 300, dg: 16, gammaC: 1.5}.section()
	_, err = s.VRdcApprox2()
	require.ErrorIs(t, err, mc2010.ErrDomain, "Level II needs E·As")
}
