package mc2010_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/mcshear/internal/mc2010"
)

func TestEpsilonX(t *testing.T) {
	cases := []struct {
		es, as, med, ved, ned, z, deltaE float64
		expected                         float64
	}{
		{200000, 1000, 50000000, 10000, 2000, 160, 50, 8.1e-4},
		{210000, 1000, 50000000, 10000, 2000, 160, 50, 7.7e-4},
		{210000, 5000, 50000000, 10000, 2000, 160, 50, 1.5e-4},
		{210000, 2000, 50000000, 10000, 2000, 160, 50, 3.9e-4},
		{210000, 2000, 40000000, 20000, 2000, 160, 50, 3.2e-4},
		{210000, 2000, 40000000, 20000, 1000, 160, 50, 3.2e-4},
		{210000, 2000, 40000000, 20000, 1000, 140, 50, 3.64965e-4},
		{210000, 2000, 40000000, 20000, 1000, 180, 50, 2.9e-4},
	}
	for _, c := range cases {
		got, err := mc2010.EpsilonX(c.es, c.as, c.med, c.ved, c.ned, c.z, c.deltaE)
		require.NoError(t, err)
		assert.InEpsilon(t, c.expected, got, 0.05, "εx for As=%g Med=%g z=%g", c.as, c.med, c.z)
	}
}

// TestEpsilonX_NonNegative verifies the strain floor, including a large
// negative eccentricity that drives the bracket below zero.
func TestEpsilonX_NonNegative(t *testing.T) {
	got, err := mc2010.EpsilonX(200000, 1000, 0, 0, 10000, 100, -500)
	require.NoError(t, err)
	assert.Zero(t, got)

	for _, med := range []float64{-50e6, -1, 0, 1, 50e6} {
		got, err := mc2010.EpsilonX(200000, 1000, med, -10000, -2000, 160, 50)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, 0.0)
	}
}

func TestEpsilonX_SignOfForcesIgnored(t *testing.T) {
	pos, err := mc2010.EpsilonX(210000, 2000, 40e6, 20e3, 1e3, 160, 50)
	require.NoError(t, err)
	neg, err := mc2010.EpsilonX(210000, 2000, -40e6, -20e3, -1e3, 160, 50)
	require.NoError(t, err)
	assert.Equal(t, pos, neg)
}

func TestEpsilonX_DomainErrors(t *testing.T) {
	_, err := mc2010.EpsilonX(200000, 1000, 1, 1, 1, 0, 50)
	require.ErrorIs(t, err, mc2010.ErrDomain)

	var de *mc2010.DomainError
	_, err = mc2010.EpsilonX(0, 1000, 1, 1, 1, 160, 50)
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "E·As", de.Quantity)

	_, err = mc2010.EpsilonX(200000, 0, 1, 1, 1, 160, 50)
	require.ErrorIs(t, err, mc2010.ErrDomain)
}
