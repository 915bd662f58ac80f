package fusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Bosch-Hale DT check values, Nucl. Fusion 32 (1992) 611, table VIII.
func TestReactivityReferenceValues(t *testing.T) {
	cases := []struct {
		tIons  float64 // [keV]
		sigmaV float64 // [m^3/s]
	}{
		{5., 1.3660e-23},
		{10., 1.1363e-22},
		{20., 4.3306e-22},
	}
	for _, c := range cases {
		sigmaV, err := Reactivity(c.tIons)
		require.NoError(t, err)
		assert.InEpsilon(t, c.sigmaV, sigmaV, 1e-3, "at %g keV", c.tIons)
	}
}

func TestReactivityMonotonicBelowPeak(t *testing.T) {
	prev := 0.
	for tIons := 1.; tIons <= 60.; tIons += 1. {
		sigmaV, err := Reactivity(tIons)
		require.NoError(t, err)
		assert.Greater(t, sigmaV, prev, "at %g keV", tIons)
		prev = sigmaV
	}
}

func TestReactivityInvalid(t *testing.T) {
	_, err := Reactivity(0)
	assert.Error(t, err)
	_, err = Reactivity(-5)
	assert.Error(t, err)
}

func TestReactionRate(t *testing.T) {
	rate, err := ReactionRate(1e20, 1e20, 10.)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.1363e18, rate, 1e-3)

	_, err = ReactionRate(0, 1e20, 10.)
	assert.Error(t, err)
	_, err = ReactionRate(1e20, -1e20, 10.)
	assert.Error(t, err)
}

// At fixed pressure the fusion power peaks near 13-14 keV.
func TestOptimalTemperature(t *testing.T) {
	best := OptimalTemperature(5., 30.)
	assert.InDelta(t, 13.5, best, 0.5)
}
