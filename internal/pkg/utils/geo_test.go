package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiniteCoordinates(t *testing.T) {
	assert.True(t, FiniteCoordinates(42.37806, -87.94427))
	assert.True(t, FiniteCoordinates(123, -500), "range is not checked")
	assert.False(t, FiniteCoordinates(math.NaN(), 0))
	assert.False(t, FiniteCoordinates(0, math.Inf(1)))
}

func TestParseLatLon(t *testing.T) {
	lat, lon, err := ParseLatLon("42.37806,-87.94427")
	require.NoError(t, err)
	assert.Equal(t, 42.37806, lat)
	assert.Equal(t, -87.94427, lon)

	lat, lon, err = ParseLatLon(" 1.5 , 2 ")
	require.NoError(t, err)
	assert.Equal(t, 1.5, lat)
	assert.Equal(t, 2.0, lon)

	for _, in := range []string{"", "42.3", "a,b", "NaN,1", "1,+Inf"} {
		_, _, err := ParseLatLon(in)
		assert.Error(t, err, in)
	}
}
