package arith

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrityunjay-tripathi/qpp/pkg/math/numerr"
)

func TestGCD(t *testing.T) {
	g, err := GCD(48, 18)
	require.NoError(t, err)
	assert.EqualValues(t, 6, g)

	g, err = GCD(-48, 18)
	require.NoError(t, err)
	assert.EqualValues(t, 6, g, "gcd should be non-negative for negative inputs")

	g, err = GCD(0, -7)
	require.NoError(t, err)
	assert.EqualValues(t, 7, g, "gcd(0, n) = |n|")

	g, err = GCD(7, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 7, g)

	_, err = GCD(0, 0)
	assert.ErrorIs(t, err, numerr.ErrOutOfRange)
}

func TestGCDAll(t *testing.T) {
	g, err := GCDAll([]int64{48, 18, 12})
	require.NoError(t, err)
	assert.EqualValues(t, 6, g)

	_, err = GCDAll(nil)
	assert.ErrorIs(t, err, numerr.ErrZeroSize)

	// The singleton result is normalized, unlike the lcm singleton below.
	g, err = GCDAll([]int64{-5})
	require.NoError(t, err)
	assert.EqualValues(t, 5, g)
}

func TestLCM(t *testing.T) {
	l, err := LCM(4, 6)
	require.NoError(t, err)
	assert.EqualValues(t, 12, l)

	l, err = LCM(-4, 6)
	require.NoError(t, err)
	assert.EqualValues(t, 12, l)

	l, err = LCM(0, 5)
	require.NoError(t, err)
	assert.EqualValues(t, 0, l)

	_, err = LCM(0, 0)
	assert.ErrorIs(t, err, numerr.ErrOutOfRange)
}

func TestLCMAll(t *testing.T) {
	l, err := LCMAll([]int64{4, 6, 10})
	require.NoError(t, err)
	assert.EqualValues(t, 60, l)

	_, err = LCMAll([]int64{})
	assert.ErrorIs(t, err, numerr.ErrZeroSize)

	_, err = LCMAll([]int64{4, 0, 10})
	assert.ErrorIs(t, err, numerr.ErrOutOfRange)

	// Singleton convention: the element comes back as is, sign included.
	l, err = LCMAll([]int64{-5})
	require.NoError(t, err)
	assert.EqualValues(t, -5, l)
}
