package geometry_test

import (
	"testing"

	"github.com/nicoberrocal/battlecore/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapLocationDistanceSquared(t *testing.T) {
	a := geometry.New(0, 0)
	b := geometry.New(3, 4)
	assert.Equal(t, int64(25), a.DistanceSquaredTo(b))
	assert.Equal(t, int64(25), b.DistanceSquaredTo(a))
}

func TestMapLocationChebyshev(t *testing.T) {
	a := geometry.New(0, 0)
	assert.Equal(t, int32(3), a.DistanceChebyshevTo(geometry.New(3, 1)))
	assert.Equal(t, int32(1), a.DistanceChebyshevTo(geometry.New(1, 1)))
}

func TestMapLocationAddAndAdjacency(t *testing.T) {
	origin := geometry.New(5, 5)

	north := origin.Add(geometry.North)
	require.Equal(t, geometry.New(5, 6), north)
	assert.True(t, origin.IsAdjacentTo(north))

	none := origin.Add(geometry.None)
	assert.Equal(t, origin, none)

	omni := origin.Add(geometry.Omni)
	assert.Equal(t, origin, omni)

	assert.False(t, origin.IsAdjacentTo(origin))
}

func TestDirectionOppositeAndDelta(t *testing.T) {
	for _, d := range geometry.AllDirections {
		opp := d.Opposite()
		dx, dy := d.Delta()
		ox, oy := opp.Delta()
		assert.Equal(t, dx, -ox, "direction %s", d)
		assert.Equal(t, dy, -oy, "direction %s", d)
	}
	assert.Equal(t, geometry.South, geometry.North.Opposite())
	assert.Equal(t, geometry.None, geometry.None.Opposite())
}

func TestDirectionIsMovement(t *testing.T) {
	assert.True(t, geometry.North.IsMovement())
	assert.True(t, geometry.NorthWest.IsMovement())
	assert.False(t, geometry.None.IsMovement())
	assert.False(t, geometry.Omni.IsMovement())
}

func TestDirectionIsDiagonal(t *testing.T) {
	assert.True(t, geometry.NorthEast.IsDiagonal())
	assert.False(t, geometry.North.IsDiagonal())
}

func TestDirectionIsValid(t *testing.T) {
	assert.True(t, geometry.Omni.IsValid())
	assert.False(t, geometry.Direction(999).IsValid())
}

func TestAllDirectionsFixedOrder(t *testing.T) {
	want := []geometry.Direction{
		geometry.North, geometry.NorthEast, geometry.East, geometry.SouthEast,
		geometry.South, geometry.SouthWest, geometry.West, geometry.NorthWest,
	}
	assert.Equal(t, want, geometry.AllDirections)
}
