package DGSubcell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceData(t *testing.T) {
	// 1D, two variables
	{
		vol := []float64{0, 1, 2, 3, 4, 10, 11, 12, 13, 14}
		assert.Equal(t, []float64{3, 4, 13, 14}, SliceData(vol, []int{5}, 2, 2, UpperXi))
		assert.Equal(t, []float64{0, 1, 10, 11}, SliceData(vol, []int{5}, 2, 2, LowerXi))
		assert.Equal(t, 4, GhostZoneLength([]int{5}, 2, 2, UpperXi))
	}
	// 2D, x-fastest
	{
		vol := []float64{0, 1, 2, 3, 4, 5}
		ext := []int{3, 2}
		assert.Equal(t, []float64{2, 5}, SliceData(vol, ext, 1, 1, UpperXi))
		assert.Equal(t, []float64{0, 1, 3, 4}, SliceData(vol, ext, 1, 2, LowerXi))
		assert.Equal(t, []float64{0, 1, 2}, SliceData(vol, ext, 1, 1, Direction{Dimension: 1, Side: Lower}))
		assert.Equal(t, []float64{3, 4, 5}, SliceData(vol, ext, 1, 1, Direction{Dimension: 1, Side: Upper}))
		assert.Equal(t, 3, GhostZoneLength(ext, 1, 1, Direction{Dimension: 1, Side: Upper}))
	}
	assert.Panics(t, func() { SliceData(make([]float64, 4), []int{5}, 1, 2, UpperXi) })
	assert.Panics(t, func() { SliceData(make([]float64, 5), []int{5}, 1, 6, UpperXi) })
	assert.Panics(t, func() { SliceData(make([]float64, 5), []int{5}, 1, 2, Direction{Dimension: 1}) })
}

func TestPackageGhostData(t *testing.T) {
	vol := []float64{0, 1, 2, 3, 4}
	rdmp := NewRdmpTciData([]float64{4}, []float64{0})
	buf := PackageGhostData(vol, []int{5}, 1, 3, LowerXi, rdmp)
	assert.Equal(t, []float64{0, 1, 2, 4, 0}, buf)
	ghost, rd := UnpackGhostData(buf, 3, 1)
	assert.Equal(t, []float64{0, 1, 2}, ghost)
	assert.True(t, rd.Equal(rdmp))
	// Unpacked data does not alias the buffer
	buf[0] = 100
	assert.Equal(t, 0., ghost[0])
	assert.Panics(t, func() { UnpackGhostData(buf, 2, 1) })
	assert.Panics(t, func() { UnpackGhostData(buf, 3, 2) })
}

func TestGhostDataStore(t *testing.T) {
	var (
		gs = NewGhostDataStore()
		id = DirectionalId{Direction: UpperXi, Id: 3}
	)
	assert.True(t, gs.Insert(id, 2, []float64{2}))
	assert.False(t, gs.Insert(id, 1, []float64{1}))
	assert.Equal(t, []float64{2}, gs.Get(id, 2))
	assert.Panics(t, func() { gs.Get(id, 1) })
	assert.True(t, gs.Insert(id, 3, []float64{3}))
	assert.Equal(t, []float64{3}, gs.Get(id, 3))
	assert.Panics(t, func() { gs.Get(id, 2) })
	assert.Panics(t, func() { gs.Get(DirectionalId{Direction: LowerXi, Id: 3}, 3) })
	gs.Clear()
	assert.Equal(t, 0, gs.Len())
}

func TestDirections(t *testing.T) {
	assert.Equal(t, LowerXi, UpperXi.Opposite())
	assert.Equal(t, -1., LowerXi.Sign())
	assert.Equal(t, "+xi", UpperXi.String())
	assert.Equal(t, "-eta", Direction{Dimension: 1, Side: Lower}.String())
	assert.Len(t, Directions(3), 6)
	assert.Equal(t, "Subcell", Subcell.String())
	assert.NoError(t, DefaultSubcellOptions().Validate())
	bad := DefaultSubcellOptions()
	bad.PerssonExponent = 0
	assert.Error(t, bad.Validate())
}
