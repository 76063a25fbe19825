package Burgers1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gosubcell/DGSubcell"
	"github.com/notargets/gosubcell/types"
)

func TestBoundaryConditions(t *testing.T) {
	var (
		volume = []float64{3, 4, 5, 6, 7}
		lower  = GhostZoneCoordinates(0, 0.1, 3, DGSubcell.LowerXi)
		upper  = GhostZoneCoordinates(0, 0.1, 3, DGSubcell.UpperXi)
	)
	assert.InDeltaSlice(t, []float64{-0.25, -0.15, -0.05}, lower, 1.e-15)
	assert.InDeltaSlice(t, []float64{0.05, 0.15, 0.25}, upper, 1.e-15)
	{
		bc, err := NewBoundaryCondition(types.BC_Dirichlet, 1.5, nil)
		require.NoError(t, err)
		assert.Equal(t, types.BC_Dirichlet, bc.Type())
		v, f := bc.DgGhost(9, 0, 0)
		assert.Equal(t, 1.5, v)
		assert.Equal(t, Flux(1.5), f)
		assert.Equal(t, []float64{1.5, 1.5, 1.5}, bc.FdGhost(volume, DGSubcell.LowerXi, lower, 0))
	}
	{
		bc, err := NewBoundaryCondition(types.BC_Out, 0, nil)
		require.NoError(t, err)
		v, f := bc.DgGhost(-2, 0, 0)
		assert.Equal(t, -2., v)
		assert.Equal(t, 2., f)
		assert.Equal(t, []float64{3, 3, 3}, bc.FdGhost(volume, DGSubcell.LowerXi, lower, 0))
		assert.Equal(t, []float64{7, 7, 7}, bc.FdGhost(volume, DGSubcell.UpperXi, upper, 0))
	}
	{
		step, err := NewStep(2, 1, 0)
		require.NoError(t, err)
		_, err = NewBoundaryCondition(types.BC_DirichletAnalytic, 0, nil)
		assert.Error(t, err)
		bc, err := NewBoundaryCondition(types.BC_DirichletAnalytic, 0, step)
		require.NoError(t, err)
		v, _ := bc.DgGhost(0, 0.1, 0)
		assert.Equal(t, 1., v)
		// The shock passes x = 0.1 at t = 1/15
		v, f := bc.DgGhost(0, 0.1, 0.1)
		assert.Equal(t, 2., v)
		assert.Equal(t, 2., f)
		assert.Equal(t, []float64{1, 1, 1}, bc.FdGhost(volume, DGSubcell.UpperXi, upper, 0))
		assert.Equal(t, []float64{2, 2, 1}, bc.FdGhost(volume, DGSubcell.UpperXi, upper, 0.12))
	}
	// Sinusoid boundaries use the data once the shock has formed
	{
		bc, err := NewBoundaryCondition(types.BC_DirichletAnalytic, 0, Sinusoid{})
		require.NoError(t, err)
		for _, tm := range []float64{1, 1.2} {
			v, f := bc.DgGhost(0, 2, tm)
			assert.InDelta(t, math.Sin(2), v, 1.e-15)
			assert.InDelta(t, Flux(math.Sin(2)), f, 1.e-15)
			ghost := bc.FdGhost(volume, DGSubcell.UpperXi, upper, tm)
			for i, x := range upper {
				assert.InDelta(t, math.Sin(x), ghost[i], 1.e-15)
			}
		}
	}
	{
		bc, err := NewBoundaryCondition(types.BC_Periodic, 0, nil)
		require.NoError(t, err)
		assert.Panics(t, func() { bc.DgGhost(0, 0, 0) })
		assert.Panics(t, func() { bc.FdGhost(volume, DGSubcell.LowerXi, lower, 0) })
	}
	_, err := NewBoundaryCondition(types.BC_None, 0, nil)
	assert.Error(t, err)
}
