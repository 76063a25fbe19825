package Burgers1D

import (
	"fmt"

	"github.com/notargets/gosubcell/DGSubcell"
	"github.com/notargets/gosubcell/types"
)

// BoundaryCondition supplies the exterior state on a physical boundary face,
// as a face value for DG elements and as ghost cells for subcell elements
type BoundaryCondition interface {
	DgGhost(vInterior, x, t float64) (v, fluxV float64)
	// FdGhost returns one value per ghost cell, ordered by increasing x.
	// volume holds the element's subcell values.
	FdGhost(volume []float64, direction DGSubcell.Direction, ghostCoords []float64, t float64) (ghost []float64)
	Type() types.BCFLAG
}

// NewBoundaryCondition builds a boundary condition from its flag. value is
// used by Dirichlet, data by DirichletAnalytic.
func NewBoundaryCondition(bcf types.BCFLAG, value float64, data AnalyticPrescription) (bc BoundaryCondition, err error) {
	switch bcf {
	case types.BC_Periodic:
		bc = Periodic{}
	case types.BC_Dirichlet:
		bc = Dirichlet{Value: value}
	case types.BC_DirichletAnalytic:
		if data == nil {
			err = fmt.Errorf("analytic boundary condition needs analytic data")
			return
		}
		bc = DirichletAnalytic{Prescription: data}
	case types.BC_Out:
		bc = Outflow{}
	default:
		err = fmt.Errorf("boundary condition %s is not available for Burgers", bcf)
	}
	return
}

// GhostZoneCoordinates returns the centres of the g ghost cells of width dx
// beyond the face at xFace, ordered by increasing x
func GhostZoneCoordinates(xFace, dx float64, g int, direction DGSubcell.Direction) (x []float64) {
	x = make([]float64, g)
	for i := range x {
		if direction.Side == DGSubcell.Lower {
			x[i] = xFace - (float64(g-i)-0.5)*dx
		} else {
			x[i] = xFace + (float64(i)+0.5)*dx
		}
	}
	return
}

// Periodic faces are connected by the mesh and never ask for ghost data
type Periodic struct{}

func (Periodic) Type() types.BCFLAG { return types.BC_Periodic }

func (Periodic) DgGhost(_, _, _ float64) (v, fluxV float64) {
	panic(fmt.Errorf("periodic boundary has no ghost state"))
}

func (Periodic) FdGhost(_ []float64, _ DGSubcell.Direction, _ []float64, _ float64) []float64 {
	panic(fmt.Errorf("periodic boundary has no ghost cells"))
}

// Dirichlet holds the boundary at a constant value
type Dirichlet struct {
	Value float64
}

func (Dirichlet) Type() types.BCFLAG { return types.BC_Dirichlet }

func (d Dirichlet) DgGhost(_, _, _ float64) (v, fluxV float64) {
	v = d.Value
	fluxV = Flux(v)
	return
}

func (d Dirichlet) FdGhost(_ []float64, _ DGSubcell.Direction, ghostCoords []float64, _ float64) (ghost []float64) {
	ghost = make([]float64, len(ghostCoords))
	for i := range ghost {
		ghost[i] = d.Value
	}
	return
}

// DirichletAnalytic takes the boundary state from analytic data or an
// analytic solution at the current time
type DirichletAnalytic struct {
	Prescription AnalyticPrescription
}

func (DirichletAnalytic) Type() types.BCFLAG { return types.BC_DirichletAnalytic }

func (da DirichletAnalytic) DgGhost(_, x, t float64) (v, fluxV float64) {
	v = da.Prescription.Variables([]float64{x}, t)[0]
	fluxV = Flux(v)
	return
}

func (da DirichletAnalytic) FdGhost(_ []float64, _ DGSubcell.Direction, ghostCoords []float64, t float64) []float64 {
	return da.Prescription.Variables(ghostCoords, t)
}

// Outflow copies the interior state
type Outflow struct{}

func (Outflow) Type() types.BCFLAG { return types.BC_Out }

func (Outflow) DgGhost(vInterior, _, _ float64) (v, fluxV float64) {
	v = vInterior
	fluxV = Flux(v)
	return
}

func (Outflow) FdGhost(volume []float64, direction DGSubcell.Direction, ghostCoords []float64, _ float64) (ghost []float64) {
	edge := volume[0]
	if direction.Side == DGSubcell.Upper {
		edge = volume[len(volume)-1]
	}
	ghost = make([]float64, len(ghostCoords))
	for i := range ghost {
		ghost[i] = edge
	}
	return
}
