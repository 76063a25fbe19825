package Burgers1D

import (
	"github.com/notargets/gosubcell/DG1D"
	"github.com/notargets/gosubcell/DGSubcell"
)

// RHS is the time derivative of element k's stage values on its active grid
func (c *Burgers1D) RHS(k int, e *Element) []float64 {
	if e.Grid == DGSubcell.Subcell {
		return c.RHSSubcell(k, e)
	}
	return c.RHSDG(k, e)
}

// RHSDG is the nodal DG time derivative
//
//	strong: dv/dt = -rx Dr f       - (1/J) LIFT (n.F* - n.f)
//	weak:   dv/dt =  rx DrWeak f   - (1/J) LIFT (n.F*)
//
// where the bracketed face terms are the boundary correction in the chosen
// formulation.
func (c *Burgers1D) RHSDG(k int, e *Element) (rhs []float64) {
	var (
		el    = c.El
		np    = el.Np
		u     = e.stage
		f     = ComputeFlux(u)
		rx    = el.Rx.At(0, k)
		J     = el.J.At(0, k)
		pInt  = NewPackagedData(1)
		pExt  = NewPackagedData(1)
		corr  = make([]float64, 1)
		scale = -rx
	)
	rhs = make([]float64, np)
	if c.Formulation == DG1D.WeakInertial {
		el.DrWeak.MulSlice(f, rhs)
		scale = rx
	} else {
		el.Dr.MulSlice(f, rhs)
	}
	for i := range rhs {
		rhs[i] *= scale
	}
	for face := 0; face < DG1D.NFaces; face++ {
		var (
			node       = faceNode(face, np)
			n          = el.NX[face]
			vExt, fExt = c.exteriorDgState(k, e, face)
		)
		c.Correction.DgPackageData(&pInt, u[node:node+1], f[node:node+1], n, nil)
		c.Correction.DgPackageData(&pExt, []float64{vExt}, []float64{fExt}, -n, nil)
		c.Correction.DgBoundaryTerms(corr, pInt, pExt, c.Formulation)
		for i := range rhs {
			rhs[i] -= el.LIFT.At(i, face) * corr[0] / J
		}
	}
	return
}

// exteriorDgState is the state across face of a DG element: the boundary
// condition, the neighbor's DG face value, or the face value reconstructed
// from a subcell neighbor's ghost cells
func (c *Burgers1D) exteriorDgState(k int, e *Element, face int) (v, fluxV float64) {
	var (
		el   = c.El
		node = faceNode(face, el.Np)
	)
	if el.IsBoundaryFace(k, face) {
		x := e.XMin
		if face == 1 {
			x = e.XMax
		}
		return c.BCs[face].DgGhost(e.stage[node], x, c.stageTime)
	}
	id := c.neighborId(e, face)
	if m := e.mortar(id, c.exchange); m.Grid == DGSubcell.Dg {
		v = m.FaceValue
	} else {
		ghost, _ := c.neighborGhost(e, face)
		v = c.Reconstructor.ReconstructNeighbor(c.Projector.Project(e.stage),
			map[DGSubcell.Direction][]float64{id.Direction: ghost},
			c.SubcellMesh.Extents, NumberOfVariables, id.Direction)[0]
	}
	return v, Flux(v)
}

// RHSSubcell is the conservative finite difference time derivative
//
//	dv_i/dt = -(F*_{i+1/2} - F*_{i-1/2}) / dx
//
// with F* the boundary correction's numerical flux between the reconstructed
// face states. A face shared with a DG neighbor uses the neighbor's DG face
// value on its side, as the neighbor does.
func (c *Burgers1D) RHSSubcell(k int, e *Element) (rhs []float64) {
	var (
		el      = c.El
		u       = e.stage
		ns      = len(u)
		dx      = e.Width() / float64(ns)
		g       = c.Reconstructor.GhostZoneSize()
		ghost   = make(map[DGSubcell.Direction][]float64, DG1D.NFaces)
		dgFace  [DG1D.NFaces]bool
		dgValue [DG1D.NFaces]float64
	)
	for face := 0; face < DG1D.NFaces; face++ {
		dir := faceDirection(face)
		if el.IsBoundaryFace(k, face) {
			xFace := e.XMin
			if face == 1 {
				xFace = e.XMax
			}
			ghost[dir] = c.BCs[face].FdGhost(u, dir, GhostZoneCoordinates(xFace, dx, g, dir), c.stageTime)
			continue
		}
		id := c.neighborId(e, face)
		ghost[dir], _ = c.neighborGhost(e, face)
		if m := e.mortar(id, c.exchange); m.Grid == DGSubcell.Dg {
			dgFace[face], dgValue[face] = true, m.FaceValue
		}
	}
	faces := c.Reconstructor.Reconstruct(u, ghost, c.SubcellMesh.Extents, NumberOfVariables)[0]
	flux := make([]float64, ns+1)
	for i := range flux {
		lower, upper := faces.LowerSide[i], faces.UpperSide[i]
		if i == 0 && dgFace[0] {
			lower = dgValue[0]
		}
		if i == ns && dgFace[1] {
			upper = dgValue[1]
		}
		flux[i] = NumericalFlux(c.Correction, lower, upper)
	}
	rhs = make([]float64, ns)
	for i := range rhs {
		rhs[i] = -(flux[i+1] - flux[i]) / dx
	}
	return
}
