package Burgers1D

import (
	"github.com/notargets/gosubcell/DGSubcell"
)

// TciOnDgGrid checks whether a DG element must switch to subcells. The
// returned extrema cover the DG values and their subcell projection.
func TciOnDgGrid(dgV []float64, dgMesh, subcellMesh DGSubcell.Mesh, past DGSubcell.RdmpTciData,
	opts DGSubcell.SubcellOptions) (troubled bool, rdmp DGSubcell.RdmpTciData) {
	subcellV := DGSubcell.Project(dgV, dgMesh, subcellMesh.Extents)
	rdmp = DGSubcell.TwoMeshRdmpData(dgV, subcellV, NumberOfVariables)
	troubled = DGSubcell.RdmpTci(rdmp.MaxVariablesValues, rdmp.MinVariablesValues,
		past.MaxVariablesValues, past.MinVariablesValues, opts.RdmpDelta0, opts.RdmpEpsilon) != 0 ||
		DGSubcell.PerssonTci(dgV, dgMesh, opts.PerssonExponent, opts.PerssonNumHighestModes)
	return
}

// TciOnFdGrid checks whether the DG solution reconstructed from a subcell
// element is admissible; troubled means the element stays on subcells. With
// needRdmpDataOnly only the extrema are computed.
func TciOnFdGrid(subcellV []float64, dgMesh, subcellMesh DGSubcell.Mesh, past DGSubcell.RdmpTciData,
	opts DGSubcell.SubcellOptions, needRdmpDataOnly bool) (troubled bool, rdmp DGSubcell.RdmpTciData) {
	dgV := DGSubcell.Reconstruct(subcellV, dgMesh, subcellMesh.Extents)
	rdmp = DGSubcell.TwoMeshRdmpData(dgV, subcellV, NumberOfVariables)
	if needRdmpDataOnly {
		return
	}
	troubled = DGSubcell.RdmpTci(rdmp.MaxVariablesValues, rdmp.MinVariablesValues,
		past.MaxVariablesValues, past.MinVariablesValues, opts.RdmpDelta0, opts.RdmpEpsilon) != 0 ||
		DGSubcell.PerssonTci(dgV, dgMesh, opts.PerssonExponent, opts.PerssonNumHighestModes)
	return
}

// SetInitialRdmpData seeds the retained extrema from the data on the active
// grid, including the subcell projection when the element is on DG
func SetInitialRdmpData(v []float64, grid DGSubcell.ActiveGrid, dgMesh, subcellMesh DGSubcell.Mesh) DGSubcell.RdmpTciData {
	if grid == DGSubcell.Subcell {
		return DGSubcell.MaxMin(v, NumberOfVariables)
	}
	return DGSubcell.TwoMeshRdmpData(v, DGSubcell.Project(v, dgMesh, subcellMesh.Extents), NumberOfVariables)
}

// GhostVariables copies the variables sent to neighbors into a buffer with
// rdmpSize trailing values reserved for the retained extrema
func GhostVariables(vars []float64, rdmpSize int) (buffer []float64) {
	buffer = make([]float64, len(vars)+rdmpSize)
	copy(buffer, vars)
	return
}
