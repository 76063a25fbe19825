package DGSubcell

import (
	"fmt"
	"math"

	"github.com/notargets/gosubcell/utils"
)

// PerssonTci flags a DG field whose spectrum does not decay. The field is
// transformed to orthonormal modal coefficients; it is troubled when
//
//	N^exponent * |u_high| > |u|
//
// where N is the largest polynomial order and u_high holds the modes that have
// any index among the numHighestModes highest of its dimension.
func PerssonTci(values []float64, dgMesh Mesh, exponent float64, numHighestModes int) bool {
	var (
		npts = dgMesh.NumberOfGridPoints()
		Nmax int
	)
	if len(values) != npts {
		panic(fmt.Errorf("persson tci got %d values for %s", len(values), dgMesh))
	}
	if dgMesh.Basis != Legendre {
		panic(fmt.Errorf("persson tci needs a Legendre mesh, have %s", dgMesh))
	}
	if numHighestModes < 1 {
		panic(fmt.Errorf("number of highest modes must be positive, have %d", numHighestModes))
	}
	ops := make([]utils.Matrix, dgMesh.Dim())
	for d, nd := range dgMesh.Extents {
		ops[d] = getNodalBasis1D(nd, dgMesh.Quadrature).Vinv
		Nmax = max(Nmax, nd-1)
	}
	if Nmax == 0 {
		return false
	}
	modes := applyTensor(ops, values, dgMesh.Extents)

	var (
		normAll, normHigh float64
		index             = make([]int, dgMesh.Dim())
	)
	for i, m := range modes {
		m2 := m * m
		normAll += m2
		// Multi-index of mode i, x-fastest
		rem := i
		high := false
		for d, nd := range dgMesh.Extents {
			index[d] = rem % nd
			rem /= nd
			if index[d] >= nd-numHighestModes {
				high = true
			}
		}
		if high {
			normHigh += m2
		}
	}
	if normAll == 0 {
		return false
	}
	return math.Pow(float64(Nmax), exponent)*math.Sqrt(normHigh) > math.Sqrt(normAll)
}
