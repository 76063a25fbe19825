package DGSubcell

import (
	"fmt"
	"sync"

	"github.com/notargets/gosubcell/DG1D"
	"github.com/notargets/gosubcell/utils"
)

// Projector moves data between a DG mesh and a subcell mesh of the same
// dimension. The 1D operators are applied as a tensor product.
type Projector struct {
	DgMesh, SubcellMesh Mesh
	P, R                []utils.Matrix // One per dimension, P is Ns x Nd and R is Nd x Ns
}

type projectorKey struct {
	nd, ns     int
	quadrature Quadrature
}

type projector1D struct {
	P, R utils.Matrix
}

type nodalKey struct {
	nd         int
	quadrature Quadrature
}

// nodalBasis1D holds the reference nodes and modal operators of a DG direction
type nodalBasis1D struct {
	R, W    utils.Vector
	V, Vinv utils.Matrix
}

var (
	cacheMutex     sync.Mutex
	projectorCache = make(map[projectorKey]*projector1D)
	nodalCache     = make(map[nodalKey]*nodalBasis1D)
)

func NewProjector(dgMesh, subcellMesh Mesh) (pr *Projector) {
	if dgMesh.Dim() != subcellMesh.Dim() {
		panic(fmt.Errorf("dimension mismatch between DG %s and subcell %s", dgMesh, subcellMesh))
	}
	if dgMesh.Basis != Legendre {
		panic(fmt.Errorf("projection source must be a Legendre mesh, have %s", dgMesh))
	}
	pr = &Projector{
		DgMesh:      dgMesh,
		SubcellMesh: subcellMesh,
		P:           make([]utils.Matrix, dgMesh.Dim()),
		R:           make([]utils.Matrix, dgMesh.Dim()),
	}
	for d := range dgMesh.Extents {
		op := getProjector1D(dgMesh.Extents[d], subcellMesh.Extents[d], dgMesh.Quadrature)
		pr.P[d], pr.R[d] = op.P, op.R
	}
	return
}

// Project returns subcell averages of the DG interpolant. values may hold
// several variables one after the other.
func (pr *Projector) Project(dgValues []float64) (subcellValues []float64) {
	return applyTensor(pr.P, dgValues, pr.DgMesh.Extents)
}

// Reconstruct returns DG nodal values from subcell averages, conserving the
// element integral
func (pr *Projector) Reconstruct(subcellValues []float64) (dgValues []float64) {
	return applyTensor(pr.R, subcellValues, pr.SubcellMesh.Extents)
}

func Project(dgValues []float64, dgMesh Mesh, subcellExtents []int) []float64 {
	return NewProjector(dgMesh, NewMesh(subcellExtents, FiniteDifference, CellCentered)).Project(dgValues)
}

func Reconstruct(subcellValues []float64, dgMesh Mesh, subcellExtents []int) []float64 {
	return NewProjector(dgMesh, NewMesh(subcellExtents, FiniteDifference, CellCentered)).Reconstruct(subcellValues)
}

func applyTensor(ops []utils.Matrix, values []float64, extents []int) (out []float64) {
	var (
		npts = numberOfPoints(extents)
	)
	if len(values) == 0 || len(values)%npts != 0 {
		panic(fmt.Errorf("data length %d is not a multiple of the %d points of extents %v",
			len(values), npts, extents))
	}
	nvars := len(values) / npts
	ext := make([]int, len(extents))
	for v := 0; v < nvars; v++ {
		copy(ext, extents)
		field := values[v*npts : (v+1)*npts]
		for d, op := range ops {
			field, ext = applyAlongDimension(op, field, ext, d)
		}
		out = append(out, field...)
	}
	return
}

// applyAlongDimension applies A to every line of data along dimension d
func applyAlongDimension(A utils.Matrix, data []float64, extents []int, d int) (out []float64, outExtents []int) {
	var (
		m, n   = A.Dims()
		stride = numberOfPoints(extents[:d])
		outer  = numberOfPoints(extents[d+1:])
	)
	if extents[d] != n {
		panic(fmt.Errorf("operator with %d columns applied along dimension %d of extents %v", n, d, extents))
	}
	outExtents = make([]int, len(extents))
	copy(outExtents, extents)
	outExtents[d] = m
	out = make([]float64, stride*m*outer)
	for o := 0; o < outer; o++ {
		for s := 0; s < stride; s++ {
			for i := 0; i < m; i++ {
				var sum float64
				row := A.DataP[i*n : (i+1)*n]
				for j, a := range row {
					sum += a * data[s+stride*(j+n*o)]
				}
				out[s+stride*(i+m*o)] = sum
			}
		}
	}
	return
}

func getNodalBasis1D(nd int, quadrature Quadrature) (nb *nodalBasis1D) {
	var (
		key = nodalKey{nd: nd, quadrature: quadrature}
		ok  bool
	)
	cacheMutex.Lock()
	defer cacheMutex.Unlock()
	if nb, ok = nodalCache[key]; ok {
		return
	}
	nb = newNodalBasis1D(nd, quadrature)
	nodalCache[key] = nb
	return
}

func newNodalBasis1D(nd int, quadrature Quadrature) (nb *nodalBasis1D) {
	var (
		N   = nd - 1
		err error
	)
	nb = &nodalBasis1D{}
	switch quadrature {
	case GaussLobatto:
		if nd < 2 {
			panic(fmt.Errorf("Gauss-Lobatto needs at least two points, have %d", nd))
		}
		nb.R = DG1D.JacobiGL(0, 0, N)
	case Gauss:
		nb.R, _ = DG1D.JacobiGQ(0, 0, N)
	default:
		panic(fmt.Errorf("no nodal basis for quadrature %s", quadrature))
	}
	nb.V = DG1D.Vandermonde1D(N, nb.R)
	if nb.Vinv, err = nb.V.Inverse(); err != nil {
		panic(fmt.Errorf("error inverting Vandermonde matrix of order %d: %w", N, err))
	}
	nb.W = DG1D.QuadratureWeights(nb.Vinv)
	return
}

func getProjector1D(nd, ns int, quadrature Quadrature) (op *projector1D) {
	var (
		key = projectorKey{nd: nd, ns: ns, quadrature: quadrature}
		ok  bool
	)
	if ns < nd {
		panic(fmt.Errorf("subcell extent %d is smaller than DG extent %d", ns, nd))
	}
	nb := getNodalBasis1D(nd, quadrature)
	cacheMutex.Lock()
	defer cacheMutex.Unlock()
	if op, ok = projectorCache[key]; ok {
		return
	}
	op = newProjector1D(nb, ns)
	projectorCache[key] = op
	return
}

func newProjector1D(nb *nodalBasis1D, ns int) (op *projector1D) {
	var (
		nd = nb.R.Len()
		N  = nd - 1
		h  = 2. / float64(ns)
	)
	op = &projector1D{}
	// Subcell averages by nd point Gauss quadrature on every subcell, exact for
	// the degree N interpolant
	xq, wq := DG1D.JacobiGQ(0, 0, N)
	op.P = utils.NewMatrix(ns, nd)
	for s := 0; s < ns; s++ {
		center := -1 + h*(float64(s)+0.5)
		pts := xq.Copy().Scale(0.5 * h).AddScalar(center)
		// Lagrange basis at the quadrature points: Vq * Vinv
		L := DG1D.Vandermonde1D(N, pts).Mul(nb.Vinv)
		for j := 0; j < nd; j++ {
			var sum float64
			for q := 0; q < nd; q++ {
				sum += wq.AtVec(q) * L.At(q, j)
			}
			op.P.Set(s, j, 0.5*sum)
		}
	}

	// Constrained least squares: minimize |P u - us| keeping w.u = h sum(us)
	//   [2 PtP  w] [u     ]   [2 Pt ]
	//   [w^T    0] [lambda] = [h 1^T] us
	PtP := op.P.Transpose().Mul(op.P)
	K := utils.NewMatrix(nd+1, nd+1)
	for i := 0; i < nd; i++ {
		for j := 0; j < nd; j++ {
			K.Set(i, j, 2*PtP.At(i, j))
		}
		K.Set(i, nd, nb.W.AtVec(i))
		K.Set(nd, i, nb.W.AtVec(i))
	}
	rhs := utils.NewMatrix(nd+1, ns)
	for j := 0; j < ns; j++ {
		for i := 0; i < nd; i++ {
			rhs.Set(i, j, 2*op.P.At(j, i))
		}
		rhs.Set(nd, j, h)
	}
	Kinv, err := K.Inverse()
	if err != nil {
		panic(fmt.Errorf("unable to build reconstruction operator for %d DG points and %d subcells: %w",
			nd, ns, err))
	}
	full := Kinv.Mul(rhs)
	op.R = utils.NewMatrix(nd, ns, append([]float64{}, full.DataP[:nd*ns]...))
	return
}
