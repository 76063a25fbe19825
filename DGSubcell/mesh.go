package DGSubcell

import (
	"fmt"
)

type Basis uint8

const (
	Legendre Basis = iota
	FiniteDifference
)

type Quadrature uint8

const (
	GaussLobatto Quadrature = iota
	Gauss
	CellCentered
)

var (
	BasisPrintNames      = []string{"Legendre", "FiniteDifference"}
	QuadraturePrintNames = []string{"GaussLobatto", "Gauss", "CellCentered"}
)

func (b Basis) String() string      { return BasisPrintNames[b] }
func (q Quadrature) String() string { return QuadraturePrintNames[q] }

// Mesh describes the points of one element: the number of points in each
// dimension and how they are placed. Data on a mesh is stored x-fastest.
type Mesh struct {
	Extents    []int
	Basis      Basis
	Quadrature Quadrature
}

func NewMesh(extents []int, basis Basis, quadrature Quadrature) Mesh {
	if len(extents) == 0 {
		panic(fmt.Errorf("mesh needs at least one dimension"))
	}
	for d, n := range extents {
		if n < 1 {
			panic(fmt.Errorf("mesh extent %d in dimension %d is not positive", n, d))
		}
	}
	switch {
	case basis == Legendre && quadrature == CellCentered,
		basis == FiniteDifference && quadrature != CellCentered:
		panic(fmt.Errorf("basis %s can not use quadrature %s", basis, quadrature))
	}
	ext := make([]int, len(extents))
	copy(ext, extents)
	return Mesh{Extents: ext, Basis: basis, Quadrature: quadrature}
}

// NewDgMesh returns an isotropic Legendre mesh with N+1 points per dimension
func NewDgMesh(dim, N int, quadrature Quadrature) Mesh {
	ext := make([]int, dim)
	for d := range ext {
		ext[d] = N + 1
	}
	return NewMesh(ext, Legendre, quadrature)
}

// SubcellMesh returns the finite difference mesh paired with a DG mesh, 2N+1
// subcells per dimension for N+1 DG points
func SubcellMesh(dgMesh Mesh) Mesh {
	ext := make([]int, dgMesh.Dim())
	for d, n := range dgMesh.Extents {
		ext[d] = 2*n - 1
	}
	return NewMesh(ext, FiniteDifference, CellCentered)
}

func (m Mesh) Dim() int { return len(m.Extents) }

func (m Mesh) NumberOfGridPoints() (n int) {
	n = 1
	for _, e := range m.Extents {
		n *= e
	}
	return
}

func (m Mesh) Equal(o Mesh) bool {
	if m.Basis != o.Basis || m.Quadrature != o.Quadrature || len(m.Extents) != len(o.Extents) {
		return false
	}
	for d := range m.Extents {
		if m.Extents[d] != o.Extents[d] {
			return false
		}
	}
	return true
}

func (m Mesh) String() string {
	return fmt.Sprintf("Mesh%v[%s,%s]", m.Extents, m.Basis, m.Quadrature)
}

// numberOfPoints is the product of extents, used where a full Mesh is not at hand
func numberOfPoints(extents []int) (n int) {
	n = 1
	for _, e := range extents {
		n *= e
	}
	return
}
