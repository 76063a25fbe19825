package DG1D

import (
	"fmt"
	"strings"

	"github.com/james-bowman/sparse"
	"github.com/notargets/gosubcell/utils"
)

const NFaces = 2

// Formulation selects the sign convention of the DG boundary terms
type Formulation uint8

const (
	WeakInertial Formulation = iota
	StrongInertial
)

var (
	FormulationNames = map[string]Formulation{
		"weak":           WeakInertial,
		"weakinertial":   WeakInertial,
		"strong":         StrongInertial,
		"stronginertial": StrongInertial,
	}
	FormulationPrintNames = []string{"WeakInertial", "StrongInertial"}
)

func (f Formulation) Print() (txt string) {
	txt = FormulationPrintNames[f]
	return
}

func NewFormulation(label string) (f Formulation) {
	var (
		ok bool
	)
	label = strings.ToLower(label)
	if f, ok = FormulationNames[label]; !ok {
		panic(fmt.Errorf("unable to use DG formulation named %s", label))
	}
	return
}

// Elements1D holds the reference operators and geometry of a 1D nodal DG mesh
// on Gauss-Lobatto points. Volume arrays are Np x K, one column per element.
type Elements1D struct {
	K, N, Np         int
	R, W             utils.Vector // Reference nodes and quadrature weights
	VX               utils.Vector
	EToV             utils.Matrix
	EToE, EToF       [][NFaces]int
	V, Vinv          utils.Matrix
	Dr, DrWeak, LIFT utils.Matrix
	X, J, Rx         utils.Matrix
	NX               [NFaces]float64
	Periodic         bool
}

// SimpleMesh1D returns K equal elements between xmin and xmax
func SimpleMesh1D(xmin, xmax float64, K int) (VX utils.Vector, EToV utils.Matrix) {
	if K < 1 {
		panic(fmt.Errorf("need at least one element, have %d", K))
	}
	VX = utils.NewVector(K + 1)
	dx := (xmax - xmin) / float64(K)
	for i := range VX.DataP {
		VX.DataP[i] = xmin + dx*float64(i)
	}
	VX.DataP[K] = xmax
	EToV = utils.NewMatrix(K, NFaces)
	for k := 0; k < K; k++ {
		EToV.Set(k, 0, float64(k))
		EToV.Set(k, 1, float64(k+1))
	}
	return
}

func NewElements1D(N int, VX utils.Vector, EToV utils.Matrix, periodic bool) (el *Elements1D) {
	var (
		K, _ = EToV.Dims()
		err  error
	)
	if N < 1 {
		panic(fmt.Errorf("polynomial order must be at least 1, have %d", N))
	}
	el = &Elements1D{
		K:        K,
		N:        N,
		Np:       N + 1,
		VX:       VX,
		EToV:     EToV,
		NX:       Normals1D(),
		Periodic: periodic,
	}
	el.R = JacobiGL(0, 0, N)
	el.V = Vandermonde1D(N, el.R)
	if el.Vinv, err = el.V.Inverse(); err != nil {
		panic(fmt.Errorf("error inverting V: %w", err))
	}
	el.W = QuadratureWeights(el.Vinv)
	el.Dr = GradVandermonde1D(el.R, N).Mul(el.Vinv)
	el.LIFT = Lift1D(el.V, el.Np)

	// Weak form derivative: M^-1 Dr^T M, with M^-1 = V V^T
	Minv := el.V.Mul(el.V.Transpose())
	M := Minv.InverseWithCheck()
	el.DrWeak = Minv.Mul(el.Dr.Transpose()).Mul(M)

	// x = VX(va) + 0.5*(r+1)*(VX(vb)-VX(va))
	el.X = utils.NewMatrix(el.Np, K)
	for k := 0; k < K; k++ {
		va, vb := VX.AtVec(int(EToV.At(k, 0))), VX.AtVec(int(EToV.At(k, 1)))
		for i, r := range el.R.DataP {
			el.X.Set(i, k, va+0.5*(r+1)*(vb-va))
		}
	}
	el.J, el.Rx = GeometricFactors1D(el.Dr, el.X)

	Nv := VX.Len()
	topology := EToV
	if periodic {
		// The last vertex is the first vertex
		topology = EToV.Copy()
		for k := 0; k < K; k++ {
			for f := 0; f < NFaces; f++ {
				if int(topology.At(k, f)) == Nv-1 {
					topology.Set(k, f, 0)
				}
			}
		}
		Nv--
	}
	el.EToE, el.EToF = Connect1D(topology, Nv)
	el.Dr.SetReadOnly("Dr")
	el.DrWeak.SetReadOnly("DrWeak")
	el.LIFT.SetReadOnly("LIFT")
	return
}

// IsBoundaryFace is true for faces without a neighbor
func (el *Elements1D) IsBoundaryFace(k, face int) bool {
	return el.EToE[k][face] == k && el.EToF[k][face] == face
}

// Width returns the physical size of element k
func (el *Elements1D) Width(k int) float64 {
	return el.X.At(el.Np-1, k) - el.X.At(0, k)
}

func Lift1D(V utils.Matrix, Np int) (LIFT utils.Matrix) {
	Emat := utils.NewMatrix(Np, NFaces)
	Emat.Set(0, 0, 1)
	Emat.Set(Np-1, 1, 1)
	LIFT = V.Mul(V.Transpose()).Mul(Emat)
	return
}

func Normals1D() (NX [NFaces]float64) {
	return [NFaces]float64{-1, 1}
}

func GeometricFactors1D(Dr, X utils.Matrix) (J, Rx utils.Matrix) {
	J = Dr.Mul(X)
	Rx = J.Copy().Apply(func(val float64) float64 { return 1. / val })
	return
}

// Connect1D finds the face to face connectivity from the element to vertex map,
// a face shared by two elements appears once in each row of FToV * FToV^T
func Connect1D(EToV utils.Matrix, Nv int) (EToE, EToF [][NFaces]int) {
	var (
		K, _       = EToV.Dims()
		TotalFaces = NFaces * K
	)
	SpFToVTmp := sparse.NewDOK(TotalFaces, Nv)
	for k := 0; k < K; k++ {
		for face := 0; face < NFaces; face++ {
			SpFToVTmp.Set(k*NFaces+face, int(EToV.At(k, face)), 1)
		}
	}
	SpFToV := SpFToVTmp.ToCSR()
	SpFToF := sparse.NewCSR(TotalFaces, TotalFaces, nil, nil, nil)
	SpFToF.Mul(SpFToV, SpFToV.T())

	// Unconnected faces point to themselves
	EToE = make([][NFaces]int, K)
	EToF = make([][NFaces]int, K)
	for k := 0; k < K; k++ {
		EToE[k] = [NFaces]int{k, k}
		EToF[k] = [NFaces]int{0, 1}
	}
	SpFToF.DoNonZero(func(i, j int, v float64) {
		if i == j || v != 1 {
			return
		}
		EToE[i/NFaces][i%NFaces] = j / NFaces
		EToF[i/NFaces][i%NFaces] = j % NFaces
	})
	return
}
