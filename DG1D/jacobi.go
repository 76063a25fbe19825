package DG1D

import (
	"math"

	"github.com/notargets/gosubcell/utils"
	"gonum.org/v1/gonum/mat"
)

// JacobiGL returns the N+1 Gauss-Lobatto nodes for the Jacobi weight (alpha, beta)
func JacobiGL(alpha, beta float64, N int) (X utils.Vector) {
	var (
		x = make([]float64, N+1)
	)
	x[0], x[N] = -1, 1
	if N == 1 {
		X = utils.NewVector(N+1, x)
		return
	}
	xint, _ := JacobiGQ(alpha+1, beta+1, N-2)
	copy(x[1:N], xint.DataP)
	X = utils.NewVector(N+1, x)
	return
}

// JacobiGQ returns the N+1 Gauss nodes and weights for the Jacobi weight (alpha, beta)
func JacobiGQ(alpha, beta float64, N int) (X, W utils.Vector) {
	var (
		x, w       []float64
		fac        float64
		h1, d0, d1 []float64
		VVr        *mat.Dense
	)
	if N == 0 {
		x = []float64{-(alpha - beta) / (alpha + beta + 2.)}
		w = []float64{2.}
		return utils.NewVector(len(x), x), utils.NewVector(len(w), w)
	}

	h1 = make([]float64, N+1)
	for i := 0; i < N+1; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}

	// main diagonal: diag(-1/2*(alpha^2-beta^2)./(h1+2)./h1)
	d0 = make([]float64, N+1)
	fac = -.5 * (alpha*alpha - beta*beta)
	for i := 0; i < N+1; i++ {
		val := h1[i]
		d0[i] = fac / (val * (val + 2.))
	}
	// Handle division by zero
	eps := 1.e-16
	if alpha+beta < 10*eps {
		d0[0] = 0.
	}

	// 1st upper diagonal
	var ip1 float64
	d1 = make([]float64, N)
	for i := 0; i < N; i++ {
		ip1 = float64(i + 1)
		val := h1[i]
		d1[i] = 2. / (val + 2.)
		d1[i] *= math.Sqrt(ip1 * (ip1 + alpha + beta) * (ip1 + alpha) * (ip1 + beta) / ((val + 1.) * (val + 3.)))
	}

	JJ := utils.NewSymTriDiagonal(d0, d1)

	var eig mat.EigenSym
	if ok := eig.Factorize(JJ, true); !ok {
		panic("eigenvalue decomposition failed")
	}
	x = eig.Values(nil)
	X = utils.NewVector(N+1, x)

	VVr = mat.NewDense(len(x), len(x), nil)
	eig.VectorsTo(VVr)
	w = make([]float64, len(x))
	copy(w, VVr.RawRowView(0))
	W = utils.NewVector(len(w), w).POW(2).Scale(gamma0(alpha, beta))
	return X, W
}

// JacobiP evaluates the orthonormal Jacobi polynomial of order N at r
func JacobiP(r utils.Vector, alpha, beta float64, N int) (p []float64) {
	var (
		Nc  = r.Len()
		ab  = alpha + beta
		pm1 = utils.ConstArray(Nc, 1./math.Sqrt(gamma0(alpha, beta)))
	)
	if N == 0 {
		return pm1
	}
	rg1 := 1. / math.Sqrt(gamma1(alpha, beta))
	pc := make([]float64, Nc)
	for i, x := range r.DataP {
		pc[i] = rg1 * ((ab+2.0)*x/2.0 + (alpha-beta)/2.0)
	}
	if N == 1 {
		return pc
	}
	aold := 2.0 / (ab + 2.0) * math.Sqrt((alpha+1.)*(beta+1.)/(ab+3.0))
	for i := 1; i < N; i++ {
		fi := float64(i)
		h1 := 2.0*fi + ab
		anew := 2.0 / (h1 + 2.0) * math.Sqrt((fi+1.)*(fi+1.+ab)*(fi+1.+alpha)*(fi+1.+beta)/(h1+1.0)/(h1+3.0))
		bnew := -(alpha*alpha - beta*beta) / h1 / (h1 + 2.0)
		pn := make([]float64, Nc)
		for j, x := range r.DataP {
			pn[j] = ((x-bnew)*pc[j] - aold*pm1[j]) / anew
		}
		pm1, pc = pc, pn
		aold = anew
	}
	return pc
}

func GradJacobiP(r utils.Vector, alpha, beta float64, N int) (p []float64) {
	if N == 0 {
		p = make([]float64, r.Len())
		return
	}
	p = JacobiP(r, alpha+1, beta+1, N-1)
	fN := float64(N)
	fac := math.Sqrt(fN * (fN + alpha + beta + 1))
	for i, val := range p {
		p[i] = val * fac
	}
	return
}

func Vandermonde1D(N int, R utils.Vector) (V utils.Matrix) {
	V = utils.NewMatrix(R.Len(), N+1)
	for j := 0; j < N+1; j++ {
		V.SetCol(j, JacobiP(R, 0, 0, j))
	}
	return
}

func GradVandermonde1D(r utils.Vector, N int) (Vr utils.Matrix) {
	Vr = utils.NewMatrix(r.Len(), N+1)
	for i := 0; i < N+1; i++ {
		Vr.SetCol(i, GradJacobiP(r, 0, 0, i))
	}
	return
}

// QuadratureWeights integrates the nodal interpolant: w_i = sqrt(2) * Vinv[0][i]
func QuadratureWeights(Vinv utils.Matrix) (W utils.Vector) {
	_, nc := Vinv.Dims()
	W = utils.NewVector(nc)
	for i := 0; i < nc; i++ {
		W.DataP[i] = math.Sqrt2 * Vinv.At(0, i)
	}
	return
}
