package DG1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gosubcell/utils"
)

// weightedMoment is ∫ x^k (1-x)^α (1+x)^β dx over [-1,1], from the Beta
// function after substituting x = 2u - 1
func weightedMoment(k int, alpha, beta float64) (m float64) {
	B := func(a, b float64) float64 { return math.Gamma(a) * math.Gamma(b) / math.Gamma(a+b) }
	binom := 1.
	for j := 0; j <= k; j++ {
		m += binom * math.Pow(2, float64(j)) * math.Pow(-1, float64(k-j)) * B(float64(j)+beta+1, alpha+1)
		binom = binom * float64(k-j) / float64(j+1)
	}
	return m * math.Pow(2, alpha+beta+1)
}

func TestJacobiQuadrature(t *testing.T) {
	for _, ab := range [][2]float64{{0, 0}, {0.3, 0.7}, {1, 1}} {
		alpha, beta := ab[0], ab[1]
		for N := 1; N <= 6; N++ {
			X, W := JacobiGQ(alpha, beta, N)
			assert.Equal(t, N+1, X.Len())
			// Gauss quadrature is exact to degree 2N+1
			for k := 0; k <= 2*N+1; k++ {
				var sum float64
				for i, x := range X.DataP {
					assert.True(t, x > -1 && x < 1)
					assert.Greater(t, W.AtVec(i), 0.)
					sum += W.AtVec(i) * math.Pow(x, float64(k))
				}
				assert.InDelta(t, weightedMoment(k, alpha, beta), sum, 1.e-10, "α=%g β=%g N=%d k=%d", alpha, beta, N, k)
			}
			// Nodes are the roots of P_{N+1}
			for _, p := range JacobiP(X, alpha, beta, N+1) {
				assert.InDelta(t, 0, p, 1.e-10)
			}
		}
	}
	// Gauss-Lobatto nodes include the end points
	for N := 1; N <= 6; N++ {
		r := JacobiGL(0, 0, N)
		assert.InDelta(t, -1, r.AtVec(0), 1.e-14)
		assert.InDelta(t, 1, r.AtVec(N), 1.e-14)
	}
}

func TestJacobiPOrthonormal(t *testing.T) {
	const Nmax = 6
	for _, ab := range [][2]float64{{0, 0}, {0.3, 0.7}} {
		var (
			alpha, beta = ab[0], ab[1]
			X, W        = JacobiGQ(alpha, beta, Nmax+1)
			P           = make([][]float64, Nmax+1)
		)
		for n := range P {
			P[n] = JacobiP(utils.NewVector(X.Len(), X.DataP), alpha, beta, n)
		}
		for m := 0; m <= Nmax; m++ {
			for n := 0; n <= Nmax; n++ {
				var g float64
				for i := range X.DataP {
					g += W.AtVec(i) * P[m][i] * P[n][i]
				}
				if m == n {
					assert.InDelta(t, 1, g, 1.e-10)
				} else {
					assert.InDelta(t, 0, g, 1.e-10)
				}
			}
		}
	}
}
