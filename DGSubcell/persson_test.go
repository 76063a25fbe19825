package DGSubcell

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerssonTci(t *testing.T) {
	var (
		N      = 4
		dgMesh = NewDgMesh(1, N, GaussLobatto)
		r      = dgNodes(N+1, GaussLobatto)
		u      = make([]float64, N+1)
	)
	// Polynomials below the highest order are smooth
	for i, x := range r {
		u[i] = 1 + x + x*x
	}
	assert.False(t, PerssonTci(u, dgMesh, 4.0, 1))
	// A jump is not
	for i, x := range r {
		u[i] = math.Copysign(1, x+0.2)
	}
	assert.True(t, PerssonTci(u, dgMesh, 4.0, 1))
	// Zero is never troubled
	assert.False(t, PerssonTci(make([]float64, N+1), dgMesh, 4.0, 1))
	assert.Panics(t, func() { PerssonTci(make([]float64, N), dgMesh, 4.0, 1) })

	// 2D: x*y has no highest modes, x^3 does
	{
		N = 3
		dgMesh = NewDgMesh(2, N, GaussLobatto)
		r = dgNodes(N+1, GaussLobatto)
		nd := N + 1
		uxy := make([]float64, nd*nd)
		ux3 := make([]float64, nd*nd)
		for j := 0; j < nd; j++ {
			for i := 0; i < nd; i++ {
				uxy[i+nd*j] = r[i] * r[j]
				ux3[i+nd*j] = r[i] * r[i] * r[i]
			}
		}
		assert.False(t, PerssonTci(uxy, dgMesh, 4.0, 1))
		assert.True(t, PerssonTci(ux3, dgMesh, 4.0, 1))
	}
}
