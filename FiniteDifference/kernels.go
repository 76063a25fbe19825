package FiniteDifference

import (
	"math"

	"github.com/notargets/gosubcell/utils"
)

// wcns5z reconstructs the faces of cell v[2] from the five cell stencil v
// with Z-type nonlinear weights on three candidate interpolants
func wcns5z(v []float64, q int, eps float64) (lower, upper float64) {
	upper = wcns5zUpper(v[0], v[1], v[2], v[3], v[4], q, eps)
	// The lower face is the upper face of the mirrored stencil
	lower = wcns5zUpper(v[4], v[3], v[2], v[1], v[0], q, eps)
	return
}

func wcns5zUpper(vm2, vm1, v0, vp1, vp2 float64, q int, eps float64) float64 {
	const (
		d0, d1, d2 = 1. / 16., 10. / 16., 5. / 16.
		c13        = 13. / 12.
	)
	var (
		beta0 = c13*utils.POW(vm2-2*vm1+v0, 2) + 0.25*utils.POW(vm2-4*vm1+3*v0, 2)
		beta1 = c13*utils.POW(vm1-2*v0+vp1, 2) + 0.25*utils.POW(vm1-vp1, 2)
		beta2 = c13*utils.POW(v0-2*vp1+vp2, 2) + 0.25*utils.POW(3*v0-4*vp1+vp2, 2)
		tau5  = math.Abs(beta0 - beta2)
	)
	a0 := d0 * (1 + utils.POW(tau5/(beta0+eps), q))
	a1 := d1 * (1 + utils.POW(tau5/(beta1+eps), q))
	a2 := d2 * (1 + utils.POW(tau5/(beta2+eps), q))
	p0 := 0.375*vm2 - 1.25*vm1 + 1.875*v0
	p1 := -0.125*vm1 + 0.75*v0 + 0.375*vp1
	p2 := 0.375*v0 + 0.75*vp1 - 0.125*vp2
	return (a0*p0 + a1*p1 + a2*p2) / (a0 + a1 + a2)
}

// numberOfExtrema counts the local extrema among the three central cells of a
// five cell stencil
func numberOfExtrema(v []float64) (n int) {
	for j := 1; j < 4; j++ {
		if (v[j]-v[j-1])*(v[j+1]-v[j]) < 0 {
			n++
		}
	}
	return
}

// minmodKernel and monotonisedCentralKernel use the three cell stencil v
func minmodKernel(v []float64) (lower, upper float64) {
	slope := utils.MinMod(v[1]-v[0], v[2]-v[1])
	return v[1] - 0.5*slope, v[1] + 0.5*slope
}

func monotonisedCentralKernel(v []float64) (lower, upper float64) {
	slope := utils.MinMod(0.5*(v[2]-v[0]), 2*(v[1]-v[0]), 2*(v[2]-v[1]))
	return v[1] - 0.5*slope, v[1] + 0.5*slope
}
