package utils

import (
	"math"
)

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		goto MATHPOW
	}

	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	case 5:
		y = x * x
		y = y * y * x
	case 6:
		y = x * x
		y = y * y * y
	case 7:
		y = x * x
		y = y * y * y * x
	case 8:
		y = x * x
		y = y * y * y * y
	}
	if flipped {
		y = 1. / y
	}
	return

MATHPOW:
	y = math.Pow(x, float64(pp))
	return
}

func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// MinMod returns the argument of smallest magnitude if all share a sign, zero otherwise
func MinMod(vals ...float64) (m float64) {
	var (
		s = Sign(vals[0])
	)
	m = math.Abs(vals[0])
	for _, val := range vals[1:] {
		if Sign(val) != s {
			return 0
		}
		m = math.Min(m, math.Abs(val))
	}
	return s * m
}

// ConvergenceOrders returns the observed order between successive resolutions,
// log(e[i-1]/e[i]) / log(n[i]/n[i-1]), with the first entry zero
func ConvergenceOrders(n []int, errs []float64) (orders []float64) {
	if len(n) != len(errs) {
		panic("resolutions and errors differ in length")
	}
	orders = make([]float64, len(n))
	for i := 1; i < len(n); i++ {
		orders[i] = math.Log(errs[i-1]/errs[i]) / math.Log(float64(n[i])/float64(n[i-1]))
	}
	return
}
