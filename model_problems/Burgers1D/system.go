package Burgers1D

/*
The 1D inviscid Burgers' equation in conservative (flux) form:

				∂/∂t [ v ] + ∂/∂x [ ½ v² ] = 0

The characteristic speed is v, so an initial profile that decreases with x
steepens until a shock forms. For v(x,0) = sin(x) the characteristics first
cross at t = 1.

Each element carries a single variable, either as nodal values on the
Gauss-Lobatto points of its DG mesh or as cell averages on its subcell mesh.
*/

const NumberOfVariables = 1

func Flux(v float64) float64 { return 0.5 * v * v }

func CharSpeed(v float64) float64 { return v }

// ComputeFlux returns the flux of every value in v
func ComputeFlux(v []float64) (fluxV []float64) {
	fluxV = make([]float64, len(v))
	for i, vv := range v {
		fluxV[i] = Flux(vv)
	}
	return
}

// MaxAbsCharSpeed is the largest characteristic speed magnitude in v
func MaxAbsCharSpeed(v []float64) (s float64) {
	for _, vv := range v {
		if a := CharSpeed(vv); a > s {
			s = a
		} else if -a > s {
			s = -a
		}
	}
	return
}
