package Burgers1D

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gosubcell/DG1D"
)

// Interior v = 2 seen with n = +1, exterior v = 1 packaged with n = -1
func packagePair(t *testing.T, bc BoundaryCorrection) (pInt, pExt PackagedData) {
	pInt, pExt = NewPackagedData(1), NewPackagedData(1)
	sInt := bc.DgPackageData(&pInt, []float64{2}, []float64{Flux(2)}, 1, nil)
	sExt := bc.DgPackageData(&pExt, []float64{1}, []float64{Flux(1)}, -1, nil)
	assert.Equal(t, 2., sInt)
	assert.Equal(t, 1., sExt)
	return
}

// Packets filled by hand, the interior flux is not Flux(v)
func TestBoundaryTermsFromPackets(t *testing.T) {
	var (
		corr = make([]float64, 1)
		pInt = PackagedData{V: []float64{2}, NormalDotFluxV: []float64{4}, CharSpeed: []float64{2}}
	)
	{
		pExt := PackagedData{V: []float64{1}, NormalDotFluxV: []float64{1}, CharSpeed: []float64{-1}}
		Hll{}.DgBoundaryTerms(corr, pInt, pExt, DG1D.WeakInertial)
		assert.InDelta(t, 4., corr[0], 1.e-14)
		Hll{}.DgBoundaryTerms(corr, pInt, pExt, DG1D.StrongInertial)
		assert.InDelta(t, 0., corr[0], 1.e-14)
	}
	{
		pExt := PackagedData{V: []float64{1}, NormalDotFluxV: []float64{1}, CharSpeed: []float64{1}}
		Rusanov{}.DgBoundaryTerms(corr, pInt, pExt, DG1D.WeakInertial)
		assert.InDelta(t, 2.5, corr[0], 1.e-14)
		Rusanov{}.DgBoundaryTerms(corr, pInt, pExt, DG1D.StrongInertial)
		assert.InDelta(t, -1.5, corr[0], 1.e-14)
	}
}

func TestBoundaryCorrections(t *testing.T) {
	corr := make([]float64, 1)
	// Rusanov
	{
		bc, err := NewBoundaryCorrection("LLF")
		require.NoError(t, err)
		assert.Equal(t, "Rusanov", bc.Name())
		pInt, pExt := packagePair(t, bc)
		assert.Equal(t, []float64{2}, pInt.NormalDotFluxV)
		assert.Equal(t, []float64{-0.5}, pExt.NormalDotFluxV)
		assert.Equal(t, []float64{1}, pExt.CharSpeed)
		bc.DgBoundaryTerms(corr, pInt, pExt, DG1D.WeakInertial)
		assert.InDelta(t, 2.25, corr[0], 1.e-14)
		bc.DgBoundaryTerms(corr, pInt, pExt, DG1D.StrongInertial)
		assert.InDelta(t, 0.25, corr[0], 1.e-14)
	}
	// Hll picks the upwind flux when both waves move right
	{
		bc, err := NewBoundaryCorrection("hll")
		require.NoError(t, err)
		assert.Equal(t, "Hll", bc.Name())
		pInt, pExt := packagePair(t, bc)
		assert.Equal(t, []float64{-1}, pExt.CharSpeed)
		bc.DgBoundaryTerms(corr, pInt, pExt, DG1D.WeakInertial)
		assert.InDelta(t, 2., corr[0], 1.e-14)
		bc.DgBoundaryTerms(corr, pInt, pExt, DG1D.StrongInertial)
		assert.InDelta(t, 0., corr[0], 1.e-14)
		// Both speeds zero
		p0, p1 := NewPackagedData(1), NewPackagedData(1)
		bc.DgPackageData(&p0, []float64{0}, []float64{0}, 1, nil)
		bc.DgPackageData(&p1, []float64{0}, []float64{0}, -1, nil)
		assert.Panics(t, func() { bc.DgBoundaryTerms(corr, p0, p1, DG1D.WeakInertial) })
	}
	// Mesh velocity
	{
		p := NewPackagedData(1)
		s := Rusanov{}.DgPackageData(&p, []float64{-2}, []float64{Flux(-2)}, -1, nil)
		assert.Equal(t, 2., s)
		assert.Equal(t, []float64{-2}, p.NormalDotFluxV)
		s = Hll{}.DgPackageData(&p, []float64{-2}, []float64{Flux(-2)}, -1, []float64{0.5})
		assert.Equal(t, 1.5, s)
		assert.Equal(t, []float64{1.5}, p.CharSpeed)
		s = Rusanov{}.DgPackageData(&p, []float64{1}, []float64{Flux(1)}, 1, []float64{3})
		assert.Equal(t, 2., s)
	}
	// Size mismatches
	{
		p := NewPackagedData(1)
		assert.Panics(t, func() { Rusanov{}.DgPackageData(&p, []float64{1, 2}, []float64{1, 2}, 1, nil) })
		assert.Panics(t, func() { Hll{}.DgPackageData(&p, []float64{1}, []float64{1}, 1, []float64{1, 2}) })
		assert.Panics(t, func() {
			Rusanov{}.DgBoundaryTerms(make([]float64, 2), NewPackagedData(1), NewPackagedData(1), DG1D.WeakInertial)
		})
	}
	_, err := NewBoundaryCorrection("roe")
	assert.Error(t, err)
}

func TestNumericalFlux(t *testing.T) {
	for _, bc := range []BoundaryCorrection{Rusanov{}, Hll{}} {
		// Consistency
		for _, v := range []float64{-1.5, -0.5, 0.7, 2} {
			assert.InDelta(t, Flux(v), NumericalFlux(bc, v, v), 1.e-14, bc.Name())
		}
	}
	assert.InDelta(t, 2.25, NumericalFlux(Rusanov{}, 2, 1), 1.e-14)
	assert.InDelta(t, 2., NumericalFlux(Hll{}, 2, 1), 1.e-14)
	// Both waves moving left takes the upper state
	assert.InDelta(t, Flux(-2), NumericalFlux(Hll{}, -1, -2), 1.e-14)
	// Mirror symmetry of Burgers: F*(a, b) = F*(-b, -a)
	for _, ab := range [][2]float64{{2, 1}, {-1, 3}, {0.5, -0.25}} {
		a, b := ab[0], ab[1]
		assert.InDelta(t, NumericalFlux(Rusanov{}, a, b), NumericalFlux(Rusanov{}, -b, -a), 1.e-14)
		assert.InDelta(t, NumericalFlux(Hll{}, a, b), NumericalFlux(Hll{}, -b, -a), 1.e-14)
	}
}
