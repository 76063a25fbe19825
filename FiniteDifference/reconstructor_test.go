package FiniteDifference

import (
	"testing"

	"github.com/ghodss/yaml"
	"github.com/notargets/gosubcell/DGSubcell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allReconstructors(t *testing.T) (rs []*Reconstructor) {
	for _, fallback := range []string{"None", "Minmod", "MonotonisedCentral"} {
		for _, exponent := range []int{1, 2, 4} {
			r, err := NewReconstructor(ReconstructorOptions{
				Type:                    "Wcns5z",
				NonlinearWeightExponent: exponent,
				Epsilon:                 1.e-42,
				FallbackReconstructor:   fallback,
				MaxNumberOfExtrema:      0,
			})
			require.NoError(t, err)
			rs = append(rs, r)
		}
	}
	for _, name := range []string{"Minmod", "MonotonisedCentral"} {
		r, err := NewReconstructor(ReconstructorOptions{Type: name})
		require.NoError(t, err)
		rs = append(rs, r)
	}
	return
}

// ghostFor slices neighbor data the way a neighbor would send it
func ghostFor(r *Reconstructor, extents []int, nvars int, fill func(d DGSubcell.Direction) []float64) (
	ghost map[DGSubcell.Direction][]float64) {
	ghost = make(map[DGSubcell.Direction][]float64)
	for _, dir := range DGSubcell.Directions(len(extents)) {
		ghost[dir] = fill(dir)
	}
	return
}

func TestReconstructConstant(t *testing.T) {
	for _, r := range allReconstructors(t) {
		for _, extents := range [][]int{{7}, {5, 6}} {
			var (
				nvars = 2
				npts  = 1
			)
			for _, e := range extents {
				npts *= e
			}
			volume := make([]float64, nvars*npts)
			for i := range volume {
				volume[i] = 1.5
				if i >= npts {
					volume[i] = -3
				}
			}
			ghost := ghostFor(r, extents, nvars, func(dir DGSubcell.Direction) []float64 {
				return DGSubcell.SliceData(volume, extents, nvars, r.GhostZoneSize(), dir)
			})
			faces := r.Reconstruct(volume, ghost, extents, nvars)
			require.Len(t, faces, len(extents))
			for d, fc := range faces {
				nf := len(fc.LowerSide) / nvars
				assert.Equal(t, extents[d]+1, fc.Extents[d])
				for i := range fc.LowerSide {
					want := 1.5
					if i >= nf {
						want = -3
					}
					assert.InDelta(t, want, fc.LowerSide[i], 1.e-14, r.String())
					assert.InDelta(t, want, fc.UpperSide[i], 1.e-14, r.String())
				}
			}
		}
	}
}

func TestReconstructLinear1D(t *testing.T) {
	r, err := NewReconstructor(ReconstructorOptions{Type: "minmod"})
	require.NoError(t, err)
	require.Equal(t, 2, r.GhostZoneSize())
	var (
		volume = []float64{0, 1, 2, 3}
		ghost  = map[DGSubcell.Direction][]float64{
			DGSubcell.LowerXi: {-2, -1},
			DGSubcell.UpperXi: {4, 5},
		}
	)
	faces := r.Reconstruct(volume, ghost, []int{4}, 1)
	assert.Equal(t, []float64{-0.5, 0.5, 1.5, 2.5, 3.5}, faces[0].LowerSide)
	assert.Equal(t, []float64{-0.5, 0.5, 1.5, 2.5, 3.5}, faces[0].UpperSide)

	assert.Panics(t, func() { r.Reconstruct(volume, map[DGSubcell.Direction][]float64{}, []int{4}, 1) })
	assert.Panics(t, func() {
		r.Reconstruct(volume, map[DGSubcell.Direction][]float64{
			DGSubcell.LowerXi: {-1},
			DGSubcell.UpperXi: {4, 5},
		}, []int{4}, 1)
	})
	assert.Panics(t, func() { r.Reconstruct(volume[:3], ghost, []int{4}, 1) })
}

func TestWcns5zQuadratic(t *testing.T) {
	// Point values of a quadratic without extrema are interpolated exactly
	for _, fallback := range []string{"None", "MonotonisedCentral"} {
		r, err := NewReconstructor(ReconstructorOptions{
			Type:                    "Wcns5z",
			NonlinearWeightExponent: 2,
			Epsilon:                 1.e-42,
			FallbackReconstructor:   fallback,
			MaxNumberOfExtrema:      0,
		})
		require.NoError(t, err)
		var (
			n      = 6
			h      = 1. / float64(n)
			f      = func(x float64) float64 { return (x + 5) * (x + 5) }
			center = func(i int) float64 { return h * (float64(i) + 0.5) }
			volume = make([]float64, n)
			ghost  = map[DGSubcell.Direction][]float64{
				DGSubcell.LowerXi: {f(center(-3)), f(center(-2)), f(center(-1))},
				DGSubcell.UpperXi: {f(center(n)), f(center(n + 1)), f(center(n + 2))},
			}
		)
		for i := range volume {
			volume[i] = f(center(i))
		}
		faces := r.Reconstruct(volume, ghost, []int{n}, 1)
		for fi := 0; fi <= n; fi++ {
			assert.InDelta(t, f(h*float64(fi)), faces[0].LowerSide[fi], 1.e-12)
			assert.InDelta(t, f(h*float64(fi)), faces[0].UpperSide[fi], 1.e-12)
		}
	}
}

func TestFallbackSelection(t *testing.T) {
	zigzag := []float64{0, 1, 0, 1, 0}
	newR := func(fallback string, maxExtrema int) *Reconstructor {
		r, err := NewReconstructor(ReconstructorOptions{
			Type:                    "Wcns5z",
			NonlinearWeightExponent: 2,
			Epsilon:                 1.e-42,
			FallbackReconstructor:   fallback,
			MaxNumberOfExtrema:      maxExtrema,
		})
		require.NoError(t, err)
		return r
	}
	assert.Equal(t, 3, numberOfExtrema(zigzag))
	// Too many extrema, the central cell falls back to a flat MC state
	lo, up := newR("MonotonisedCentral", 1).kernel(zigzag)
	assert.Equal(t, 0., lo)
	assert.Equal(t, 0., up)
	// Allowed number of extrema, or no fallback: the weighted scheme
	for _, r := range []*Reconstructor{newR("MonotonisedCentral", 3), newR("None", 0)} {
		lo, up = r.kernel(zigzag)
		assert.InDelta(t, 0.3125, lo, 1.e-14)
		assert.InDelta(t, 0.3125, up, 1.e-14)
	}
	// Only the offending cell falls back
	{
		r := newR("Minmod", 0)
		volume := []float64{1, 1, 1, 1, 0, 1}
		ghost := map[DGSubcell.Direction][]float64{
			DGSubcell.LowerXi: {1, 1, 1},
			DGSubcell.UpperXi: {1, 1, 1},
		}
		faces := r.Reconstruct(volume, ghost, []int{6}, 1)
		assert.InDelta(t, 1., faces[0].UpperSide[1], 1.e-14)
		assert.InDelta(t, 1., faces[0].LowerSide[1], 1.e-14)
		assert.Equal(t, 0., faces[0].UpperSide[4])
		assert.Equal(t, 0., faces[0].LowerSide[5])
	}
}

func TestLimiterKernels(t *testing.T) {
	lo, up := minmodKernel([]float64{1, 2, 4})
	assert.Equal(t, 1.5, lo)
	assert.Equal(t, 2.5, up)
	lo, up = monotonisedCentralKernel([]float64{1, 2, 4})
	assert.Equal(t, 1.25, lo)
	assert.Equal(t, 2.75, up)
	lo, up = minmodKernel([]float64{1, 2, 1})
	assert.Equal(t, 2., lo)
	assert.Equal(t, 2., up)
}

func TestReconstructNeighbor(t *testing.T) {
	for _, r := range allReconstructors(t) {
		var (
			extents = []int{5, 4}
			npts    = 20
			volume  = make([]float64, npts)
			g       = r.GhostZoneSize()
		)
		for i := range volume {
			volume[i] = float64((i*7)%5) + 0.1*float64(i)
		}
		ghost := ghostFor(r, extents, 1, func(dir DGSubcell.Direction) []float64 {
			gd := make([]float64, DGSubcell.GhostZoneLength(extents, 1, g, dir))
			for i := range gd {
				gd[i] = float64(dir.Dimension+2*int(dir.Side)) + 0.3*float64(i%3)
			}
			return gd
		})
		faces := r.Reconstruct(volume, ghost, extents, 1)
		for d := range extents {
			n := extents[d]
			stride := 1
			if d == 1 {
				stride = extents[0]
			}
			up := r.ReconstructNeighbor(volume, ghost, extents, 1, DGSubcell.Direction{Dimension: d, Side: DGSubcell.Upper})
			lo := r.ReconstructNeighbor(volume, ghost, extents, 1, DGSubcell.Direction{Dimension: d, Side: DGSubcell.Lower})
			require.Len(t, up, npts/n)
			for j := range up {
				s, o := j%stride, j/stride
				assert.InDelta(t, faces[d].UpperSide[s+stride*(n+(n+1)*o)], up[j], 1.e-14)
				assert.InDelta(t, faces[d].LowerSide[s+stride*(0+(n+1)*o)], lo[j], 1.e-14)
			}
		}
	}
}

func TestReconstructorOptions(t *testing.T) {
	r, err := NewReconstructor(DefaultReconstructorOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, r.GhostZoneSize())

	// Serialization covers the tunables and rebuilds the kernel
	b, err := yaml.Marshal(r)
	require.NoError(t, err)
	var r2 Reconstructor
	require.NoError(t, yaml.Unmarshal(b, &r2))
	assert.True(t, r.Equal(&r2))
	lo, up := r2.kernel([]float64{0, 1, 0, 1, 0})
	assert.Equal(t, 0., lo)
	assert.Equal(t, 0., up)

	var cfg struct {
		Reconstructor *Reconstructor `json:"Reconstructor"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(`
Reconstructor:
  Type: Wcns5z
  NonlinearWeightExponent: 2
  Epsilon: 1.0e-42
  FallbackReconstructor: MonotonisedCentral
  MaxNumberOfExtrema: 1
`), &cfg))
	assert.True(t, r.Equal(cfg.Reconstructor))

	other := DefaultReconstructorOptions()
	other.NonlinearWeightExponent = 1
	r3, err := NewReconstructor(other)
	require.NoError(t, err)
	assert.False(t, r.Equal(r3))

	for _, bad := range []ReconstructorOptions{
		{Type: "Wcns5z", NonlinearWeightExponent: 0, Epsilon: 1.e-42},
		{Type: "Wcns5z", NonlinearWeightExponent: 2, Epsilon: 0},
		{Type: "Wcns5z", NonlinearWeightExponent: 2, Epsilon: 1, MaxNumberOfExtrema: -1},
		{Type: "Wcns5z", NonlinearWeightExponent: 2, Epsilon: 1, FallbackReconstructor: "upwind"},
		{Type: "Weno7"},
	} {
		_, err = NewReconstructor(bad)
		assert.Error(t, err)
	}

	// Unset tunables take the defaults
	var r4 Reconstructor
	require.NoError(t, yaml.Unmarshal([]byte("Type: Wcns5z\nMaxNumberOfExtrema: 2\n"), &r4))
	assert.Equal(t, 2, r4.NonlinearWeightExponent)
	assert.Equal(t, FallbackMonotonisedCentral, r4.Fallback)
	assert.Equal(t, 2, r4.MaxNumberOfExtrema)
	require.NoError(t, yaml.Unmarshal([]byte("Type: MC\n"), &r4))
	assert.Equal(t, MonotonisedCentral, r4.Type)
	assert.Equal(t, 0, r4.NonlinearWeightExponent)
	assert.Equal(t, 2, r4.GhostZoneSize())
	assert.Error(t, yaml.Unmarshal([]byte("Type: Weno7\n"), &r4))
	assert.Error(t, yaml.Unmarshal([]byte("Type: Wcns5z\nEpsilon: -1\n"), &r4))
}
