package FiniteDifference

import (
	"fmt"

	"github.com/notargets/gosubcell/DGSubcell"
)

// Faces holds the reconstructed states on the faces normal to one dimension.
// LowerSide comes from the cell below a face and UpperSide from the cell above
// it. Extents are the cell extents with one more point along the dimension.
type Faces struct {
	Extents              []int
	LowerSide, UpperSide []float64
}

// Reconstruct returns, for every dimension, the face states of all faces of the
// element including its boundary faces. ghost holds the data sent by the
// neighbor in each direction, laid out as DGSubcell.SliceData produces it.
func (r *Reconstructor) Reconstruct(volume []float64, ghost map[DGSubcell.Direction][]float64,
	extents []int, nvars int) (faces []Faces) {
	var (
		g    = r.GhostZoneSize()
		npts = checkVolume(volume, extents, nvars)
	)
	faces = make([]Faces, len(extents))
	for d := range extents {
		var (
			lowerGhost = checkGhost(ghost, DGSubcell.Direction{Dimension: d, Side: DGSubcell.Lower}, extents, nvars, g)
			upperGhost = checkGhost(ghost, DGSubcell.Direction{Dimension: d, Side: DGSubcell.Upper}, extents, nvars, g)
			n          = extents[d]
			fext       = make([]int, len(extents))
		)
		copy(fext, extents)
		fext[d] = n + 1
		nfpts := npts / n * (n + 1)
		fc := Faces{
			Extents:   fext,
			LowerSide: make([]float64, nvars*nfpts),
			UpperSide: make([]float64, nvars*nfpts),
		}
		line := make([]float64, n+2*g)
		forEachLine(extents, d, nvars, func(v, s, o, stride int) {
			fillLine(line, volume, lowerGhost, upperGhost, extents, d, npts, g, v, s, o, stride)
			base := v*nfpts + s
			// Cells -1 through n, cell c sits at line index c+g
			for c := -1; c <= n; c++ {
				lo, up := r.kernel(line[c+g-(g-1) : c+g+g])
				if c >= 0 {
					fc.UpperSide[base+stride*(c+(n+1)*o)] = lo
				}
				if c < n {
					fc.LowerSide[base+stride*(c+1+(n+1)*o)] = up
				}
			}
		})
		faces[d] = fc
	}
	return
}

// ReconstructNeighbor returns the state the neighbor in direction has on the
// shared face, computed from the local volume and the neighbor's ghost data.
// The result has the shape of a face: extent 1 along the direction.
func (r *Reconstructor) ReconstructNeighbor(volume []float64, ghost map[DGSubcell.Direction][]float64,
	extents []int, nvars int, direction DGSubcell.Direction) (face []float64) {
	var (
		g    = r.GhostZoneSize()
		npts = checkVolume(volume, extents, nvars)
		d    = direction.Dimension
		n    = extents[d]
		nb   = checkGhost(ghost, direction, extents, nvars, g)
		line = make([]float64, n+2*g)
	)
	if n < g-1 {
		panic(fmt.Errorf("extent %d is too small for a ghost zone of %d", n, g))
	}
	nfpts := npts / n
	face = make([]float64, nvars*nfpts)
	forEachLine(extents, d, nvars, func(v, s, o, stride int) {
		var lowerGhost, upperGhost []float64
		if direction.Side == DGSubcell.Upper {
			upperGhost = nb
		} else {
			lowerGhost = nb
		}
		fillLine(line, volume, lowerGhost, upperGhost, extents, d, npts, g, v, s, o, stride)
		if direction.Side == DGSubcell.Upper {
			// Lower face of the first neighbor cell
			lo, _ := r.kernel(line[n+g-(g-1) : n+g+g])
			face[v*nfpts+s+stride*o] = lo
		} else {
			// Upper face of the last neighbor cell
			_, up := r.kernel(line[g-1-(g-1) : g-1+g])
			face[v*nfpts+s+stride*o] = up
		}
	})
	return
}

func checkVolume(volume []float64, extents []int, nvars int) (npts int) {
	npts = 1
	for _, e := range extents {
		npts *= e
	}
	if nvars < 1 || len(volume) != nvars*npts {
		panic(fmt.Errorf("volume has %d values, expected %d variables on extents %v", len(volume), nvars, extents))
	}
	return
}

func checkGhost(ghost map[DGSubcell.Direction][]float64, direction DGSubcell.Direction,
	extents []int, nvars, g int) (data []float64) {
	var ok bool
	if data, ok = ghost[direction]; !ok {
		panic(fmt.Errorf("missing ghost data in direction %s", direction))
	}
	if want := DGSubcell.GhostZoneLength(extents, nvars, g, direction); len(data) != want {
		panic(fmt.Errorf("ghost data in direction %s has %d values, expected %d", direction, len(data), want))
	}
	return
}

// forEachLine calls fn for every line of points along dimension d
func forEachLine(extents []int, d, nvars int, fn func(v, s, o, stride int)) {
	var (
		stride, outer = 1, 1
	)
	for _, e := range extents[:d] {
		stride *= e
	}
	for _, e := range extents[d+1:] {
		outer *= e
	}
	for v := 0; v < nvars; v++ {
		for o := 0; o < outer; o++ {
			for s := 0; s < stride; s++ {
				fn(v, s, o, stride)
			}
		}
	}
}

// fillLine gathers one line of the volume padded with g ghost cells on each
// side. Missing ghost data leaves that side untouched.
func fillLine(line, volume, lowerGhost, upperGhost []float64, extents []int, d, npts, g, v, s, o, stride int) {
	var (
		n     = extents[d]
		gpts  = npts / n * g
		field = volume[v*npts : (v+1)*npts]
	)
	for i := 0; i < n; i++ {
		line[g+i] = field[s+stride*(i+n*o)]
	}
	for k := 0; k < g; k++ {
		if lowerGhost != nil {
			line[k] = lowerGhost[v*gpts+s+stride*(k+g*o)]
		}
		if upperGhost != nil {
			line[g+n+k] = upperGhost[v*gpts+s+stride*(k+g*o)]
		}
	}
}
