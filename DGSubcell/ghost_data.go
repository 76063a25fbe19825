package DGSubcell

import (
	"fmt"
)

// SliceData copies the ghostZoneSize layers of volume next to the face in
// direction. The result keeps the variable-major, x-fastest layout of volume
// with the extent along the direction's dimension replaced by ghostZoneSize.
func SliceData(volume []float64, extents []int, numberOfVariables, ghostZoneSize int,
	direction Direction) (slice []float64) {
	var (
		npts = numberOfPoints(extents)
		d    = direction.Dimension
	)
	if d >= len(extents) {
		panic(fmt.Errorf("direction %s does not exist for extents %v", direction, extents))
	}
	if len(volume) != npts*numberOfVariables {
		panic(fmt.Errorf("volume has %d values, expected %d variables on extents %v",
			len(volume), numberOfVariables, extents))
	}
	if ghostZoneSize < 1 || ghostZoneSize > extents[d] {
		panic(fmt.Errorf("ghost zone size %d does not fit extent %d", ghostZoneSize, extents[d]))
	}
	var (
		stride = numberOfPoints(extents[:d])
		outer  = numberOfPoints(extents[d+1:])
		n      = extents[d]
		first  = 0
	)
	if direction.Side == Upper {
		first = n - ghostZoneSize
	}
	slice = make([]float64, 0, numberOfVariables*stride*ghostZoneSize*outer)
	for v := 0; v < numberOfVariables; v++ {
		field := volume[v*npts : (v+1)*npts]
		for o := 0; o < outer; o++ {
			for i := first; i < first+ghostZoneSize; i++ {
				start := stride * (i + n*o)
				slice = append(slice, field[start:start+stride]...)
			}
		}
	}
	return
}

// GhostZoneLength is the number of values SliceData produces
func GhostZoneLength(extents []int, numberOfVariables, ghostZoneSize int, direction Direction) int {
	return numberOfVariables * numberOfPoints(extents) / extents[direction.Dimension] * ghostZoneSize
}

// PackageGhostData returns the ghost layers for the neighbor in direction
// followed by the rdmp maxima and minima
func PackageGhostData(volume []float64, extents []int, numberOfVariables, ghostZoneSize int,
	direction Direction, rdmp RdmpTciData) (buffer []float64) {
	buffer = SliceData(volume, extents, numberOfVariables, ghostZoneSize, direction)
	return rdmp.AppendTo(buffer)
}

// UnpackGhostData splits a buffer made by PackageGhostData. The sizes must be
// known by the receiver, there is no header.
func UnpackGhostData(buffer []float64, expectedGhostSize, rdmpSize int) (ghost []float64, rdmp RdmpTciData) {
	if len(buffer) != expectedGhostSize+2*rdmpSize {
		panic(fmt.Errorf("ghost buffer has %d values, expected %d ghost values and %d rdmp variables",
			len(buffer), expectedGhostSize, rdmpSize))
	}
	ghost = append([]float64{}, buffer[:expectedGhostSize]...)
	rdmp = NewRdmpTciData(buffer[expectedGhostSize:expectedGhostSize+rdmpSize],
		buffer[expectedGhostSize+rdmpSize:])
	return
}

type ghostEntry struct {
	step   int
	buffer []float64
}

// GhostDataStore is the receiver side store of neighbor buffers for one
// element. Only the newest step is kept per neighbor.
type GhostDataStore struct {
	entries map[DirectionalId]ghostEntry
}

func NewGhostDataStore() *GhostDataStore {
	return &GhostDataStore{entries: make(map[DirectionalId]ghostEntry)}
}

// Insert stores buffer unless a newer step is already held, reports whether it was kept
func (gs *GhostDataStore) Insert(id DirectionalId, step int, buffer []float64) (kept bool) {
	if old, ok := gs.entries[id]; ok && old.step > step {
		return false
	}
	gs.entries[id] = ghostEntry{step: step, buffer: buffer}
	return true
}

// Get returns the buffer for step, panics if it is missing or stale
func (gs *GhostDataStore) Get(id DirectionalId, step int) []float64 {
	e, ok := gs.entries[id]
	if !ok {
		panic(fmt.Errorf("no ghost data from %s", id))
	}
	if e.step != step {
		panic(fmt.Errorf("ghost data from %s is for step %d, need step %d", id, e.step, step))
	}
	return e.buffer
}

func (gs *GhostDataStore) Len() int { return len(gs.entries) }

func (gs *GhostDataStore) Clear() {
	for id := range gs.entries {
		delete(gs.entries, id)
	}
}
