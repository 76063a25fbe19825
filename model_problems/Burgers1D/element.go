package Burgers1D

import (
	"fmt"

	"github.com/notargets/gosubcell/DGSubcell"
)

// Element is the state owned by one mesh element. Only the goroutine working
// on the element's partition touches it.
type Element struct {
	Id         DGSubcell.ElementId
	Grid       DGSubcell.ActiveGrid
	U          []float64 // Values at the start of the step, on the active grid
	Rdmp       DGSubcell.RdmpTciData
	XMin, XMax float64
	Ghosts     *DGSubcell.GhostDataStore
	Mortars    map[DGSubcell.DirectionalId]MortarData
	stage      []float64
}

// MortarData is what a neighbor tells about itself besides its ghost cells
type MortarData struct {
	Exchange  int
	Grid      DGSubcell.ActiveGrid
	FaceValue float64 // The neighbor's DG value on the shared face
}

// GhostMessage carries one element's boundary data to a face neighbor
type GhostMessage struct {
	Exchange  int
	From, To  DGSubcell.ElementId
	Direction DGSubcell.Direction // Face of the receiving element
	Grid      DGSubcell.ActiveGrid
	FaceValue float64
	Buffer    []float64 // Ghost cells followed by the sender's rdmp data
}

func NewElement(id DGSubcell.ElementId, xMin, xMax float64) *Element {
	return &Element{
		Id:      id,
		XMin:    xMin,
		XMax:    xMax,
		Ghosts:  DGSubcell.NewGhostDataStore(),
		Mortars: make(map[DGSubcell.DirectionalId]MortarData),
	}
}

func (e *Element) Width() float64 { return e.XMax - e.XMin }

// SubcellCenters returns the centres of ns equal subcells
func (e *Element) SubcellCenters(ns int) (x []float64) {
	dx := e.Width() / float64(ns)
	x = make([]float64, ns)
	for i := range x {
		x[i] = e.XMin + (float64(i)+0.5)*dx
	}
	return
}

func (e *Element) receive(msg *GhostMessage) {
	id := DGSubcell.DirectionalId{Direction: msg.Direction, Id: msg.From}
	if e.Ghosts.Insert(id, msg.Exchange, msg.Buffer) {
		e.Mortars[id] = MortarData{Exchange: msg.Exchange, Grid: msg.Grid, FaceValue: msg.FaceValue}
	}
}

func (e *Element) mortar(id DGSubcell.DirectionalId, exchange int) MortarData {
	m, ok := e.Mortars[id]
	if !ok || m.Exchange != exchange {
		panic(fmt.Errorf("element %d has no mortar data from %s for exchange %d", e.Id, id, exchange))
	}
	return m
}

// clear drops all neighbor data once a step is complete
func (e *Element) clear() {
	e.Ghosts.Clear()
	for id := range e.Mortars {
		delete(e.Mortars, id)
	}
}

func faceDirection(face int) DGSubcell.Direction {
	if face == 0 {
		return DGSubcell.LowerXi
	}
	return DGSubcell.UpperXi
}

func faceNode(face, np int) int {
	if face == 0 {
		return 0
	}
	return np - 1
}
