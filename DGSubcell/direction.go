package DGSubcell

import "fmt"

type Side uint8

const (
	Lower Side = iota
	Upper
)

// Direction names a face of an element: the dimension normal to the face and
// which end of that dimension it sits on
type Direction struct {
	Dimension int
	Side      Side
}

var (
	LowerXi = Direction{Dimension: 0, Side: Lower}
	UpperXi = Direction{Dimension: 0, Side: Upper}
)

func (d Direction) Opposite() Direction {
	return Direction{Dimension: d.Dimension, Side: 1 - d.Side}
}

// Sign is the sign of the outward normal of the face
func (d Direction) Sign() float64 {
	if d.Side == Lower {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	names := []string{"xi", "eta", "zeta"}
	sign := "+"
	if d.Side == Lower {
		sign = "-"
	}
	if d.Dimension < len(names) {
		return sign + names[d.Dimension]
	}
	return fmt.Sprintf("%s%d", sign, d.Dimension)
}

// Directions lists every face direction of a dim dimensional element
func Directions(dim int) (dirs []Direction) {
	for d := 0; d < dim; d++ {
		dirs = append(dirs, Direction{Dimension: d, Side: Lower}, Direction{Dimension: d, Side: Upper})
	}
	return
}

type ElementId int

// DirectionalId keys neighbor data by the face it arrives through and the sender
type DirectionalId struct {
	Direction Direction
	Id        ElementId
}

func (did DirectionalId) String() string {
	return fmt.Sprintf("(%s,%d)", did.Direction, did.Id)
}
