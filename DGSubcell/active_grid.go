package DGSubcell

type ActiveGrid uint8

const (
	Dg ActiveGrid = iota
	Subcell
)

func (ag ActiveGrid) String() string {
	if ag == Subcell {
		return "Subcell"
	}
	return "Dg"
}
