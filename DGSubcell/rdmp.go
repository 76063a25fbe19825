package DGSubcell

import (
	"fmt"
	"math"
)

// RdmpTciData is the retained extrema record of an element, one entry per
// tracked variable
type RdmpTciData struct {
	MaxVariablesValues []float64 `json:"max_variables_values"`
	MinVariablesValues []float64 `json:"min_variables_values"`
}

func NewRdmpTciData(maxVals, minVals []float64) RdmpTciData {
	if len(maxVals) != len(minVals) {
		panic(fmt.Errorf("rdmp max and min sizes differ: %d != %d", len(maxVals), len(minVals)))
	}
	return RdmpTciData{
		MaxVariablesValues: append([]float64{}, maxVals...),
		MinVariablesValues: append([]float64{}, minVals...),
	}
}

func (rd RdmpTciData) Size() int { return len(rd.MaxVariablesValues) }

func (rd RdmpTciData) Copy() RdmpTciData {
	return NewRdmpTciData(rd.MaxVariablesValues, rd.MinVariablesValues)
}

// Combine returns the element-wise max/min over the record and the neighbors' records
func (rd RdmpTciData) Combine(neighbors ...RdmpTciData) (out RdmpTciData) {
	out = rd.Copy()
	for _, nb := range neighbors {
		if nb.Size() != out.Size() {
			panic(fmt.Errorf("combining rdmp data of size %d with size %d", out.Size(), nb.Size()))
		}
		for i := range out.MaxVariablesValues {
			out.MaxVariablesValues[i] = math.Max(out.MaxVariablesValues[i], nb.MaxVariablesValues[i])
			out.MinVariablesValues[i] = math.Min(out.MinVariablesValues[i], nb.MinVariablesValues[i])
		}
	}
	return
}

func (rd RdmpTciData) Equal(o RdmpTciData) bool {
	if rd.Size() != o.Size() {
		return false
	}
	for i := range rd.MaxVariablesValues {
		if rd.MaxVariablesValues[i] != o.MaxVariablesValues[i] ||
			rd.MinVariablesValues[i] != o.MinVariablesValues[i] {
			return false
		}
	}
	return true
}

// AppendTo writes maxima then minima after buffer
func (rd RdmpTciData) AppendTo(buffer []float64) []float64 {
	buffer = append(buffer, rd.MaxVariablesValues...)
	return append(buffer, rd.MinVariablesValues...)
}

func (rd RdmpTciData) String() string {
	return fmt.Sprintf("max=%v min=%v", rd.MaxVariablesValues, rd.MinVariablesValues)
}

// RdmpTci is the relaxed discrete maximum principle check. It returns 0 when
// every variable stays inside its relaxed bounds, otherwise 1 plus the index of
// the first variable that does not.
func RdmpTci(maxNow, minNow, maxPast, minPast []float64, delta0, epsilon float64) int {
	if len(maxNow) != len(minNow) || len(maxNow) != len(maxPast) || len(maxNow) != len(minPast) {
		panic(fmt.Errorf("rdmp size mismatch: max %d, min %d, past max %d, past min %d",
			len(maxNow), len(minNow), len(maxPast), len(minPast)))
	}
	for i := range maxNow {
		delta := math.Max(delta0, epsilon*(maxPast[i]-minPast[i]))
		if maxNow[i] > maxPast[i]+delta || minNow[i] < minPast[i]-delta {
			return i + 1
		}
	}
	return 0
}

// MaxMin returns per variable extrema of values holding nvars equal length fields
func MaxMin(values []float64, nvars int) (rd RdmpTciData) {
	if nvars < 1 || len(values) == 0 || len(values)%nvars != 0 {
		panic(fmt.Errorf("can not split %d values into %d variables", len(values), nvars))
	}
	npts := len(values) / nvars
	rd = RdmpTciData{
		MaxVariablesValues: make([]float64, nvars),
		MinVariablesValues: make([]float64, nvars),
	}
	for v := 0; v < nvars; v++ {
		field := values[v*npts : (v+1)*npts]
		mx, mn := field[0], field[0]
		for _, f := range field[1:] {
			mx = math.Max(mx, f)
			mn = math.Min(mn, f)
		}
		rd.MaxVariablesValues[v], rd.MinVariablesValues[v] = mx, mn
	}
	return
}

// TwoMeshRdmpData is the union of the extrema of the same variables on the DG
// and subcell grids
func TwoMeshRdmpData(dgValues, subcellValues []float64, nvars int) RdmpTciData {
	return MaxMin(dgValues, nvars).Combine(MaxMin(subcellValues, nvars))
}
