package Burgers1D

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/gosubcell/DG1D"
)

// PackagedData is one side's contribution to an interface flux, computed
// independently by each of the two elements sharing the face
type PackagedData struct {
	V              []float64
	NormalDotFluxV []float64
	CharSpeed      []float64 // |speed| for Rusanov, signed for HLL
}

func NewPackagedData(n int) PackagedData {
	return PackagedData{
		V:              make([]float64, n),
		NormalDotFluxV: make([]float64, n),
		CharSpeed:      make([]float64, n),
	}
}

// BoundaryCorrection computes the numerical flux correction on element faces.
// The set of implementations is closed: Rusanov and Hll.
type BoundaryCorrection interface {
	// DgPackageData fills packaged from the face values v and fluxes fluxV
	// seen with outward normal and returns the largest characteristic speed
	// magnitude. normalDotMeshVelocity may be nil for a static mesh.
	DgPackageData(packaged *PackagedData, v, fluxV []float64, normal float64,
		normalDotMeshVelocity []float64) (maxAbsCharSpeed float64)
	DgBoundaryTerms(correction []float64, interior, exterior PackagedData, formulation DG1D.Formulation)
	Name() string
	boundaryCorrection()
}

type BoundaryCorrectionType uint8

const (
	BC_Rusanov BoundaryCorrectionType = iota
	BC_Hll
)

var (
	BoundaryCorrectionNames = map[string]BoundaryCorrectionType{
		"rusanov": BC_Rusanov,
		"llf":     BC_Rusanov,
		"hll":     BC_Hll,
	}
	BoundaryCorrectionPrintNames = []string{"Rusanov", "Hll"}
)

func (bt BoundaryCorrectionType) Print() (txt string) {
	txt = BoundaryCorrectionPrintNames[bt]
	return
}

func NewBoundaryCorrection(label string) (bc BoundaryCorrection, err error) {
	bt, ok := BoundaryCorrectionNames[strings.ToLower(label)]
	if !ok {
		err = fmt.Errorf("unable to use boundary correction named %s", label)
		return
	}
	switch bt {
	case BC_Rusanov:
		bc = Rusanov{}
	case BC_Hll:
		bc = Hll{}
	}
	return
}

func packageCommon(packaged *PackagedData, v, fluxV []float64, normal float64,
	normalDotMeshVelocity []float64) {
	if len(fluxV) != len(v) || len(packaged.V) != len(v) ||
		(normalDotMeshVelocity != nil && len(normalDotMeshVelocity) != len(v)) {
		panic(fmt.Errorf("face data sizes differ: v %d, flux %d, packaged %d, mesh velocity %d",
			len(v), len(fluxV), len(packaged.V), len(normalDotMeshVelocity)))
	}
	copy(packaged.V, v)
	for i, f := range fluxV {
		packaged.NormalDotFluxV[i] = normal * f
		packaged.CharSpeed[i] = normal * CharSpeed(v[i])
		if normalDotMeshVelocity != nil {
			packaged.CharSpeed[i] -= normalDotMeshVelocity[i]
		}
	}
}

func checkBoundaryTerms(correction []float64, interior, exterior PackagedData) {
	n := len(correction)
	if len(interior.V) != n || len(exterior.V) != n {
		panic(fmt.Errorf("boundary terms sizes differ: correction %d, interior %d, exterior %d",
			n, len(interior.V), len(exterior.V)))
	}
}

// Rusanov is the local Lax-Friedrichs flux
type Rusanov struct{}

func (Rusanov) boundaryCorrection() {}

func (Rusanov) Name() string { return BC_Rusanov.Print() }

func (Rusanov) DgPackageData(packaged *PackagedData, v, fluxV []float64, normal float64,
	normalDotMeshVelocity []float64) (maxAbsCharSpeed float64) {
	packageCommon(packaged, v, fluxV, normal, normalDotMeshVelocity)
	for i, s := range packaged.CharSpeed {
		packaged.CharSpeed[i] = math.Abs(s)
		maxAbsCharSpeed = math.Max(maxAbsCharSpeed, packaged.CharSpeed[i])
	}
	return
}

func (Rusanov) DgBoundaryTerms(correction []float64, interior, exterior PackagedData,
	formulation DG1D.Formulation) {
	checkBoundaryTerms(correction, interior, exterior)
	for i := range correction {
		var (
			s    = math.Max(interior.CharSpeed[i], exterior.CharSpeed[i])
			jump = exterior.V[i] - interior.V[i]
		)
		if formulation == DG1D.WeakInertial {
			correction[i] = 0.5*(interior.NormalDotFluxV[i]-exterior.NormalDotFluxV[i]) - 0.5*s*jump
		} else {
			correction[i] = -0.5*(interior.NormalDotFluxV[i]+exterior.NormalDotFluxV[i]) - 0.5*s*jump
		}
	}
}

// Hll is the two wave Harten-Lax-van Leer flux
type Hll struct{}

func (Hll) boundaryCorrection() {}

func (Hll) Name() string { return BC_Hll.Print() }

func (Hll) DgPackageData(packaged *PackagedData, v, fluxV []float64, normal float64,
	normalDotMeshVelocity []float64) (maxAbsCharSpeed float64) {
	packageCommon(packaged, v, fluxV, normal, normalDotMeshVelocity)
	for _, s := range packaged.CharSpeed {
		maxAbsCharSpeed = math.Max(maxAbsCharSpeed, math.Abs(s))
	}
	return
}

func (Hll) DgBoundaryTerms(correction []float64, interior, exterior PackagedData,
	formulation DG1D.Formulation) {
	checkBoundaryTerms(correction, interior, exterior)
	for i := range correction {
		var (
			lambdaMin = math.Min(0, math.Min(interior.CharSpeed[i], -exterior.CharSpeed[i]))
			lambdaMax = math.Max(0, math.Max(interior.CharSpeed[i], -exterior.CharSpeed[i]))
		)
		if lambdaMax == lambdaMin {
			panic(fmt.Errorf("degenerate HLL wave speeds at face point %d: lambda min = lambda max = %g",
				i, lambdaMax))
		}
		correction[i] = (lambdaMax*interior.NormalDotFluxV[i] + lambdaMin*exterior.NormalDotFluxV[i] +
			lambdaMax*lambdaMin*(exterior.V[i]-interior.V[i])) / (lambdaMax - lambdaMin)
		if formulation == DG1D.StrongInertial {
			correction[i] -= interior.NormalDotFluxV[i]
		}
	}
}

// NumericalFlux is the flux through a face in the +x sense, lower being the
// state on the low x side and upper the state on the high x side
func NumericalFlux(bc BoundaryCorrection, lower, upper float64) float64 {
	var (
		pl, pu = NewPackagedData(1), NewPackagedData(1)
		corr   = make([]float64, 1)
	)
	bc.DgPackageData(&pl, []float64{lower}, []float64{Flux(lower)}, 1, nil)
	bc.DgPackageData(&pu, []float64{upper}, []float64{Flux(upper)}, -1, nil)
	bc.DgBoundaryTerms(corr, pl, pu, DG1D.WeakInertial)
	return corr[0]
}
