package InputParameters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/notargets/gosubcell/DG1D"
	"github.com/notargets/gosubcell/DGSubcell"
	"github.com/notargets/gosubcell/FiniteDifference"
	"github.com/notargets/gosubcell/types"
)

// BoundarySpec names the condition on one end of the domain, Value is the
// boundary state of a Dirichlet condition
type BoundarySpec struct {
	Type  string  `json:"Type"`
	Value float64 `json:"Value,omitempty"`
}

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title              string                          `json:"Title"`
	CFL                float64                         `json:"CFL"`
	FinalTime          float64                         `json:"FinalTime"`
	PolynomialOrder    int                             `json:"PolynomialOrder"`
	Elements           int                             `json:"Elements"`
	XMin               float64                         `json:"XMin"`
	XMax               float64                         `json:"XMax"`
	InitType           string                          `json:"InitType"`
	InitParameters     map[string]float64              `json:"InitParameters,omitempty"`
	BoundaryCorrection string                          `json:"BoundaryCorrection"`
	Formulation        string                          `json:"Formulation"`
	BCs                map[string]BoundarySpec         `json:"BCs"` // Keys are Lower and Upper
	Subcell            DGSubcell.SubcellOptions        `json:"Subcell"`
	Reconstructor      *FiniteDifference.Reconstructor `json:"Reconstructor"`
	LogFrequency       int                             `json:"LogFrequency"`
}

var BoundarySides = []string{"Lower", "Upper"}

// NewInputParameters1D returns a periodic sine wave run, parsed input
// overrides any of these
func NewInputParameters1D() (ip *InputParameters1D) {
	reconstructor, err := FiniteDifference.NewReconstructor(FiniteDifference.DefaultReconstructorOptions())
	if err != nil {
		panic(err)
	}
	ip = &InputParameters1D{
		Title:              "Burgers sine wave",
		CFL:                0.5,
		FinalTime:          0.5,
		PolynomialOrder:    3,
		Elements:           16,
		XMin:               0,
		XMax:               6.283185307179586,
		InitType:           "Sinusoid",
		BoundaryCorrection: "Rusanov",
		Formulation:        "StrongInertial",
		BCs: map[string]BoundarySpec{
			"Lower": {Type: "Periodic"},
			"Upper": {Type: "Periodic"},
		},
		Subcell:       DGSubcell.DefaultSubcellOptions(),
		Reconstructor: reconstructor,
		LogFrequency:  50,
	}
	return
}

func (ip *InputParameters1D) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		err = fmt.Errorf("unable to parse input parameters: %w", err)
	}
	return
}

func (ip *InputParameters1D) Validate() (err error) {
	switch {
	case ip.CFL <= 0:
		return fmt.Errorf("CFL must be positive, have %g", ip.CFL)
	case ip.FinalTime <= 0:
		return fmt.Errorf("FinalTime must be positive, have %g", ip.FinalTime)
	case ip.PolynomialOrder < 1:
		return fmt.Errorf("PolynomialOrder must be at least 1, have %d", ip.PolynomialOrder)
	case ip.PolynomialOrder == 1 && !ip.Subcell.AlwaysUseSubcells:
		// N^exponent is 1 and the modal indicator cannot fire
		return fmt.Errorf("PolynomialOrder 1 needs AlwaysUseSubcells, the troubled cell indicators need order 2 or more")
	case ip.Elements < 1:
		return fmt.Errorf("need at least one element, have %d", ip.Elements)
	case ip.XMax <= ip.XMin:
		return fmt.Errorf("XMax %g must exceed XMin %g", ip.XMax, ip.XMin)
	}
	if ip.Reconstructor == nil {
		return fmt.Errorf("missing reconstructor")
	}
	if _, ok := DG1D.FormulationNames[strings.ToLower(ip.Formulation)]; !ok {
		return fmt.Errorf("unknown DG formulation %s", ip.Formulation)
	}
	if err = ip.Subcell.Validate(); err != nil {
		return fmt.Errorf("subcell options: %w", err)
	}
	var periodic int
	for _, side := range BoundarySides {
		spec, ok := ip.BCs[side]
		if !ok {
			return fmt.Errorf("missing %s boundary condition", side)
		}
		var bcf types.BCFLAG
		if bcf, err = types.NewBCFLAG(spec.Type); err != nil {
			return fmt.Errorf("%s boundary: %w", side, err)
		}
		if bcf == types.BC_Periodic {
			periodic++
		}
	}
	if periodic == 1 {
		return fmt.Errorf("periodic boundaries must be used on both sides")
	}
	return
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("[%d]\t\t\t\t= Polynomial Order\n", ip.PolynomialOrder)
	fmt.Printf("[%d]\t\t\t\t= Elements\n", ip.Elements)
	fmt.Printf("[%g, %g]\t\t= Domain\n", ip.XMin, ip.XMax)
	fmt.Printf("[%s]\t\t= InitType\n", ip.InitType)
	keys := make([]string, 0, len(ip.InitParameters))
	for k := range ip.InitParameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("InitParameters[%s] = %g\n", key, ip.InitParameters[key])
	}
	fmt.Printf("[%s]\t\t\t= Boundary Correction\n", ip.BoundaryCorrection)
	fmt.Printf("[%s]\t\t= Formulation\n", ip.Formulation)
	for _, side := range BoundarySides {
		fmt.Printf("BCs[%s] = %v\n", side, ip.BCs[side])
	}
	fmt.Printf("Reconstructor = %s\n", ip.Reconstructor)
	ip.Subcell.Print()
}
