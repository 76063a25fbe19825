package DGSubcell

import (
	"fmt"
)

// SubcellOptions are the troubled cell indicator tunables
type SubcellOptions struct {
	RdmpDelta0             float64 `json:"RdmpDelta0"`
	RdmpEpsilon            float64 `json:"RdmpEpsilon"`
	PerssonExponent        float64 `json:"PerssonExponent"`
	PerssonNumHighestModes int     `json:"PerssonNumHighestModes"`
	AlwaysUseSubcells      bool    `json:"AlwaysUseSubcells"`
}

func DefaultSubcellOptions() SubcellOptions {
	return SubcellOptions{
		RdmpDelta0:             1.e-4,
		RdmpEpsilon:            1.e-3,
		PerssonExponent:        4.0,
		PerssonNumHighestModes: 1,
	}
}

func (so SubcellOptions) Validate() (err error) {
	switch {
	case so.RdmpDelta0 < 0:
		err = fmt.Errorf("RdmpDelta0 must be non-negative, have %g", so.RdmpDelta0)
	case so.RdmpEpsilon < 0:
		err = fmt.Errorf("RdmpEpsilon must be non-negative, have %g", so.RdmpEpsilon)
	case so.PerssonExponent <= 0:
		err = fmt.Errorf("PerssonExponent must be positive, have %g", so.PerssonExponent)
	case so.PerssonNumHighestModes < 1:
		err = fmt.Errorf("PerssonNumHighestModes must be at least 1, have %d", so.PerssonNumHighestModes)
	}
	return
}

func (so SubcellOptions) Print() {
	fmt.Printf("RDMP delta0 = %g, epsilon = %g\n", so.RdmpDelta0, so.RdmpEpsilon)
	fmt.Printf("Persson exponent = %g, highest modes = %d\n", so.PerssonExponent, so.PerssonNumHighestModes)
	if so.AlwaysUseSubcells {
		fmt.Printf("Always using subcells\n")
	}
}
