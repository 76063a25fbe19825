package FiniteDifference

import (
	"encoding/json"
	"fmt"
	"strings"
)

type ReconstructorType uint8

const (
	Wcns5z ReconstructorType = iota
	Minmod
	MonotonisedCentral
)

var (
	ReconstructorNames = map[string]ReconstructorType{
		"wcns5z":             Wcns5z,
		"minmod":             Minmod,
		"monotonisedcentral": MonotonisedCentral,
		"mc":                 MonotonisedCentral,
	}
	ReconstructorPrintNames = []string{"Wcns5z", "Minmod", "MonotonisedCentral"}
)

func (rt ReconstructorType) String() string { return ReconstructorPrintNames[rt] }

type FallbackReconstructorType uint8

const (
	FallbackNone FallbackReconstructorType = iota
	FallbackMinmod
	FallbackMonotonisedCentral
)

var (
	FallbackReconstructorNames = map[string]FallbackReconstructorType{
		"none":               FallbackNone,
		"minmod":             FallbackMinmod,
		"monotonisedcentral": FallbackMonotonisedCentral,
		"mc":                 FallbackMonotonisedCentral,
	}
	FallbackReconstructorPrintNames = []string{"None", "Minmod", "MonotonisedCentral"}
)

func (ft FallbackReconstructorType) String() string { return FallbackReconstructorPrintNames[ft] }

// ReconstructorOptions is the configuration form of a Reconstructor
type ReconstructorOptions struct {
	Type                    string  `json:"Type"`
	NonlinearWeightExponent int     `json:"NonlinearWeightExponent,omitempty"`
	Epsilon                 float64 `json:"Epsilon,omitempty"`
	FallbackReconstructor   string  `json:"FallbackReconstructor,omitempty"`
	MaxNumberOfExtrema      int     `json:"MaxNumberOfExtrema,omitempty"`
}

func DefaultReconstructorOptions() ReconstructorOptions {
	return ReconstructorOptions{
		Type:                    "Wcns5z",
		NonlinearWeightExponent: 2,
		Epsilon:                 1.e-42,
		FallbackReconstructor:   "MonotonisedCentral",
		MaxNumberOfExtrema:      1,
	}
}

// cellKernel returns the values on the lower and upper faces of the center
// cell of the stencil q
type cellKernel func(q []float64) (lower, upper float64)

// Reconstructor computes face values on a subcell grid. Two reconstructors are
// equal when their tunables are; the kernel is derived from them.
type Reconstructor struct {
	Type                    ReconstructorType
	NonlinearWeightExponent int
	Epsilon                 float64
	Fallback                FallbackReconstructorType
	MaxNumberOfExtrema      int
	kernel                  cellKernel
}

func NewReconstructor(opts ReconstructorOptions) (r *Reconstructor, err error) {
	var (
		ok bool
	)
	r = &Reconstructor{
		NonlinearWeightExponent: opts.NonlinearWeightExponent,
		Epsilon:                 opts.Epsilon,
		MaxNumberOfExtrema:      opts.MaxNumberOfExtrema,
	}
	if r.Type, ok = ReconstructorNames[strings.ToLower(opts.Type)]; !ok {
		return nil, fmt.Errorf("unable to use reconstructor named %q", opts.Type)
	}
	if r.Type == Wcns5z {
		fallback := opts.FallbackReconstructor
		if fallback == "" {
			fallback = "none"
		}
		if r.Fallback, ok = FallbackReconstructorNames[strings.ToLower(fallback)]; !ok {
			return nil, fmt.Errorf("unable to use fallback reconstructor named %q", opts.FallbackReconstructor)
		}
		switch {
		case r.NonlinearWeightExponent < 1:
			return nil, fmt.Errorf("nonlinear weight exponent must be at least 1, have %d", r.NonlinearWeightExponent)
		case !(r.Epsilon > 0):
			return nil, fmt.Errorf("epsilon must be positive, have %g", r.Epsilon)
		case r.MaxNumberOfExtrema < 0:
			return nil, fmt.Errorf("max number of extrema must be non-negative, have %d", r.MaxNumberOfExtrema)
		}
	} else {
		// Only the weighted scheme has tunables
		r.NonlinearWeightExponent, r.Epsilon, r.MaxNumberOfExtrema = 0, 0, 0
	}
	r.kernel = r.newKernel()
	return
}

func (r *Reconstructor) newKernel() cellKernel {
	switch r.Type {
	case Minmod:
		return minmodKernel
	case MonotonisedCentral:
		return monotonisedCentralKernel
	}
	var (
		q        = r.NonlinearWeightExponent
		eps      = r.Epsilon
		maxExt   = r.MaxNumberOfExtrema
		fallback cellKernel
	)
	switch r.Fallback {
	case FallbackMinmod:
		fallback = minmodKernel
	case FallbackMonotonisedCentral:
		fallback = monotonisedCentralKernel
	}
	if fallback == nil {
		return func(v []float64) (lower, upper float64) {
			return wcns5z(v, q, eps)
		}
	}
	return func(v []float64) (lower, upper float64) {
		if numberOfExtrema(v) > maxExt {
			return fallback(v[1:4])
		}
		return wcns5z(v, q, eps)
	}
}

// GhostZoneSize is the number of neighbor cells the stencil reaches into
func (r *Reconstructor) GhostZoneSize() int {
	if r.Type == Wcns5z {
		return 3
	}
	return 2
}

func (r *Reconstructor) Equal(o *Reconstructor) bool {
	return r.Type == o.Type &&
		r.NonlinearWeightExponent == o.NonlinearWeightExponent &&
		r.Epsilon == o.Epsilon &&
		r.Fallback == o.Fallback &&
		r.MaxNumberOfExtrema == o.MaxNumberOfExtrema
}

func (r *Reconstructor) Options() (opts ReconstructorOptions) {
	opts.Type = r.Type.String()
	if r.Type == Wcns5z {
		opts.NonlinearWeightExponent = r.NonlinearWeightExponent
		opts.Epsilon = r.Epsilon
		opts.FallbackReconstructor = r.Fallback.String()
		opts.MaxNumberOfExtrema = r.MaxNumberOfExtrema
	}
	return
}

func (r *Reconstructor) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Options())
}

// UnmarshalJSON reads the tunables, unset ones take their defaults
func (r *Reconstructor) UnmarshalJSON(data []byte) (err error) {
	var (
		opts = DefaultReconstructorOptions()
		rr   *Reconstructor
	)
	if err = json.Unmarshal(data, &opts); err != nil {
		return fmt.Errorf("unable to read reconstructor: %w", err)
	}
	if rr, err = NewReconstructor(opts); err != nil {
		return
	}
	*r = *rr
	return
}

func (r *Reconstructor) String() string {
	if r.Type != Wcns5z {
		return r.Type.String()
	}
	return fmt.Sprintf("%s(exponent=%d, epsilon=%g, fallback=%s, max extrema=%d)",
		r.Type, r.NonlinearWeightExponent, r.Epsilon, r.Fallback, r.MaxNumberOfExtrema)
}
