package Burgers1D

import (
	"fmt"
	"math"
	"strings"
)

// AnalyticPrescription is initial data, or an analytic solution at the times
// where IsSolutionAt is true. Data ignores the time argument.
type AnalyticPrescription interface {
	Variables(x []float64, t float64) (v []float64)
	IsSolutionAt(t float64) bool
	Name() string
}

type InitType uint8

const (
	INIT_Sinusoid InitType = iota
	INIT_Gaussian
	INIT_Step
	INIT_Linear
)

var (
	InitNames = map[string]InitType{
		"sinusoid": INIT_Sinusoid,
		"sine":     INIT_Sinusoid,
		"gaussian": INIT_Gaussian,
		"step":     INIT_Step,
		"shock":    INIT_Step,
		"linear":   INIT_Linear,
	}
	InitPrintNames = []string{"Sinusoid", "Gaussian", "Step", "Linear"}
)

func (it InitType) Print() (txt string) {
	txt = InitPrintNames[it]
	return
}

// NewAnalyticPrescription builds the named data from its parameters:
// step uses Left, Right and ShockPosition, linear uses ShockTime.
func NewAnalyticPrescription(label string, params map[string]float64) (ap AnalyticPrescription, err error) {
	it, ok := InitNames[strings.ToLower(label)]
	if !ok {
		err = fmt.Errorf("unable to use initial data named %s", label)
		return
	}
	param := func(name string) (val float64) {
		if val, ok = params[name]; !ok {
			err = fmt.Errorf("initial data %s needs parameter %s", it.Print(), name)
		}
		return
	}
	switch it {
	case INIT_Sinusoid:
		ap = Sinusoid{}
	case INIT_Gaussian:
		ap = Gaussian{}
	case INIT_Step:
		left, right, x0 := param("Left"), param("Right"), param("ShockPosition")
		if err != nil {
			return
		}
		ap, err = NewStep(left, right, x0)
	case INIT_Linear:
		t0 := param("ShockTime")
		if err != nil {
			return
		}
		ap = Linear{ShockTime: t0}
	}
	return
}

// Sinusoid is v = sin(x). Before the shock forms at t = 1 the solution is
// found along characteristics: v = sin(ξ) where ξ + t sin(ξ) = x. From t = 1
// on it is time independent data.
type Sinusoid struct{}

func (Sinusoid) IsSolutionAt(t float64) bool { return t < 1 }
func (Sinusoid) Name() string                { return INIT_Sinusoid.Print() }

func (Sinusoid) Variables(x []float64, t float64) (v []float64) {
	v = make([]float64, len(x))
	for i, xx := range x {
		if t == 0 || t >= 1 {
			v[i] = math.Sin(xx)
			continue
		}
		xi := fzero(func(xi float64) float64 { return xi + t*math.Sin(xi) - xx }, xx)
		v[i] = math.Sin(xi)
	}
	return
}

// Gaussian is v = (1 + exp(-x²))²
type Gaussian struct{}

func (Gaussian) IsSolutionAt(float64) bool { return false }
func (Gaussian) Name() string              { return INIT_Gaussian.Print() }

func (Gaussian) Variables(x []float64, _ float64) (v []float64) {
	v = make([]float64, len(x))
	for i, xx := range x {
		g := 1 + math.Exp(-xx*xx)
		v[i] = g * g
	}
	return
}

// Step is a right moving shock between Left and Right starting at
// ShockPosition. Points at the shock take the Right value.
type Step struct {
	Left, Right, ShockPosition float64
}

func NewStep(left, right, shockPosition float64) (s Step, err error) {
	if left <= right {
		err = fmt.Errorf("shock solution expects left value > right value, have %g <= %g", left, right)
		return
	}
	s = Step{Left: left, Right: right, ShockPosition: shockPosition}
	return
}

func (Step) IsSolutionAt(float64) bool { return true }
func (Step) Name() string              { return INIT_Step.Print() }

func (s Step) Position(t float64) float64 {
	return s.ShockPosition + 0.5*(s.Left+s.Right)*t
}

func (s Step) Variables(x []float64, t float64) (v []float64) {
	var (
		pos = s.Position(t)
	)
	v = make([]float64, len(x))
	for i, xx := range x {
		if xx < pos {
			v[i] = s.Left
		} else {
			v[i] = s.Right
		}
	}
	return
}

func (s Step) DvDt(x []float64, _ float64) []float64 {
	return make([]float64, len(x))
}

// Linear is v = x/(t - ShockTime), linear in x at all times
type Linear struct {
	ShockTime float64
}

func (Linear) IsSolutionAt(float64) bool { return true }
func (Linear) Name() string              { return INIT_Linear.Print() }

func (l Linear) Variables(x []float64, t float64) (v []float64) {
	v = make([]float64, len(x))
	for i, xx := range x {
		v[i] = xx / (t - l.ShockTime)
	}
	return
}

func (l Linear) DvDt(x []float64, t float64) (dvdt []float64) {
	dvdt = make([]float64, len(x))
	dt := t - l.ShockTime
	for i, xx := range x {
		dvdt[i] = -xx / (dt * dt)
	}
	return
}

// fzero finds a root of f with the secant method starting near start
func fzero(f func(x float64) (y float64), start float64) float64 {
	var (
		tol     = 1.e-13
		maxIter = 100
		xOld    = start + 0.1
		resOld  = f(xOld)
	)
	for i := 0; i < maxIter; i++ {
		res := f(start)
		if math.Abs(res) < tol || res == resOld {
			return start
		}
		xNew := start - res*(start-xOld)/(res-resOld)
		xOld, resOld = start, res
		start = xNew
	}
	return start
}
