package Burgers1D

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/notargets/gosubcell/DG1D"
	"github.com/notargets/gosubcell/DGSubcell"
	"github.com/notargets/gosubcell/FiniteDifference"
	"github.com/notargets/gosubcell/InputParameters"
	"github.com/notargets/gosubcell/types"
	"github.com/notargets/gosubcell/utils"
)

// Burgers1D evolves the Burgers equation on a 1D mesh where every element is
// either DG or finite difference subcell active, chosen each step by the
// troubled cell indicators
type Burgers1D struct {
	// Input parameters
	CFL, FinalTime      float64
	El                  *DG1D.Elements1D
	DgMesh, SubcellMesh DGSubcell.Mesh
	Projector           *DGSubcell.Projector
	Reconstructor       *FiniteDifference.Reconstructor
	Correction          BoundaryCorrection
	Formulation         DG1D.Formulation
	Options             DGSubcell.SubcellOptions
	InitialData         AnalyticPrescription
	BCs                 [DG1D.NFaces]BoundaryCondition
	LogFrequency        int
	// Parallelism
	ParallelDegree int
	Partitions     *utils.PartitionMap
	mb             *utils.MailBox[*GhostMessage]
	// State
	Elements  []*Element
	Time      float64
	Steps     int
	exchange  int
	stageTime float64
	dxMin     float64
}

func NewBurgers1D(ip *InputParameters.InputParameters1D, ProcLimit int) (c *Burgers1D, err error) {
	if err = ip.Validate(); err != nil {
		return
	}
	c = &Burgers1D{
		CFL:          ip.CFL,
		FinalTime:    ip.FinalTime,
		Formulation:  DG1D.NewFormulation(ip.Formulation),
		Options:       ip.Subcell,
		Reconstructor: ip.Reconstructor,
		LogFrequency:  ip.LogFrequency,
	}
	if c.InitialData, err = NewAnalyticPrescription(ip.InitType, ip.InitParameters); err != nil {
		return nil, err
	}
	if c.Correction, err = NewBoundaryCorrection(ip.BoundaryCorrection); err != nil {
		return nil, err
	}
	var periodic bool
	for face, side := range InputParameters.BoundarySides {
		var (
			spec = ip.BCs[side]
			bcf  types.BCFLAG
		)
		if bcf, err = types.NewBCFLAG(spec.Type); err != nil {
			return nil, fmt.Errorf("%s boundary: %w", side, err)
		}
		if c.BCs[face], err = NewBoundaryCondition(bcf, spec.Value, c.InitialData); err != nil {
			return nil, fmt.Errorf("%s boundary: %w", side, err)
		}
		periodic = bcf == types.BC_Periodic
	}
	VX, EToV := DG1D.SimpleMesh1D(ip.XMin, ip.XMax, ip.Elements)
	c.El = DG1D.NewElements1D(ip.PolynomialOrder, VX, EToV, periodic)
	c.DgMesh = DGSubcell.NewDgMesh(1, ip.PolynomialOrder, DGSubcell.GaussLobatto)
	c.SubcellMesh = DGSubcell.SubcellMesh(c.DgMesh)
	c.Projector = DGSubcell.NewProjector(c.DgMesh, c.SubcellMesh)
	c.SetParallelDegree(ProcLimit, c.El.K)
	c.mb = utils.NewMailBox[*GhostMessage](c.ParallelDegree)
	if err = c.Initialize(); err != nil {
		return nil, err
	}
	return
}

func (c *Burgers1D) SetParallelDegree(ProcLimit, Kmax int) {
	if ProcLimit != 0 {
		c.ParallelDegree = ProcLimit
	} else {
		c.ParallelDegree = runtime.NumCPU()
	}
	if c.ParallelDegree > Kmax {
		c.ParallelDegree = Kmax
	}
	c.Partitions = utils.NewPartitionMap(c.ParallelDegree, Kmax)
}

// Initialize sets the initial data on the DG grid, then moves elements whose
// data is troubled to subcells, sampling the data at the subcell centres
func (c *Burgers1D) Initialize() (err error) {
	var (
		el = c.El
		ns = c.SubcellMesh.Extents[0]
	)
	// Smallest spacing of either grid
	c.dxMin = math.MaxFloat64
	for i := 0; i < el.Np-1; i++ {
		c.dxMin = math.Min(c.dxMin, el.R.AtVec(i+1)-el.R.AtVec(i))
	}
	c.dxMin = math.Min(c.dxMin, 2./float64(ns))
	minWidth := math.MaxFloat64
	for k := 0; k < el.K; k++ {
		minWidth = math.Min(minWidth, el.Width(k))
	}
	c.dxMin *= 0.5 * minWidth
	c.Elements = make([]*Element, el.K)
	for k := 0; k < el.K; k++ {
		e := NewElement(DGSubcell.ElementId(k), el.X.At(0, k), el.X.At(el.Np-1, k))
		if c.Options.AlwaysUseSubcells {
			e.Grid = DGSubcell.Subcell
			e.U = c.InitialData.Variables(e.SubcellCenters(ns), 0)
		} else {
			e.Grid = DGSubcell.Dg
			e.U = c.InitialData.Variables(el.X.Col(k).DataP, 0)
		}
		e.Rdmp = SetInitialRdmpData(e.U, e.Grid, c.DgMesh, c.SubcellMesh)
		e.stage = e.U
		c.Elements[k] = e
	}
	if c.Options.AlwaysUseSubcells {
		return
	}
	c.exchangeGhosts()
	return c.parallel(func(k int) error {
		e := c.Elements[k]
		if troubled, _ := TciOnDgGrid(e.U, c.DgMesh, c.SubcellMesh, c.pastRdmp(e), c.Options); troubled {
			e.Grid = DGSubcell.Subcell
			e.U = c.InitialData.Variables(e.SubcellCenters(ns), 0)
			e.Rdmp = SetInitialRdmpData(e.U, e.Grid, c.DgMesh, c.SubcellMesh)
			e.stage = e.U
		}
		e.clear()
		return nil
	})
}

// Run advances to FinalTime with third order SSP Runge-Kutta
func (c *Burgers1D) Run() (err error) {
	for c.FinalTime-c.Time > 1.e-12 {
		dt := c.CalculateDT()
		if err = c.Step(dt); err != nil {
			return
		}
		isDone := c.FinalTime-c.Time <= 1.e-12
		if c.LogFrequency > 0 && (c.Steps%c.LogFrequency == 0 || isDone) {
			vmin, vmax := c.MinMax()
			fmt.Printf("Time = %8.4f, step = %6d, dt = %8.6f, vmin = %8.5f, vmax = %8.5f, subcell elements = %d\n",
				c.Time, c.Steps, dt, vmin, vmax, c.SubcellCount())
		}
	}
	return
}

func (c *Burgers1D) CalculateDT() (dt float64) {
	var (
		vmax float64
	)
	for _, e := range c.Elements {
		vmax = math.Max(vmax, MaxAbsCharSpeed(e.U))
	}
	if vmax == 0 {
		return c.FinalTime - c.Time
	}
	dt = c.CFL * c.dxMin / vmax
	if dt+c.Time > c.FinalTime {
		dt = c.FinalTime - c.Time
	}
	return
}

// Step runs the troubled cell indicators on the current solution, then takes
// one time step with every element on the grid they chose
func (c *Burgers1D) Step(dt float64) (err error) {
	var (
		t0 = c.Time
	)
	c.stageTime = t0
	for _, e := range c.Elements {
		e.stage = e.U
	}
	c.exchangeGhosts()
	if err = c.parallel(c.applyTci); err != nil {
		return
	}
	stages := []struct {
		time   float64
		update func(u0, ui, rhs float64) float64
	}{
		{t0, func(u0, _, rhs float64) float64 { return u0 + dt*rhs }},
		{t0 + dt, func(u0, u1, rhs float64) float64 { return (3*u0 + u1 + rhs*dt) * (1. / 4.) }},
		{t0 + 0.5*dt, func(u0, u2, rhs float64) float64 { return (u0 + 2*u2 + 2*dt*rhs) * (1. / 3.) }},
	}
	for _, stage := range stages {
		c.stageTime = stage.time
		c.exchangeGhosts()
		err = c.parallel(func(k int) error {
			var (
				e   = c.Elements[k]
				rhs = c.RHS(k, e)
			)
			if utils.IsNan(rhs) {
				return fmt.Errorf("NaN in the time derivative of element %d (%s) at time %g",
					k, e.Grid, c.stageTime)
			}
			next := make([]float64, len(e.U))
			for i := range next {
				next[i] = stage.update(e.U[i], e.stage[i], rhs[i])
			}
			e.stage = next
			return nil
		})
		if err != nil {
			return
		}
	}
	for _, e := range c.Elements {
		e.U = e.stage
		e.clear()
	}
	c.Time += dt
	c.Steps++
	return
}

// applyTci decides the grid of element k for the coming step. The retained
// extrema are refreshed when the grid is kept and reseeded when it changes.
func (c *Burgers1D) applyTci(k int) error {
	var (
		e    = c.Elements[k]
		past = c.pastRdmp(e)
	)
	switch e.Grid {
	case DGSubcell.Dg:
		troubled, rdmp := TciOnDgGrid(e.U, c.DgMesh, c.SubcellMesh, past, c.Options)
		if troubled {
			e.Grid = DGSubcell.Subcell
			e.U = c.Projector.Project(e.U)
			e.Rdmp = SetInitialRdmpData(e.U, e.Grid, c.DgMesh, c.SubcellMesh)
		} else {
			e.Rdmp = rdmp
		}
	case DGSubcell.Subcell:
		troubled, rdmp := TciOnFdGrid(e.U, c.DgMesh, c.SubcellMesh, past, c.Options, c.Options.AlwaysUseSubcells)
		if troubled || c.Options.AlwaysUseSubcells {
			e.Rdmp = rdmp
		} else {
			e.Grid = DGSubcell.Dg
			e.U = c.Projector.Reconstruct(e.U)
			e.Rdmp = SetInitialRdmpData(e.U, e.Grid, c.DgMesh, c.SubcellMesh)
		}
	}
	e.stage = e.U
	return nil
}

// pastRdmp combines an element's retained extrema with those its neighbors
// sent in the current exchange
func (c *Burgers1D) pastRdmp(e *Element) DGSubcell.RdmpTciData {
	var (
		el        = c.El
		k         = int(e.Id)
		neighbors []DGSubcell.RdmpTciData
	)
	for face := 0; face < DG1D.NFaces; face++ {
		if el.IsBoundaryFace(k, face) {
			continue
		}
		_, rdmp := c.neighborGhost(e, face)
		neighbors = append(neighbors, rdmp)
	}
	return e.Rdmp.Combine(neighbors...)
}

func (c *Burgers1D) neighborId(e *Element, face int) DGSubcell.DirectionalId {
	return DGSubcell.DirectionalId{
		Direction: faceDirection(face),
		Id:        DGSubcell.ElementId(c.El.EToE[int(e.Id)][face]),
	}
}

func (c *Burgers1D) neighborGhost(e *Element, face int) (ghost []float64, rdmp DGSubcell.RdmpTciData) {
	var (
		id = c.neighborId(e, face)
		g  = c.Reconstructor.GhostZoneSize()
		n  = DGSubcell.GhostZoneLength(c.SubcellMesh.Extents, NumberOfVariables, g, id.Direction)
	)
	return DGSubcell.UnpackGhostData(e.Ghosts.Get(id, c.exchange), n, NumberOfVariables)
}

// subcellValues returns the element's stage values on the subcell grid
func (c *Burgers1D) subcellValues(e *Element) []float64 {
	if e.Grid == DGSubcell.Dg {
		return c.Projector.Project(e.stage)
	}
	return e.stage
}

// exchangeGhosts sends every element's stage data to its face neighbors. Each
// partition posts and delivers, then after a barrier receives.
func (c *Burgers1D) exchangeGhosts() {
	var (
		post, receive errgroup.Group
	)
	c.exchange++
	for np := 0; np < c.ParallelDegree; np++ {
		np := np
		post.Go(func() error {
			kMin, kMax := c.Partitions.GetBucketRange(np)
			for k := kMin; k < kMax; k++ {
				c.postGhosts(np, c.Elements[k])
			}
			c.mb.DeliverMyMessages(np)
			return nil
		})
	}
	_ = post.Wait()
	for np := 0; np < c.ParallelDegree; np++ {
		np := np
		receive.Go(func() error {
			for _, msg := range c.mb.ReceiveMyMessages(np) {
				c.Elements[msg.To].receive(msg)
			}
			c.mb.ClearMyMessages(np)
			return nil
		})
	}
	_ = receive.Wait()
}

func (c *Burgers1D) postGhosts(myThread int, e *Element) {
	var (
		el  = c.El
		k   = int(e.Id)
		g   = c.Reconstructor.GhostZoneSize()
		ext = c.SubcellMesh.Extents
		fd  = c.subcellValues(e)
	)
	for face := 0; face < DG1D.NFaces; face++ {
		if el.IsBoundaryFace(k, face) {
			continue
		}
		var (
			nb     = el.EToE[k][face]
			slice  = DGSubcell.SliceData(fd, ext, NumberOfVariables, g, faceDirection(face))
			buffer = GhostVariables(slice, 2*e.Rdmp.Size())
		)
		msg := &GhostMessage{
			Exchange:  c.exchange,
			From:      e.Id,
			To:        DGSubcell.ElementId(nb),
			Direction: faceDirection(face).Opposite(),
			Grid:      e.Grid,
			Buffer:    e.Rdmp.AppendTo(buffer[:len(slice)]),
		}
		if e.Grid == DGSubcell.Dg {
			msg.FaceValue = e.stage[faceNode(face, el.Np)]
		}
		target, _, _ := c.Partitions.GetBucket(nb)
		c.mb.PostMessage(myThread, target, msg)
	}
}

// parallel runs fn on every element, one goroutine per partition
func (c *Burgers1D) parallel(fn func(k int) error) error {
	var g errgroup.Group
	for np := 0; np < c.ParallelDegree; np++ {
		np := np
		g.Go(func() error {
			kMin, kMax := c.Partitions.GetBucketRange(np)
			for k := kMin; k < kMax; k++ {
				if err := fn(k); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// Integral is the integral of v over the domain
func (c *Burgers1D) Integral() (sum float64) {
	var (
		el = c.El
	)
	for k, e := range c.Elements {
		if e.Grid == DGSubcell.Dg {
			J := el.J.At(0, k)
			for i, v := range e.U {
				sum += el.W.AtVec(i) * v * J
			}
		} else {
			dx := e.Width() / float64(len(e.U))
			for _, v := range e.U {
				sum += v * dx
			}
		}
	}
	return
}

func (c *Burgers1D) MinMax() (vmin, vmax float64) {
	vmin, vmax = math.MaxFloat64, -math.MaxFloat64
	for _, e := range c.Elements {
		for _, v := range e.U {
			vmin, vmax = math.Min(vmin, v), math.Max(vmax, v)
		}
	}
	return
}

func (c *Burgers1D) SubcellCount() (n int) {
	for _, e := range c.Elements {
		if e.Grid == DGSubcell.Subcell {
			n++
		}
	}
	return
}

// Coordinates returns the points of element k's active grid
func (c *Burgers1D) Coordinates(k int) []float64 {
	e := c.Elements[k]
	if e.Grid == DGSubcell.Subcell {
		return e.SubcellCenters(c.SubcellMesh.Extents[0])
	}
	return c.El.X.Col(k).DataP
}

// MaxError compares the solution with the analytic solution at the current
// time, ok is false when there is none
func (c *Burgers1D) MaxError() (maxErr float64, ok bool) {
	_, maxErr, ok = c.ErrorNorms()
	return
}

// ErrorNorms returns the RMS and max differences from the analytic solution
// over every point of the active grids
func (c *Burgers1D) ErrorNorms() (rms, maxErr float64, ok bool) {
	if !c.InitialData.IsSolutionAt(c.Time) {
		return
	}
	var npts int
	for k, e := range c.Elements {
		exact := c.InitialData.Variables(c.Coordinates(k), c.Time)
		for i, v := range e.U {
			diff := math.Abs(v - exact[i])
			maxErr = math.Max(maxErr, diff)
			rms += diff * diff
			npts++
		}
	}
	rms = math.Sqrt(rms / float64(npts))
	return rms, maxErr, true
}
