package types

import (
	"fmt"
	"strings"
)

type BCFLAG uint8

const (
	BC_None BCFLAG = iota
	BC_Periodic
	BC_Dirichlet
	BC_DirichletAnalytic
	BC_Out
)

var BCNameMap = map[string]BCFLAG{
	"periodic":          BC_Periodic,
	"dirichlet":         BC_Dirichlet,
	"dirichletanalytic": BC_DirichletAnalytic,
	"analytic":          BC_DirichletAnalytic,
	"out":               BC_Out,
	"outflow":           BC_Out,
}

var BCPrintNames = []string{"None", "Periodic", "Dirichlet", "DirichletAnalytic", "Outflow"}

func (bcf BCFLAG) String() string {
	if int(bcf) < len(BCPrintNames) {
		return BCPrintNames[bcf]
	}
	return fmt.Sprintf("BCFLAG(%d)", uint8(bcf))
}

func NewBCFLAG(label string) (bcf BCFLAG, err error) {
	var ok bool
	if bcf, ok = BCNameMap[strings.ToLower(label)]; !ok {
		err = fmt.Errorf("unknown boundary condition %s", label)
	}
	return
}
