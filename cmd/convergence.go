/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/notargets/gosubcell/InputParameters"
	"github.com/notargets/gosubcell/model_problems/Burgers1D"
	"github.com/notargets/gosubcell/utils"
)

// ConvergenceRow is one resolution of a convergence study
type ConvergenceRow struct {
	Title           string
	Elements, Order int
	CFL             float64
	RMS, Max        float64
}

var ConvergenceHeader = []string{"Title", "Elements", "Order", "CFL", "RMSError", "MaxError"}

// ConvergenceCmd represents the convergence command
var ConvergenceCmd = &cobra.Command{
	Use:   "convergence",
	Short: "Error convergence study of a 1D case with an analytic solution",
	Long: `
Runs the 1D case of the input file at several element counts and reports the
RMS and max errors against the analytic solution with the observed orders,

gosubcell convergence -I sine.yaml -k 8,16,32 -o sine.csv`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err  error
			ip   *InputParameters.InputParameters1D
			rows []ConvergenceRow
		)
		m1d := &Model1D{}
		m1d.ICFile, _ = cmd.Flags().GetString("inputConditionsFile")
		m1d.ProcLimit, _ = cmd.Flags().GetInt("procs")
		elements, _ := cmd.Flags().GetIntSlice("elements")
		csvFile, _ := cmd.Flags().GetString("csvFile")
		if ip, err = processInput1D(m1d); err == nil {
			if rows, err = RunConvergence(ip, elements, m1d.ProcLimit); err == nil {
				printConvergence(rows)
				err = saveConvergence(csvFile, rows)
			}
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(ConvergenceCmd)
	ConvergenceCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters, the case needs an analytic solution")
	ConvergenceCmd.Flags().IntSliceP("elements", "k", []int{8, 16, 32, 64}, "element counts of the study")
	ConvergenceCmd.Flags().StringP("csvFile", "o", "", "write the study to this CSV file")
	ConvergenceCmd.Flags().IntP("procs", "p", 0, "maximum number of goroutines, 0 uses every CPU")
}

// RunConvergence runs ip once per element count
func RunConvergence(ip *InputParameters.InputParameters1D, elements []int, procLimit int) (rows []ConvergenceRow, err error) {
	if len(elements) < 2 {
		return nil, fmt.Errorf("a convergence study needs at least two element counts, have %v", elements)
	}
	for _, K := range elements {
		var (
			c       *Burgers1D.Burgers1D
			ipK     = *ip
			rms, mx float64
			ok      bool
		)
		ipK.Elements = K
		ipK.LogFrequency = 0
		if c, err = Burgers1D.NewBurgers1D(&ipK, procLimit); err != nil {
			return
		}
		if !c.InitialData.IsSolutionAt(ipK.FinalTime) {
			return nil, fmt.Errorf("%s has no analytic solution at time %g", c.InitialData.Name(), ipK.FinalTime)
		}
		if err = c.Run(); err != nil {
			return
		}
		if rms, mx, ok = c.ErrorNorms(); !ok {
			return nil, fmt.Errorf("%s has no analytic solution at time %g", ip.InitType, c.Time)
		}
		rows = append(rows, ConvergenceRow{
			Title:    ip.Title,
			Elements: K,
			Order:    ip.PolynomialOrder,
			CFL:      ip.CFL,
			RMS:      rms,
			Max:      mx,
		})
	}
	return
}

func printConvergence(rows []ConvergenceRow) {
	var (
		cyan  = color.New(color.FgCyan, color.Bold).SprintFunc()
		green = color.New(color.FgGreen).SprintFunc()
		n     = make([]int, len(rows))
		rms   = make([]float64, len(rows))
		mx    = make([]float64, len(rows))
	)
	for i, r := range rows {
		n[i], rms[i], mx[i] = r.Elements, r.RMS, r.Max
	}
	rmsOrder, maxOrder := utils.ConvergenceOrders(n, rms), utils.ConvergenceOrders(n, mx)
	fmt.Printf("\n%s\n", cyan(fmt.Sprintf("=== %s, Order = %d, CFL = %5.2f ===", rows[0].Title, rows[0].Order, rows[0].CFL)))
	fmt.Printf("%8s %12s %8s %12s %8s\n", "K", "RMS", "order", "Max", "order")
	for i, r := range rows {
		fmt.Printf("%8d %12.4e %8s %12.4e %8s\n", r.Elements, r.RMS, green(fmt.Sprintf("%5.2f", rmsOrder[i])),
			r.Max, green(fmt.Sprintf("%5.2f", maxOrder[i])))
	}
}

func saveConvergence(csvFile string, rows []ConvergenceRow) (err error) {
	if len(csvFile) == 0 {
		return
	}
	var f *os.File
	if f, err = os.Create(csvFile); err != nil {
		return fmt.Errorf("unable to write convergence study: %w", err)
	}
	defer f.Close()
	return WriteConvergenceCSV(f, rows)
}

// WriteConvergenceCSV writes the rows under ConvergenceHeader
func WriteConvergenceCSV(w io.Writer, rows []ConvergenceRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ConvergenceHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.Title,
			strconv.Itoa(r.Elements),
			strconv.Itoa(r.Order),
			strconv.FormatFloat(r.CFL, 'g', -1, 64),
			strconv.FormatFloat(r.RMS, 'e', -1, 64),
			strconv.FormatFloat(r.Max, 'e', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
