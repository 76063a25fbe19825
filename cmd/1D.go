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
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gosubcell/InputParameters"
	"github.com/notargets/gosubcell/model_problems/Burgers1D"
	"github.com/notargets/gosubcell/utils"
)

type Model1D struct {
	ICFile         string
	ProcLimit      int
	CFL, FinalTime float64 // Overrides of the input file when non zero
}

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One dimensional Burgers equation with subcell limiting",
	Long: `
Executes the hybrid DG / finite difference subcell solver for the 1D Burgers
equation. The run is described by a YAML input file, without one the default
sine wave problem is run.

gosubcell 1D -I burgers.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("1D called")
		m1d := &Model1D{}
		if m1d.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		m1d.ProcLimit = viper.GetInt("ProcLimit")
		if cmd.Flags().Changed("CFL") {
			m1d.CFL, _ = cmd.Flags().GetFloat64("CFL")
		}
		if cmd.Flags().Changed("finalTime") {
			m1d.FinalTime, _ = cmd.Flags().GetFloat64("finalTime")
		}
		var ip *InputParameters.InputParameters1D
		if ip, err = processInput1D(m1d); err == nil {
			_, err = Run1D(m1d, ip)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	OneDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- CFL\n\t- InitType\n\t- BCs")
	OneDCmd.Flags().IntP("procs", "p", 0, "maximum number of goroutines, 0 uses every CPU")
	OneDCmd.Flags().Float64("CFL", 0, "CFL - overrides the input file")
	OneDCmd.Flags().Float64("finalTime", 0, "FinalTime - overrides the input file")
	_ = viper.BindPFlag("ProcLimit", OneDCmd.Flags().Lookup("procs"))
}

const exampleFile1D = `
########################################
Title: "Burgers shock"
CFL: 0.5
FinalTime: 0.5
PolynomialOrder: 3
Elements: 20
XMin: -1
XMax: 1
InitType: Step # Can be Sinusoid, Gaussian, Step or Linear
InitParameters:
  Left: 2
  Right: 1
  ShockPosition: 0
BoundaryCorrection: Rusanov # Or Hll
Formulation: StrongInertial # Or WeakInertial
BCs:
  Lower:
    Type: DirichletAnalytic
  Upper:
    Type: DirichletAnalytic
########################################
`

func processInput1D(m1d *Model1D) (ip *InputParameters.InputParameters1D, err error) {
	ip = InputParameters.NewInputParameters1D()
	if len(m1d.ICFile) == 0 {
		fmt.Printf("No input parameters file (-I, --inputConditionsFile), running the default case\n")
		fmt.Printf("Example File:%s\n", exampleFile1D)
	} else {
		var data []byte
		if data, err = os.ReadFile(m1d.ICFile); err != nil {
			return nil, fmt.Errorf("unable to read input file: %w", err)
		}
		if err = ip.Parse(data); err != nil {
			return nil, err
		}
	}
	if m1d.CFL != 0 {
		ip.CFL = m1d.CFL
	}
	if m1d.FinalTime != 0 {
		ip.FinalTime = m1d.FinalTime
	}
	if err = ip.Validate(); err != nil {
		return nil, err
	}
	return
}

func Run1D(m1d *Model1D, ip *InputParameters.InputParameters1D) (c *Burgers1D.Burgers1D, err error) {
	ip.Print()
	if c, err = Burgers1D.NewBurgers1D(ip, m1d.ProcLimit); err != nil {
		return
	}
	fmt.Printf("Elements = %d, order = %d, goroutines = %d, initial subcell elements = %d\n",
		c.El.K, c.El.N, c.ParallelDegree, c.SubcellCount())
	start := time.Now()
	if err = c.Run(); err != nil {
		return
	}
	printSummary(c, time.Since(start))
	return
}

func printSummary(c *Burgers1D.Burgers1D, elapsed time.Duration) {
	var (
		cyan   = color.New(color.FgCyan, color.Bold).SprintFunc()
		green  = color.New(color.FgGreen).SprintFunc()
		yellow = color.New(color.FgYellow).SprintFunc()
		gray   = color.New(color.FgHiBlack).SprintFunc()
	)
	fmt.Printf("\n%s\n", cyan("=== Burgers 1D ==="))
	fmt.Printf("Time = %8.5f in %d steps, %s\n", c.Time, c.Steps, gray(elapsed.Round(time.Millisecond)))
	fmt.Printf("%s\n", gray(utils.GetMemUsage()))
	vmin, vmax := c.MinMax()
	fmt.Printf("Solution range [%8.5f, %8.5f], integral = %12.9f\n", vmin, vmax, c.Integral())
	subcells := fmt.Sprintf("%d of %d", c.SubcellCount(), c.El.K)
	if c.SubcellCount() == 0 {
		fmt.Printf("Subcell elements: %s\n", green(subcells))
	} else {
		fmt.Printf("Subcell elements: %s\n", yellow(subcells))
	}
	if maxErr, ok := c.MaxError(); ok {
		fmt.Printf("Max error vs %s solution = %s\n", c.InitialData.Name(), green(fmt.Sprintf("%10.3e", maxErr)))
	}
}
