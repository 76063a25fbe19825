package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/notargets/gosubcell/utils"
)

var (
	csvFile string
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	f, err := os.Open(csvFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	studies, err := readCSV(f)
	if err != nil {
		panic(err)
	}
	keys := make([]string, 0, len(studies))
	for k := range studies {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		cs := studies[key]
		fmt.Printf("Title = %s, Order = %d, CFL = %5.2f\n", cs.title, cs.order, cs.CFL)
		rmsOrder, maxOrder := cs.Orders()
		for i := range cs.elements {
			fmt.Printf("%d, %v, %5.2f, %v, %5.2f\n",
				cs.elements[i], cs.rms[i], rmsOrder[i], cs.max[i], maxOrder[i])
		}
	}
}

type ConvergenceStudy struct {
	title    string
	order    int
	CFL      float64
	elements []int
	rms, max []float64
}

func NewConvergenceStudy(title string, order int, CFL float64) *ConvergenceStudy {
	return &ConvergenceStudy{
		title: title,
		order: order,
		CFL:   CFL,
	}
}

func (cs *ConvergenceStudy) Add(elements int, rms, mx float64) {
	cs.elements = append(cs.elements, elements)
	cs.rms = append(cs.rms, rms)
	cs.max = append(cs.max, mx)
}

// Orders are the observed orders of the RMS and max errors by increasing
// element count
func (cs *ConvergenceStudy) Orders() (rmsOrder, maxOrder []float64) {
	sort.Sort(cs)
	return utils.ConvergenceOrders(cs.elements, cs.rms), utils.ConvergenceOrders(cs.elements, cs.max)
}

func (cs *ConvergenceStudy) Len() int           { return len(cs.elements) }
func (cs *ConvergenceStudy) Less(i, j int) bool { return cs.elements[i] < cs.elements[j] }
func (cs *ConvergenceStudy) Swap(i, j int) {
	cs.elements[i], cs.elements[j] = cs.elements[j], cs.elements[i]
	cs.rms[i], cs.rms[j] = cs.rms[j], cs.rms[i]
	cs.max[i], cs.max[j] = cs.max[j], cs.max[i]
}

// readCSV groups the rows of "gosubcell convergence" output by title and
// polynomial order: Title, Elements, Order, CFL, RMSError, MaxError
func readCSV(r io.Reader) (studies map[string]*ConvergenceStudy, err error) {
	var (
		records [][]string
	)
	studies = make(map[string]*ConvergenceStudy)
	if records, err = csv.NewReader(bufio.NewReader(r)).ReadAll(); err != nil {
		return nil, err
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) != 6 {
			return nil, fmt.Errorf("line %d has %d fields, expected 6", i+1, len(rec))
		}
		var (
			title = rec[0]
			vals  [5]float64
		)
		for j := range vals {
			if vals[j], err = strconv.ParseFloat(rec[j+1], 64); err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
		}
		combTitle := title + rec[2]
		cs, ok := studies[combTitle]
		if !ok {
			cs = NewConvergenceStudy(title, int(vals[1]), vals[2])
			studies[combTitle] = cs
		}
		cs.Add(int(vals[0]), vals[3], vals[4])
	}
	return
}
