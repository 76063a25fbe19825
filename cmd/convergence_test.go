package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gosubcell/InputParameters"
	"github.com/notargets/gosubcell/utils"
)

func TestRunConvergence(t *testing.T) {
	ip := InputParameters.NewInputParameters1D()
	ip.FinalTime = 0.2
	ip.Subcell.AlwaysUseSubcells = true
	rows, err := RunConvergence(ip, []int{8, 16}, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 16, rows[1].Elements)
	assert.Less(t, rows[1].RMS, rows[0].RMS)
	orders := utils.ConvergenceOrders([]int{8, 16}, []float64{rows[0].RMS, rows[1].RMS})
	assert.Greater(t, orders[1], 1.)
	if testing.Verbose() {
		printConvergence(rows)
	}

	var buf bytes.Buffer
	require.NoError(t, WriteConvergenceCSV(&buf, rows))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "Title,Elements,Order,CFL,RMSError,MaxError", lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "Burgers sine wave,16,3,0.5,"))

	_, err = RunConvergence(ip, []int{8}, 1)
	assert.Error(t, err)
	ip.InitType = "Gaussian"
	_, err = RunConvergence(ip, []int{8, 16}, 1)
	assert.Error(t, err)
}
