package report

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := NewLogger(log.New(&buf, "", 0))

	r.ReportCost(0, 0.693147)
	r.ReportCost(50, 0.512)
	r.FinalCost(0.1234567)

	out := buf.String()
	assert.Contains(t, out, "iteration=0 cost=0.693147")
	assert.Contains(t, out, "iteration=50 cost=0.512000")
	assert.Contains(t, out, "final cost=0.123457")
}

func TestRecorder(t *testing.T) {
	var r Recorder

	r.ReportCost(0, 1.0)
	r.ReportCost(50, 0.5)
	assert.False(t, r.Finished)

	r.FinalCost(0.25)

	assert.Equal(t, []int{0, 50}, r.Iterations)
	assert.Equal(t, []float64{1.0, 0.5}, r.Costs)
	assert.Equal(t, 0.25, r.Final)
	assert.True(t, r.Finished)
}

func TestSaveCostChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cost.png")

	history := []float64{0.9, 0.7, 0.55, 0.44, 0.36, 0.3}
	require.NoError(t, SaveCostChart(history, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSaveCostChart_EmptyHistory(t *testing.T) {
	err := SaveCostChart(nil, filepath.Join(t.TempDir(), "cost.png"))
	assert.Error(t, err)
}
