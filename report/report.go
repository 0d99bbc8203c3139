// Package report is the public facade for training-progress sinks and the
// cost-history chart renderer.
package report

import (
	"log"

	"github.com/catnet-ml/catnet/internal/report"
)

// Logger emits training progress through a standard logger.
type Logger = report.Logger

// Recorder captures every cost value emitted to it.
type Recorder = report.Recorder

// NewLogger returns a Logger writing to l, or to the default logger when l
// is nil.
func NewLogger(l *log.Logger) *Logger {
	return report.NewLogger(l)
}

// SaveCostChart renders the per-iteration cost history as a line chart
// image at path.
func SaveCostChart(history []float64, path string) error {
	return report.SaveCostChart(history, path)
}
