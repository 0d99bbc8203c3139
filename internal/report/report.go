// Package report provides sinks for training progress and a renderer for
// the cost history.
//
// The training loop treats its sink as an opaque receiver of cost values;
// this package supplies the standard ones: a log-backed progress printer
// and an in-memory recorder. SaveCostChart turns a finished cost history
// into a line chart image.
package report

import "log"

// Logger emits training progress through a standard logger as
// key=value lines.
type Logger struct {
	l *log.Logger
}

// NewLogger returns a Logger writing to l, or to the default logger when l
// is nil.
func NewLogger(l *log.Logger) *Logger {
	if l == nil {
		l = log.Default()
	}
	return &Logger{l: l}
}

// ReportCost logs one periodic cost sample.
func (r *Logger) ReportCost(iteration int, cost float64) {
	r.l.Printf("iteration=%d cost=%.6f", iteration, cost)
}

// FinalCost logs the cost of the last completed iteration.
func (r *Logger) FinalCost(cost float64) {
	r.l.Printf("final cost=%.6f", cost)
}

// Recorder captures every value emitted to it, for tests and for callers
// that render the history afterwards.
type Recorder struct {
	Costs      []float64 // one entry per ReportCost call, in order
	Iterations []int     // iteration index of each entry
	Final      float64
	Finished   bool
}

// ReportCost records one periodic cost sample.
func (r *Recorder) ReportCost(iteration int, cost float64) {
	r.Iterations = append(r.Iterations, iteration)
	r.Costs = append(r.Costs, cost)
}

// FinalCost records the terminal cost.
func (r *Recorder) FinalCost(cost float64) {
	r.Final = cost
	r.Finished = true
}
