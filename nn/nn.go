// Package nn is the public facade for the network core: a feed-forward
// binary image classifier trained with full-batch gradient descent and
// manually derived backpropagation.
//
// Example:
//
//	model, err := nn.New(nn.Config{
//	    Layers:        []int{12288, 20, 7, 5, 1},
//	    LearningRate:  0.0005,
//	    NumIterations: 2000,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := model.Train(features, labels, report.NewLogger(nil))
package nn

import "github.com/catnet-ml/catnet/internal/nn"

// Config captures the knobs consumed by the network core.
type Config = nn.Config

// ImageShape describes the dimensions of a raw 8-bit image accepted by
// Model.PredictImage.
type ImageShape = nn.ImageShape

// Model is a feed-forward binary classifier.
type Model = nn.Model

// Parameters holds the per-layer weight matrices and bias vectors.
type Parameters = nn.Parameters

// Gradient holds one layer's weight and bias gradients.
type Gradient = nn.Gradient

// CostSink receives per-iteration cost values from the training loop.
type CostSink = nn.CostSink

// Result summarizes a completed training run.
type Result = nn.Result

// State is the terminal state of a training run.
type State = nn.State

// Training states. Running never appears in a Result.
const (
	Running   = nn.Running
	Converged = nn.Converged
	Exhausted = nn.Exhausted
)

// Error types surfaced by configuration, shape, and numeric checks.
type (
	ConfigError  = nn.ConfigError
	ShapeError   = nn.ShapeError
	NumericError = nn.NumericError
)

// New builds a Model from a validated configuration.
func New(cfg Config) (*Model, error) {
	return nn.New(cfg)
}
