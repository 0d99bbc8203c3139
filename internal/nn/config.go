package nn

import "fmt"

// defaultReportEvery is the cadence, in iterations, at which the training
// loop emits cost values to its sink.
const defaultReportEvery = 50

// ImageShape describes the dimensions of a raw 8-bit image accepted by
// Model.PredictImage. The flattened size Height*Width*Channels must equal
// the network's input feature count.
type ImageShape struct {
	Height   int
	Width    int
	Channels int
}

// Elements returns the flattened feature count of the shape.
func (s ImageShape) Elements() int {
	return s.Height * s.Width * s.Channels
}

func (s ImageShape) String() string {
	return fmt.Sprintf("%dx%dx%d", s.Height, s.Width, s.Channels)
}

// Config captures the knobs consumed by the network core.
type Config struct {
	// Layers is the ordered layer specification. Entry 0 is the input
	// feature count, the last entry must be 1 (single binary output unit),
	// and every entry must be positive. Immutable once a Model is built.
	Layers []int

	// LearningRate is the gradient descent step size. Must be positive.
	LearningRate float64

	// NumIterations is the full-batch iteration budget. Must be positive.
	NumIterations int

	// Seed feeds the random source used for weight initialization, so runs
	// are reproducible. The zero value is a valid seed.
	Seed int64

	// ReportEvery is the cadence at which per-iteration costs are emitted
	// to the sink. Defaults to 50 when zero.
	ReportEvery int

	// ImageShape declares the raw image dimensions accepted by
	// PredictImage. Optional: leave zero if PredictImage is not used.
	// When set, Height*Width*Channels must equal Layers[0].
	ImageShape ImageShape
}

// Validate verifies the configuration is runnable.
func (c *Config) Validate() error {
	if len(c.Layers) < 2 {
		return &ConfigError{Field: "Layers", Reason: fmt.Sprintf("need at least 2 entries, got %d", len(c.Layers))}
	}
	for i, n := range c.Layers {
		if n <= 0 {
			return &ConfigError{Field: "Layers", Reason: fmt.Sprintf("entry %d must be positive, got %d", i, n)}
		}
	}
	if last := c.Layers[len(c.Layers)-1]; last != 1 {
		return &ConfigError{Field: "Layers", Reason: fmt.Sprintf("final layer size must be 1, got %d", last)}
	}
	if c.LearningRate <= 0 {
		return &ConfigError{Field: "LearningRate", Reason: fmt.Sprintf("must be positive, got %g", c.LearningRate)}
	}
	if c.NumIterations <= 0 {
		return &ConfigError{Field: "NumIterations", Reason: fmt.Sprintf("must be positive, got %d", c.NumIterations)}
	}
	if c.ReportEvery < 0 {
		return &ConfigError{Field: "ReportEvery", Reason: fmt.Sprintf("must not be negative, got %d", c.ReportEvery)}
	}
	if c.ImageShape != (ImageShape{}) {
		s := c.ImageShape
		if s.Height <= 0 || s.Width <= 0 || s.Channels <= 0 {
			return &ConfigError{Field: "ImageShape", Reason: fmt.Sprintf("dimensions must be positive, got %s", s)}
		}
		if s.Elements() != c.Layers[0] {
			return &ConfigError{Field: "ImageShape", Reason: fmt.Sprintf("%s flattens to %d features, input layer expects %d", s, s.Elements(), c.Layers[0])}
		}
	}
	return nil
}
