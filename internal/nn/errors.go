package nn

import "fmt"

// ConfigError reports an invalid training configuration.
//
// It is returned by Config.Validate and by New for layer specifications
// shorter than two entries, non-positive layer sizes, a final layer size
// other than one, or non-positive learning rate / iteration budget.
type ConfigError struct {
	Field  string // configuration field at fault
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("nn: invalid config: %s: %s", e.Field, e.Reason)
}

// ShapeError reports a dimension mismatch between supplied data and the
// model's layer specification.
//
// Shape problems are detected eagerly at training or inference entry points,
// never mid-loop.
type ShapeError struct {
	Op   string // operation that rejected the input, e.g. "Train"
	Want string
	Got  string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("nn: %s: shape mismatch: want %s, got %s", e.Op, e.Want, e.Got)
}

// NumericError reports a non-finite value (NaN or Inf) observed in the cost
// or in a gradient during training. Training aborts immediately when one is
// detected rather than silently continuing with poisoned parameters.
type NumericError struct {
	Iteration int
	What      string // "cost" or "gradient"
}

func (e *NumericError) Error() string {
	return fmt.Sprintf("nn: non-finite %s at iteration %d", e.What, e.Iteration)
}
