package nn

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	// costEpsilon is added inside the cost logarithms so log(0) cannot occur.
	costEpsilon = 1e-5

	// growthEpsilon guards the early-stopping denominator against division
	// by zero. Note it does not guard against a near-zero or sign-crossing
	// denominator; the formula is kept as-is because downstream behavior
	// depends on it.
	growthEpsilon = 1e-5

	// convergenceThreshold stops training once the latest cost decrease is
	// less than a quarter of the previous one.
	convergenceThreshold = 0.25
)

// errStaleCache is returned by Backward when no forward pass has populated
// the activation cache in the current iteration.
var errStaleCache = errors.New("nn: Backward requires a completed forward pass over the same inputs")

// State is the terminal state of a training run.
type State int

const (
	// Running means the training loop is still iterating. It never appears
	// in a Result.
	Running State = iota
	// Converged means the early-stopping rule fired: the cost was
	// decreasing much more slowly than before.
	Converged
	// Exhausted means the iteration budget was spent without triggering
	// the early-stopping rule.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// CostSink receives per-iteration cost values from the training loop.
//
// ReportCost is called at the configured cadence with the zero-based
// iteration index; FinalCost is called exactly once when training stops.
type CostSink interface {
	ReportCost(iteration int, cost float64)
	FinalCost(cost float64)
}

// Result summarizes a completed training run.
type Result struct {
	State      State
	Iterations int       // iterations actually executed
	FinalCost  float64   // cost of the last completed iteration
	GrowthRate float64   // last computed cost growth rate, NaN if fewer than 3 costs
	History    []float64 // copy of the cost history
}

// layerRecord caches one layer's outputs during a forward pass.
//
// The record for the input layer holds the features as its activation and
// has no pre-activation. Records are rebuilt by every forward pass and are
// only valid until the matching backward pass consumes them.
type layerRecord struct {
	a *mat.Dense // post-activation output
	z *mat.Dense // pre-activation, nil for the input record
}

// Model is a feed-forward binary classifier trained with full-batch
// gradient descent.
//
// A Model exclusively owns its parameters and activation cache; it is not
// safe for concurrent use.
type Model struct {
	cfg        Config
	params     *Parameters
	cache      []layerRecord
	history    []float64
	growthRate float64
}

// New builds a Model from a validated configuration and initializes its
// parameters: Gaussian weights scaled by 0.1 from the configured seed,
// zero biases.
func New(cfg Config) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// Private copy so later caller mutations cannot change the layer spec.
	cfg.Layers = append([]int(nil), cfg.Layers...)
	if cfg.ReportEvery == 0 {
		cfg.ReportEvery = defaultReportEvery
	}
	return &Model{
		cfg:        cfg,
		params:     newParameters(cfg.Layers, cfg.Seed),
		growthRate: math.NaN(),
	}, nil
}

// Parameters exposes the model's parameter store.
func (m *Model) Parameters() *Parameters {
	return m.params
}

// CostHistory returns a copy of the per-iteration costs recorded so far.
// The history spans every Train call made on this model.
func (m *Model) CostHistory() []float64 {
	return append([]float64(nil), m.history...)
}

// GrowthRate returns the most recently computed cost growth rate, or NaN
// when fewer than three costs have been recorded.
func (m *Model) GrowthRate() float64 {
	return m.growthRate
}

// Forward runs one forward pass over prepared feature columns and returns
// the predicted probabilities with shape 1 x samples.
//
// Hidden layers apply ReLU; the output layer applies a numerically stable
// sigmoid, so every prediction lies in the open interval (0, 1). The pass
// rebuilds the activation cache consumed by Backward.
func (m *Model) Forward(x *mat.Dense) (*mat.Dense, error) {
	if err := m.checkFeatures("Forward", x); err != nil {
		return nil, err
	}
	return m.forward(x), nil
}

func (m *Model) forward(x *mat.Dense) *mat.Dense {
	m.resetCache(x)

	a := x
	L := m.params.NumLayers()
	for i := 1; i <= L; i++ {
		var z mat.Dense
		z.Mul(m.params.Weight(i), a)

		// Broadcast the bias column across all samples.
		b := m.params.Bias(i)
		z.Apply(func(r, _ int, v float64) float64 { return v + b.At(r, 0) }, &z)

		var act mat.Dense
		if i < L {
			act.Apply(func(_, _ int, v float64) float64 { return relu(v) }, &z)
		} else {
			act.Apply(func(_, _ int, v float64) float64 { return sigmoid(v) }, &z)
		}

		m.cache[i] = layerRecord{a: &act, z: &z}
		a = &act
	}
	return a
}

// Cost computes the binary cross-entropy of predictions against labels,
// averaged over samples:
//
//	-(1/m) Σ [ y·log(p+ε) + (1-y)·log(1-p+ε) ]
//
// The ε term keeps the logarithms finite for saturated predictions.
func (m *Model) Cost(y, predictions *mat.Dense) float64 {
	_, samples := y.Dims()

	var total float64
	for j := 0; j < samples; j++ {
		p := predictions.At(0, j)
		t := y.At(0, j)
		total += t*math.Log(p+costEpsilon) + (1-t)*math.Log(1-p+costEpsilon)
	}
	return -total / float64(samples)
}

// Backward computes the cost gradients for every layer from the activation
// cache populated by the immediately preceding Forward over the same x.
//
// The output layer uses the closed-form simplification dZ_L = A_L - y of the
// cross-entropy-with-sigmoid derivative. Hidden layers propagate
// dZ_i = (W_{i+1}ᵀ · dZ_{i+1}) ⊙ 1[Z_i > 0].
//
// The returned slice is indexed so grads[i-1] holds layer i's gradients.
func (m *Model) Backward(x, y *mat.Dense) ([]Gradient, error) {
	if m.cache == nil {
		return nil, errStaleCache
	}
	return m.backward(x, y), nil
}

func (m *Model) backward(x, y *mat.Dense) []Gradient {
	L := m.params.NumLayers()
	_, samples := y.Dims()
	invM := 1 / float64(samples)

	grads := make([]Gradient, L)

	dz := &mat.Dense{}
	dz.Sub(m.cache[L].a, y)

	for i := L; i >= 1; i-- {
		aPrev := m.cache[i-1].a
		if i == 1 {
			aPrev = x
		}

		var dw mat.Dense
		dw.Mul(dz, aPrev.T())
		dw.Scale(invM, &dw)

		grads[i-1] = Gradient{Weight: &dw, Bias: scaledRowSums(dz, invM)}

		if i > 1 {
			z := m.cache[i-1].z
			da := &mat.Dense{}
			da.Mul(m.params.Weight(i).T(), dz)
			da.Apply(func(r, c int, v float64) float64 { return v * reluPrime(z.At(r, c)) }, da)
			dz = da
		}
	}
	return grads
}

// Train runs the full-batch training loop: forward, cost, backward,
// parameter update, repeated until the early-stopping rule fires
// (Converged) or the iteration budget is spent (Exhausted).
//
// Once at least three costs are recorded the loop computes
//
//	growth = (J[n-1] - J[n-2]) / (J[n-2] - J[n-3] + ε)
//
// and stops when growth < 0.25, i.e. when the descent has decelerated
// sharply. Costs are emitted to sink at the configured cadence plus once
// at termination; sink may be nil. The activation cache is cleared before
// returning. Training aborts with a NumericError as soon as a non-finite
// cost or gradient appears.
func (m *Model) Train(x, y *mat.Dense, sink CostSink) (*Result, error) {
	if err := m.checkFeatures("Train", x); err != nil {
		return nil, err
	}
	if err := checkLabels("Train", x, y); err != nil {
		return nil, err
	}

	state := Running
	var cost float64
	iterations := 0

	for i := 0; i < m.cfg.NumIterations; i++ {
		predictions := m.forward(x)

		cost = m.Cost(y, predictions)
		if !isFinite(cost) {
			m.clearCache()
			return nil, &NumericError{Iteration: i, What: "cost"}
		}

		grads := m.backward(x, y)
		if !gradsFinite(grads) {
			m.clearCache()
			return nil, &NumericError{Iteration: i, What: "gradient"}
		}

		m.params.apply(grads, m.cfg.LearningRate)
		m.history = append(m.history, cost)
		iterations = i + 1

		if growth, stop := converged(m.history); !math.IsNaN(growth) {
			m.growthRate = growth
			if stop {
				state = Converged
				break
			}
		}

		if sink != nil && i%m.cfg.ReportEvery == 0 {
			sink.ReportCost(i, cost)
		}
	}

	if state == Running {
		state = Exhausted
	}
	if sink != nil {
		sink.FinalCost(cost)
	}

	history := append([]float64(nil), m.history...)
	m.clearCache()

	return &Result{
		State:      state,
		Iterations: iterations,
		FinalCost:  cost,
		GrowthRate: m.growthRate,
		History:    history,
	}, nil
}

// Predict runs one forward pass over prepared feature columns and returns
// the predicted probabilities (1 x samples). No thresholding into class
// labels is performed. The activation cache is not retained.
func (m *Model) Predict(x *mat.Dense) (*mat.Dense, error) {
	if err := m.checkFeatures("Predict", x); err != nil {
		return nil, err
	}
	predictions := m.forward(x)
	m.clearCache()
	return predictions, nil
}

// PredictImage flattens a raw 8-bit image into a single feature column,
// rescales it by 1/255, and returns the predicted probability for that
// image.
//
// Config.ImageShape must be set and len(pixels) must equal its flattened
// element count; both are checked rather than assumed.
func (m *Model) PredictImage(pixels []uint8) (float64, error) {
	shape := m.cfg.ImageShape
	if shape == (ImageShape{}) {
		return 0, &ConfigError{Field: "ImageShape", Reason: "must be set to use PredictImage"}
	}
	if len(pixels) != shape.Elements() {
		return 0, &ShapeError{
			Op:   "PredictImage",
			Want: fmt.Sprintf("%d pixels (%s)", shape.Elements(), shape),
			Got:  fmt.Sprintf("%d pixels", len(pixels)),
		}
	}

	col := mat.NewDense(len(pixels), 1, nil)
	for i, px := range pixels {
		col.Set(i, 0, float64(px)/255)
	}

	p := m.forward(col).At(0, 0)
	m.clearCache()
	return p, nil
}

// converged evaluates the early-stopping rule against a cost history.
//
// Once at least three costs exist it returns the growth rate
// (J[n-1]-J[n-2])/(J[n-2]-J[n-3]+ε) and whether it fell below the
// convergence threshold; before that it returns NaN and false. The ε only
// prevents division by exactly zero: a near-zero or sign-crossing
// denominator can still make the rule misfire on non-monotonic histories,
// and that behavior is kept.
func converged(history []float64) (growth float64, stop bool) {
	n := len(history)
	if n < 3 {
		return math.NaN(), false
	}
	growth = (history[n-1] - history[n-2]) / (history[n-2] - history[n-3] + growthEpsilon)
	return growth, growth < convergenceThreshold
}

// resetCache rebuilds the activation cache for a new forward pass. The
// cache is a fixed-size slice with one record per layer including the
// input; entries are overwritten, not appended.
func (m *Model) resetCache(x *mat.Dense) {
	if m.cache == nil {
		m.cache = make([]layerRecord, len(m.cfg.Layers))
	} else {
		for i := range m.cache {
			m.cache[i] = layerRecord{}
		}
	}
	m.cache[0] = layerRecord{a: x}
}

// clearCache drops the activation cache. It is a training-scratch artifact
// and must not outlive the loop that produced it.
func (m *Model) clearCache() {
	m.cache = nil
}

func (m *Model) checkFeatures(op string, x *mat.Dense) error {
	rows, cols := x.Dims()
	if rows != m.cfg.Layers[0] {
		return &ShapeError{
			Op:   op,
			Want: fmt.Sprintf("%d feature rows", m.cfg.Layers[0]),
			Got:  fmt.Sprintf("%d feature rows", rows),
		}
	}
	if cols < 1 {
		return &ShapeError{Op: op, Want: "at least 1 sample column", Got: "0"}
	}
	return nil
}

func checkLabels(op string, x, y *mat.Dense) error {
	yRows, yCols := y.Dims()
	_, xCols := x.Dims()
	if yRows != 1 {
		return &ShapeError{
			Op:   op,
			Want: "label vector with 1 row",
			Got:  fmt.Sprintf("%d rows", yRows),
		}
	}
	if yCols != xCols {
		return &ShapeError{
			Op:   op,
			Want: fmt.Sprintf("%d label columns", xCols),
			Got:  fmt.Sprintf("%d label columns", yCols),
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func gradsFinite(grads []Gradient) bool {
	for _, g := range grads {
		for _, v := range g.Weight.RawMatrix().Data {
			if !isFinite(v) {
				return false
			}
		}
		for _, v := range g.Bias.RawMatrix().Data {
			if !isFinite(v) {
				return false
			}
		}
	}
	return true
}

// scaledRowSums returns scale * rowsum(dz) as a column vector, the bias
// gradient shape.
func scaledRowSums(dz *mat.Dense, scale float64) *mat.Dense {
	rows, cols := dz.Dims()
	out := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		var sum float64
		for j := 0; j < cols; j++ {
			sum += dz.At(i, j)
		}
		out.Set(i, 0, sum*scale)
	}
	return out
}
