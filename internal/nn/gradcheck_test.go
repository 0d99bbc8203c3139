package nn

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// gradCheckTolerance is the maximum relative error between analytic and
// finite-difference gradients.
const gradCheckTolerance = 1e-4

// relError returns |a-b| / max(|a|, |b|, floor). The floor keeps the ratio
// meaningful for near-zero gradients.
func relError(a, b float64) float64 {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	den := 1e-8
	if aa := abs(a); aa > den {
		den = aa
	}
	if bb := abs(b); bb > den {
		den = bb
	}
	return diff / den
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// numericCost evaluates the cost at the current parameters.
func numericCost(t *testing.T, m *Model, x, y *mat.Dense) float64 {
	t.Helper()
	preds, err := m.Forward(x)
	require.NoError(t, err)
	return m.Cost(y, preds)
}

// checkEntry compares the analytic gradient of one parameter entry against
// a central finite difference of the cost.
func checkEntry(t *testing.T, m *Model, x, y *mat.Dense, param *mat.Dense, r, c int, analytic float64, label string) {
	t.Helper()
	const h = 1e-6

	orig := param.At(r, c)
	param.Set(r, c, orig+h)
	costPlus := numericCost(t, m, x, y)
	param.Set(r, c, orig-h)
	costMinus := numericCost(t, m, x, y)
	param.Set(r, c, orig)

	numeric := (costPlus - costMinus) / (2 * h)
	if e := relError(analytic, numeric); e > gradCheckTolerance {
		t.Errorf("%s[%d,%d]: analytic %.10g vs numeric %.10g (rel err %.3g)",
			label, r, c, analytic, numeric, e)
	}
}

// TestGradientCheck verifies Backward against finite differences on a small
// network. Weights and inputs are fixed positive values so every hidden
// pre-activation sits well away from the ReLU kink, where the finite
// difference would be meaningless.
func TestGradientCheck(t *testing.T) {
	m, err := New(Config{
		Layers:        []int{2, 3, 1},
		LearningRate:  0.1,
		NumIterations: 1,
		Seed:          1,
	})
	require.NoError(t, err)

	p := m.Parameters()

	// Hand-picked parameters: all positive, so positive inputs keep every
	// hidden unit active with a comfortable margin.
	w1 := p.Weight(1)
	w1.Set(0, 0, 0.12)
	w1.Set(0, 1, 0.31)
	w1.Set(1, 0, 0.22)
	w1.Set(1, 1, 0.17)
	w1.Set(2, 0, 0.29)
	w1.Set(2, 1, 0.08)
	b1 := p.Bias(1)
	b1.Set(0, 0, 0.05)
	b1.Set(1, 0, 0.07)
	b1.Set(2, 0, 0.04)

	w2 := p.Weight(2)
	w2.Set(0, 0, 0.25)
	w2.Set(0, 1, -0.14)
	w2.Set(0, 2, 0.19)
	b2 := p.Bias(2)
	b2.Set(0, 0, 0.02)

	x := mat.NewDense(2, 3, []float64{
		0.35, 0.80, 0.55,
		0.60, 0.25, 0.90,
	})
	y := mat.NewDense(1, 3, []float64{1, 0, 1})

	_, err = m.Forward(x)
	require.NoError(t, err)
	grads, err := m.Backward(x, y)
	require.NoError(t, err)
	require.Len(t, grads, 2)

	for layer := 1; layer <= p.NumLayers(); layer++ {
		w := p.Weight(layer)
		gw := grads[layer-1].Weight
		rows, cols := w.Dims()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				checkEntry(t, m, x, y, w, r, c, gw.At(r, c), "dW")
			}
		}

		b := p.Bias(layer)
		gb := grads[layer-1].Bias
		rows, _ = b.Dims()
		for r := 0; r < rows; r++ {
			checkEntry(t, m, x, y, b, r, 0, gb.At(r, 0), "db")
		}
	}
}
