package nn

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// weightScale keeps initial pre-activations small so early sigmoid outputs
// stay away from the saturated tails.
const weightScale = 0.1

// Parameters holds the learnable weights and biases for every trainable
// layer of the network.
//
// For a layer specification of length L+1, layer i in [1, L] owns a weight
// matrix of shape (layers[i], layers[i-1]) and a bias column vector of shape
// (layers[i], 1). Shapes are fixed at initialization; only values change
// during training.
type Parameters struct {
	layers  []int
	weights []*mat.Dense // weights[i-1] is W_i: layers[i] x layers[i-1]
	biases  []*mat.Dense // biases[i-1] is b_i:  layers[i] x 1
}

// newParameters initializes weights with zero-mean Gaussian entries scaled
// by weightScale and biases with zeros, drawing from a source seeded for
// reproducibility. The layer specification is assumed validated.
func newParameters(layers []int, seed int64) *Parameters {
	rng := rand.New(rand.NewSource(seed))

	p := &Parameters{
		layers:  layers,
		weights: make([]*mat.Dense, len(layers)-1),
		biases:  make([]*mat.Dense, len(layers)-1),
	}
	for i := 1; i < len(layers); i++ {
		rows, cols := layers[i], layers[i-1]
		data := make([]float64, rows*cols)
		for j := range data {
			data[j] = rng.NormFloat64() * weightScale
		}
		p.weights[i-1] = mat.NewDense(rows, cols, data)
		p.biases[i-1] = mat.NewDense(rows, 1, nil)
	}
	return p
}

// NumLayers returns the number of trainable layers L (the layer
// specification length minus the input entry).
func (p *Parameters) NumLayers() int {
	return len(p.weights)
}

// Weight returns the weight matrix W_i for layer i in [1, L].
func (p *Parameters) Weight(i int) *mat.Dense {
	return p.weights[i-1]
}

// Bias returns the bias column vector b_i for layer i in [1, L].
func (p *Parameters) Bias(i int) *mat.Dense {
	return p.biases[i-1]
}

// Gradient holds the cost gradients for one layer's weight matrix and bias
// vector. Shapes match the corresponding Parameters entries.
type Gradient struct {
	Weight *mat.Dense
	Bias   *mat.Dense
}

// apply performs one vanilla gradient descent step in place:
//
//	W_i -= lr * dW_i
//	b_i -= lr * db_i
//
// No clipping, no regularization, no momentum. grads is indexed so grads[i-1]
// belongs to layer i, mirroring the weight and bias slices.
func (p *Parameters) apply(grads []Gradient, lr float64) {
	for i := range p.weights {
		var wStep, bStep mat.Dense
		wStep.Scale(lr, grads[i].Weight)
		p.weights[i].Sub(p.weights[i], &wStep)

		bStep.Scale(lr, grads[i].Bias)
		p.biases[i].Sub(p.biases[i], &bStep)
	}
}
