// Package nn implements a feed-forward neural network for binary image
// classification, trained with full-batch gradient descent and manually
// derived backpropagation.
//
// This package provides:
//   - Config: validated training configuration (layer sizes, learning rate,
//     iteration budget)
//   - Parameters: per-layer weight matrices and bias vectors
//   - Model: forward propagation, binary cross-entropy cost, backward
//     propagation, the training loop, and inference
//
// The network uses ReLU activations on hidden layers and a numerically
// stable sigmoid on the single output unit. All matrix math is built on
// gonum's mat package.
//
// Example usage:
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
//	result, err := model.Train(features, labels, sink)
package nn
