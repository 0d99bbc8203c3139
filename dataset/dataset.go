// Package dataset is the public facade for the in-memory labeled image
// container: a 4D 8-bit image tensor, binary labels, and class names,
// flattened and normalized into the matrices the network core trains on.
package dataset

import (
	"github.com/catnet-ml/catnet/internal/dataset"
	"github.com/catnet-ml/catnet/internal/nn"
)

// Dataset is an immutable labeled image collection.
type Dataset = dataset.Dataset

// New validates and wraps a raw image tensor with its labels.
func New(pixels []uint8, shape nn.ImageShape, labels []int, classes []string) (*Dataset, error) {
	return dataset.New(pixels, shape, labels, classes)
}
