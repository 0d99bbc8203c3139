// Package dataset provides the in-memory labeled image container consumed
// by the network core.
//
// A Dataset holds a 4D 8-bit image tensor (samples x height x width x
// channels), one binary label per sample, and informational class names.
// It prepares training inputs by flattening each image into a feature
// column and rescaling pixel values into [0, 1]; file formats and parsing
// are the caller's concern.
package dataset

import (
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/catnet-ml/catnet/internal/nn"
)

// Dataset is an immutable labeled image collection.
type Dataset struct {
	pixels  []uint8 // samples * shape.Elements(), sample-major
	shape   nn.ImageShape
	labels  []int
	classes []string
}

// New validates and wraps a raw image tensor with its labels.
//
// pixels must hold exactly len(labels) images of the given shape, laid out
// sample-major in row-major height/width/channel order. Labels must be 0 or
// 1. classes is informational only (e.g. {"non-cat", "cat"}) and may be nil.
func New(pixels []uint8, shape nn.ImageShape, labels []int, classes []string) (*Dataset, error) {
	if shape.Height <= 0 || shape.Width <= 0 || shape.Channels <= 0 {
		return nil, fmt.Errorf("dataset: image shape %s has non-positive dimensions", shape)
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("dataset: no samples")
	}
	if want := len(labels) * shape.Elements(); len(pixels) != want {
		return nil, fmt.Errorf("dataset: pixel tensor holds %d bytes, %d samples of shape %s need %d",
			len(pixels), len(labels), shape, want)
	}
	for i, l := range labels {
		if l != 0 && l != 1 {
			return nil, fmt.Errorf("dataset: label %d at sample %d is not binary", l, i)
		}
	}
	return &Dataset{pixels: pixels, shape: shape, labels: labels, classes: classes}, nil
}

// NumSamples returns the number of labeled images.
func (d *Dataset) NumSamples() int {
	return len(d.labels)
}

// FeatureCount returns the flattened per-sample feature count.
func (d *Dataset) FeatureCount() int {
	return d.shape.Elements()
}

// Shape returns the per-image dimensions.
func (d *Dataset) Shape() nn.ImageShape {
	return d.shape
}

// Classes returns the class names, which the core uses only for display.
func (d *Dataset) Classes() []string {
	return d.classes
}

// Image returns the raw pixels of sample i.
func (d *Dataset) Image(i int) []uint8 {
	n := d.shape.Elements()
	return d.pixels[i*n : (i+1)*n]
}

// Label returns the binary label of sample i.
func (d *Dataset) Label(i int) int {
	return d.labels[i]
}

// Features flattens every image into a column and rescales 8-bit pixel
// values by 1/255, producing the feature matrix (features x samples) the
// training loop consumes.
func (d *Dataset) Features() *mat.Dense {
	n := d.FeatureCount()
	m := d.NumSamples()

	out := mat.NewDense(n, m, nil)
	for j := 0; j < m; j++ {
		img := d.Image(j)
		for i, px := range img {
			out.Set(i, j, float64(px)/255)
		}
	}
	return out
}

// Labels returns the label row vector (1 x samples) with values in {0, 1}.
func (d *Dataset) Labels() *mat.Dense {
	m := d.NumSamples()
	out := mat.NewDense(1, m, nil)
	for j, l := range d.labels {
		out.Set(0, j, float64(l))
	}
	return out
}

// Describe writes a human-readable summary of the dataset: tensor shapes
// before and after flattening and the memory footprint of the prepared
// training inputs.
func (d *Dataset) Describe(w io.Writer) {
	n := d.FeatureCount()
	m := d.NumSamples()

	fmt.Fprintln(w, "------------ DATASET INFO ---------------")
	fmt.Fprintf(w, "Input shape (pre-flatten):  %d x %s\n", m, d.shape)
	fmt.Fprintf(w, "Input shape (post-flatten): %d x %d\n", n, m)
	fmt.Fprintf(w, "Label shape:                1 x %d\n", m)
	fmt.Fprintf(w, "Feature matrix memory:      %.1f kB\n", float64(n*m*8)/1000)
	fmt.Fprintf(w, "Label vector memory:        %.1f kB\n", float64(m*8)/1000)
	if len(d.classes) > 0 {
		fmt.Fprintf(w, "Classes:                    %s\n", strings.Join(d.classes, ", "))
	}
	fmt.Fprintln(w, "-----------------------------------------")
}
