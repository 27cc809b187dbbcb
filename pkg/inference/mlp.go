package inference

import (
	"fmt"
	"math"
)

// Layer is one dense layer of a multilayer perceptron. Weights are
// indexed [input][output]; Biases has one entry per output.
type Layer struct {
	Weights [][]float64
	Biases  []float64
}

// MLP is a feed-forward member with ReLU hidden activations and a
// softmax output layer. The output width of the final layer defines the
// number of classes, which allows label spaces beyond binary.
type MLP struct {
	layers []Layer
}

// NewMLP builds a perceptron member from fitted layer parameters.
func NewMLP(layers []Layer) (*MLP, error) {
	if len(layers) == 0 {
		return nil, &ConfigurationError{Message: "mlp has no layers"}
	}
	for li, layer := range layers {
		if len(layer.Weights) == 0 || len(layer.Biases) == 0 {
			return nil, &ConfigurationError{Message: fmt.Sprintf("mlp layer %d is empty", li)}
		}
		for _, row := range layer.Weights {
			if len(row) != len(layer.Biases) {
				return nil, &ConfigurationError{
					Message: fmt.Sprintf("mlp layer %d weight rows do not match its %d outputs", li, len(layer.Biases)),
				}
			}
		}
	}
	copied := make([]Layer, len(layers))
	copy(copied, layers)
	return &MLP{layers: copied}, nil
}

func (m *MLP) Name() string {
	return "mlp"
}

func (m *MLP) NumClasses() int {
	return len(m.layers[len(m.layers)-1].Biases)
}

func (m *MLP) Probabilities(features []float64) []float64 {
	activation := features
	for li, layer := range m.layers {
		out := make([]float64, len(layer.Biases))
		for j := range out {
			z := layer.Biases[j]
			for i, v := range activation {
				z += layer.Weights[i][j] * v
			}
			out[j] = z
		}

		if li < len(m.layers)-1 {
			for j, z := range out {
				out[j] = math.Max(0, z) // ReLU
			}
		} else {
			out = softmax(out)
		}
		activation = out
	}
	return activation
}

// softmax normalizes logits into a distribution, shifting by the maximum
// for numerical stability.
func softmax(logits []float64) []float64 {
	maxLogit := logits[0]
	for _, v := range logits[1:] {
		if v > maxLogit {
			maxLogit = v
		}
	}

	out := make([]float64, len(logits))
	var sum float64
	for i, v := range logits {
		out[i] = math.Exp(v - maxLogit)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}
