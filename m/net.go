package m

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	DefaultLearningRate = 0.1
	DefaultInitRange    = 1.0
)

type Config struct {
	// Topology holds the neuron count of every layer, input first.
	Topology []int
	// LearningRate scales every gradient step. Zero selects
	// DefaultLearningRate.
	LearningRate float64
	// InitRange bounds the uniform distribution parameters are drawn from,
	// [-InitRange, InitRange]. Zero selects DefaultInitRange.
	InitRange float64
	// Src seeds parameter initialization. Nil uses a time-seeded source.
	Src rand.Source
}

// NeuralNetwork is a fully connected sigmoid network trained one example at
// a time. It is not safe for concurrent use.
type NeuralNetwork struct {
	topology     []int
	learningRate float64
	weights      []*mat.Dense
	biases       []*mat.Dense

	// generation counts parameter mutations; a Pass is only valid for the
	// generation it was computed against.
	generation uint64
	last       *Pass
}

// Pass holds the activation snapshots of one FeedForward call. Layer i for
// i < Len()-1 is the input to transition i; the last layer is the network
// output.
type Pass struct {
	net        *NeuralNetwork
	generation uint64
	layers     []*mat.Dense
}

func NewNeuralNetwork(c Config) (*NeuralNetwork, error) {
	shapes, err := LayerShapes(c.Topology)
	if err != nil {
		return nil, err
	}

	lr := c.LearningRate
	if lr == 0 {
		lr = DefaultLearningRate
	}
	if lr < 0 || math.IsNaN(lr) || math.IsInf(lr, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLearningRate, c.LearningRate)
	}

	initRange := c.InitRange
	if initRange == 0 {
		initRange = DefaultInitRange
	}
	if initRange < 0 || math.IsNaN(initRange) || math.IsInf(initRange, 0) {
		return nil, fmt.Errorf("invalid init range: %v", c.InitRange)
	}

	src := c.Src
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	dist := distuv.Uniform{Min: -initRange, Max: initRange, Src: src}

	net := &NeuralNetwork{
		topology:     append([]int(nil), c.Topology...),
		learningRate: lr,
		weights:      make([]*mat.Dense, len(shapes)),
		biases:       make([]*mat.Dense, len(shapes)),
	}
	for i, s := range shapes {
		net.weights[i] = randomMatrix(s.Weight, dist)
		net.biases[i] = randomMatrix(s.Bias, dist)
	}
	return net, nil
}

// FeedForward propagates input through every layer and returns the
// resulting pass. On a shape mismatch nothing is changed.
func (net *NeuralNetwork) FeedForward(input []float64) (*Pass, error) {
	if len(input) != net.topology[0] {
		return nil, &ShapeMismatchError{
			Kind: ErrForwardInputShape,
			Want: Shape{Rows: net.topology[0], Cols: 1},
			Got:  Shape{Rows: len(input), Cols: 1},
		}
	}

	layers := make([]*mat.Dense, len(net.topology))
	vals := columnVector(input)
	for i, w := range net.weights {
		layers[i] = vals
		vals = ApplySigmoid(add(dot(w, vals), net.biases[i]))
	}
	layers[len(layers)-1] = vals

	p := &Pass{net: net, generation: net.generation, layers: layers}
	net.last = p
	return p, nil
}

// BackPropagate applies one gradient-descent step that moves the output of
// p towards target. p must come from this network's FeedForward and the
// parameters must not have changed since.
func (net *NeuralNetwork) BackPropagate(p *Pass, target []float64) error {
	if p == nil || p.net != net {
		return ErrForeignPass
	}
	if p.generation != net.generation {
		return ErrStalePass
	}
	out := net.topology[len(net.topology)-1]
	if len(target) != out {
		return &ShapeMismatchError{
			Kind: ErrBackwardTargetShape,
			Want: Shape{Rows: out, Cols: 1},
			Got:  Shape{Rows: len(target), Cols: 1},
		}
	}

	errs := subtract(columnVector(target), p.layers[len(p.layers)-1])
	for i := len(net.weights) - 1; i >= 0; i-- {
		// must use the weights as they were before this step's update
		prevErr := dot(net.weights[i].T(), errs)

		gradients := scale(net.learningRate, multiply(errs, ApplyDSigmoid(p.layers[i+1])))
		net.weights[i].Add(net.weights[i], dot(gradients, p.layers[i].T()))
		net.biases[i].Add(net.biases[i], gradients)

		errs = prevErr
	}
	net.generation++
	return nil
}

// Prediction returns the output of the most recent successful FeedForward,
// or nil if there has been none.
func (net *NeuralNetwork) Prediction() []float64 {
	if net.last == nil {
		return nil
	}
	return net.last.Prediction()
}

func (net *NeuralNetwork) Topology() []int {
	return append([]int(nil), net.topology...)
}

func (net *NeuralNetwork) LearningRate() float64 {
	return net.learningRate
}

// Weights returns copies of the weight matrices, one per transition.
func (net *NeuralNetwork) Weights() []*mat.Dense {
	return copyAll(net.weights)
}

// Biases returns copies of the bias vectors, one per transition.
func (net *NeuralNetwork) Biases() []*mat.Dense {
	return copyAll(net.biases)
}

// SetWeights replaces the weight matrix of transition i with a copy of w.
// Outstanding passes become stale.
func (net *NeuralNetwork) SetWeights(i int, w mat.Matrix) error {
	return net.setParam(net.weights, i, w)
}

// SetBias replaces the bias vector of transition i with a copy of b.
// Outstanding passes become stale.
func (net *NeuralNetwork) SetBias(i int, b mat.Matrix) error {
	return net.setParam(net.biases, i, b)
}

func (net *NeuralNetwork) setParam(params []*mat.Dense, i int, v mat.Matrix) error {
	if i < 0 || i >= len(params) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrLayerIndex, i, len(params))
	}
	if want, got := shapeOf(params[i]), shapeOf(v); want != got {
		return &ShapeMismatchError{Kind: ErrParameterShape, Want: want, Got: got}
	}
	params[i] = mat.DenseCopyOf(v)
	net.generation++
	return nil
}

// Clone returns an independent network with the same topology, learning
// rate and parameters. The clone has no forward pass.
func (net *NeuralNetwork) Clone() *NeuralNetwork {
	return &NeuralNetwork{
		topology:     append([]int(nil), net.topology...),
		learningRate: net.learningRate,
		weights:      copyAll(net.weights),
		biases:       copyAll(net.biases),
	}
}

func copyAll(ms []*mat.Dense) []*mat.Dense {
	out := make([]*mat.Dense, len(ms))
	for i, m := range ms {
		out[i] = mat.DenseCopyOf(m)
	}
	return out
}

// Prediction returns a copy of the output layer values.
func (p *Pass) Prediction() []float64 {
	return column(p.layers[len(p.layers)-1])
}

// Len returns the number of snapshots, which equals the number of layers.
func (p *Pass) Len() int {
	return len(p.layers)
}

// Activation returns a copy of snapshot i, shaped (topology[i], 1).
func (p *Pass) Activation(i int) *mat.Dense {
	return mat.DenseCopyOf(p.layers[i])
}
