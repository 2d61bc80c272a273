package m

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// XORLines returns the four XOR training pairs.
func XORLines() Lines {
	return Lines{
		{Inputs: []float64{0, 0}, Targets: []float64{0}},
		{Inputs: []float64{1, 0}, Targets: []float64{1}},
		{Inputs: []float64{0, 1}, Targets: []float64{1}},
		{Inputs: []float64{1, 1}, Targets: []float64{0}},
	}
}

// SquaredError returns ||target - prediction||².
func SquaredError(target, prediction []float64) float64 {
	d := floats.Distance(target, prediction, 2)
	return d * d
}

// Step runs one forward pass and one gradient step on line. It returns the
// squared error of the prediction made before the update.
func (net *NeuralNetwork) Step(line Line) (float64, error) {
	p, err := net.FeedForward(line.Inputs)
	if err != nil {
		return 0, err
	}
	if err := net.BackPropagate(p, line.Targets); err != nil {
		return 0, err
	}
	return SquaredError(line.Targets, p.Prediction()), nil
}

// Train performs epochs single-example steps, drawing each example
// uniformly at random from lines. A nil src is seeded from the clock.
func (net *NeuralNetwork) Train(lines Lines, epochs int, src rand.Source) error {
	if len(lines) == 0 {
		return ErrNoLines
	}
	if epochs < 0 {
		return fmt.Errorf("epochs must not be negative, got %d", epochs)
	}
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	rng := rand.New(src)

	for epoch := 0; epoch < epochs; epoch++ {
		ind := rng.Intn(len(lines))
		if _, err := net.Step(lines[ind]); err != nil {
			return fmt.Errorf("epoch %d, line %d: %w", epoch, ind, err)
		}
	}
	return nil
}

// Predict runs a forward pass and returns the output layer.
func (net *NeuralNetwork) Predict(input []float64) ([]float64, error) {
	p, err := net.FeedForward(input)
	if err != nil {
		return nil, err
	}
	return p.Prediction(), nil
}

// Evaluate returns the mean squared error of the network over lines.
func (net *NeuralNetwork) Evaluate(lines Lines) (float64, error) {
	if len(lines) == 0 {
		return 0, ErrNoLines
	}
	errs := make([]float64, len(lines))
	for i, line := range lines {
		prediction, err := net.Predict(line.Inputs)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i, err)
		}
		if len(line.Targets) != len(prediction) {
			return 0, fmt.Errorf("line %d: %w", i, &ShapeMismatchError{
				Kind: ErrBackwardTargetShape,
				Want: Shape{Rows: len(prediction), Cols: 1},
				Got:  Shape{Rows: len(line.Targets), Cols: 1},
			})
		}
		errs[i] = SquaredError(line.Targets, prediction)
	}
	return floats.Sum(errs) / float64(len(errs)), nil
}
