package m

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Shape is the row/column count of a matrix. Vectors are column vectors,
// so their Cols is always 1.
type Shape struct {
	Rows int
	Cols int
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

func shapeOf(m mat.Matrix) Shape {
	r, c := m.Dims()
	return Shape{Rows: r, Cols: c}
}

// Transition describes the parameters between layer i and layer i+1.
type Transition struct {
	Weight Shape
	Bias   Shape
}

// LayerShapes derives one Transition per adjacent pair of layer widths.
func LayerShapes(topology []int) ([]Transition, error) {
	if len(topology) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 layers, got %d", ErrInvalidTopology, len(topology))
	}
	for i, n := range topology {
		if n <= 0 {
			return nil, fmt.Errorf("%w: layer %d has %d neurons", ErrInvalidTopology, i, n)
		}
	}

	shapes := make([]Transition, len(topology)-1)
	for i := range shapes {
		shapes[i] = Transition{
			Weight: Shape{Rows: topology[i+1], Cols: topology[i]},
			Bias:   Shape{Rows: topology[i+1], Cols: 1},
		}
	}
	return shapes, nil
}

func dot(m, n mat.Matrix) *mat.Dense {
	r, _ := m.Dims()
	_, c := n.Dims()
	o := mat.NewDense(r, c, nil)
	o.Product(m, n)
	return o
}

func apply(fn func(i, j int, v float64) float64, m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.Apply(fn, m)
	return o
}

func scale(s float64, m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.Scale(s, m)
	return o
}

func multiply(m, n mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.MulElem(m, n)
	return o
}

func add(m, n mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.Add(m, n)
	return o
}

func subtract(m, n mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.Sub(m, n)
	return o
}

// columnVector copies v into a fresh (len(v), 1) matrix.
func columnVector(v []float64) *mat.Dense {
	return mat.NewDense(len(v), 1, append([]float64(nil), v...))
}

// column returns a copy of the first column of m.
func column(m mat.Matrix) []float64 {
	return mat.Col(nil, 0, m)
}

func randomArray(size int, dist distuv.Uniform) []float64 {
	data := make([]float64, size)
	for i := range data {
		data[i] = dist.Rand()
	}
	return data
}

func randomMatrix(s Shape, dist distuv.Uniform) *mat.Dense {
	return mat.NewDense(s.Rows, s.Cols, randomArray(s.Rows*s.Cols, dist))
}
