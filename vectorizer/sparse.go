// Package vectorizer provides sparse feature vectors and text vectorization.
package vectorizer

import "gonum.org/v1/gonum/floats"

// SparseVector represents a sparse float64 vector.
//
// Indices and Values are parallel slices; Dim is the dimensionality of the
// space the vector lives in. Indices are not required to be sorted, but an
// index must not appear twice within one vector.
type SparseVector struct {
	Indices []int
	Values  []float64
	Dim     int
}

// NewSparseVector creates an empty sparse vector with the given dimension.
func NewSparseVector(dim int) SparseVector {
	return SparseVector{Dim: dim}
}

// Append adds an (index, value) entry without checking for duplicates.
func (sv *SparseVector) Append(idx int, val float64) {
	sv.Indices = append(sv.Indices, idx)
	sv.Values = append(sv.Values, val)
}

// Set adds or updates a value at the given index.
func (sv *SparseVector) Set(idx int, val float64) {
	for i, existingIdx := range sv.Indices {
		if existingIdx == idx {
			sv.Values[i] = val
			return
		}
	}
	sv.Indices = append(sv.Indices, idx)
	sv.Values = append(sv.Values, val)
}

// Dot computes the dot product with a dense vector.
func (sv SparseVector) Dot(dense []float64) float64 {
	var sum float64
	for i, idx := range sv.Indices {
		if idx < len(dense) {
			sum += sv.Values[i] * dense[idx]
		}
	}
	return sum
}

// ToDense converts to a dense float64 slice.
func (sv SparseVector) ToDense() []float64 {
	dense := make([]float64, sv.Dim)
	for i, idx := range sv.Indices {
		if idx < sv.Dim {
			dense[idx] = sv.Values[i]
		}
	}
	return dense
}

// Nnz returns the number of non-zero entries.
func (sv SparseVector) Nnz() int {
	return len(sv.Indices)
}

// MaxIndex returns the largest index in the vector, or -1 if it is empty.
func (sv SparseVector) MaxIndex() int {
	max := -1
	for _, idx := range sv.Indices {
		if idx > max {
			max = idx
		}
	}
	return max
}

// L2Norm returns the L2 norm of the sparse vector.
func (sv SparseVector) L2Norm() float64 {
	return floats.Norm(sv.Values, 2)
}
