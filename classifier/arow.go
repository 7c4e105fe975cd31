// Package classifier implements AROW (Adaptive Regularization of Weight
// Vectors), an online binary linear classifier.
//
// The classifier keeps a dense weight (mean) vector together with a diagonal
// covariance vector holding a per-feature confidence estimate. Every labeled
// example can move both: the closed-form AROW update shifts the weights and
// shrinks the covariance of the features it touched, so frequently seen
// dimensions are updated more conservatively over time.
package classifier

import (
	"errors"
	"fmt"

	"github.com/happyhackingspace/arow/vectorizer"
)

// Sentinel errors returned by the classifier.
var (
	// ErrInvalidArgument reports an out-of-domain argument such as a
	// non-positive dimensionality or a label outside {-1, +1}.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexOutOfRange reports a feature index outside [0, Dim).
	ErrIndexOutOfRange = errors.New("feature index out of range")
)

// DefaultR is the default regularization hyperparameter.
const DefaultR = 0.1

// Classifier holds the state of an online AROW model.
//
// A Classifier is owned by a single goroutine: Update mutates the mean and
// covariance arrays in place and must not run concurrently with any other
// method. The read-only methods may be called concurrently with each other.
type Classifier struct {
	dim  int
	r    float64
	mean []float64
	cov  []float64
}

// New creates a classifier for the given feature dimensionality and
// regularization hyperparameter r. Weights start at zero and every
// per-feature covariance at one.
func New(dim int, r float64) (*Classifier, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: dimension must be positive, got %d", ErrInvalidArgument, dim)
	}
	if r <= 0 {
		return nil, fmt.Errorf("%w: regularization r must be positive, got %g", ErrInvalidArgument, r)
	}
	c := &Classifier{
		dim:  dim,
		r:    r,
		mean: make([]float64, dim),
		cov:  make([]float64, dim),
	}
	for i := range c.cov {
		c.cov[i] = 1.0
	}
	return c, nil
}

// Dim returns the feature dimensionality.
func (c *Classifier) Dim() int { return c.dim }

// R returns the regularization hyperparameter.
func (c *Classifier) R() float64 { return c.r }

// Weights returns a copy of the mean (weight) vector.
func (c *Classifier) Weights() []float64 {
	w := make([]float64, c.dim)
	copy(w, c.mean)
	return w
}

// Covariance returns a copy of the diagonal covariance vector.
func (c *Classifier) Covariance() []float64 {
	cv := make([]float64, c.dim)
	copy(cv, c.cov)
	return cv
}

func (c *Classifier) checkIndices(fv vectorizer.SparseVector) error {
	for _, idx := range fv.Indices {
		if idx < 0 || idx >= c.dim {
			return fmt.Errorf("%w: index %d, dimension %d", ErrIndexOutOfRange, idx, c.dim)
		}
	}
	return nil
}

// Margin computes the dot product of the weight vector and fv.
func (c *Classifier) Margin(fv vectorizer.SparseVector) (float64, error) {
	if err := c.checkIndices(fv); err != nil {
		return 0, err
	}
	var sum float64
	for i, idx := range fv.Indices {
		sum += c.mean[idx] * fv.Values[i]
	}
	return sum, nil
}

// Confidence computes the quadratic form of fv against the diagonal
// covariance: sum of cov[idx]*weight^2. The result is never negative.
func (c *Classifier) Confidence(fv vectorizer.SparseVector) (float64, error) {
	if err := c.checkIndices(fv); err != nil {
		return 0, err
	}
	var sum float64
	for i, idx := range fv.Indices {
		sum += c.cov[idx] * fv.Values[i] * fv.Values[i]
	}
	return sum, nil
}

// Predict returns +1 if the margin of fv is strictly positive, -1 otherwise.
// A margin of exactly zero predicts -1.
func (c *Classifier) Predict(fv vectorizer.SparseVector) (int, error) {
	m, err := c.Margin(fv)
	if err != nil {
		return 0, err
	}
	if m > 0 {
		return 1, nil
	}
	return -1, nil
}

// Update applies one AROW step for a labeled example. label must be -1 or +1.
//
// If label*margin >= 1 the example satisfies the margin already and the model
// is left untouched. Otherwise both the weights and the covariances of the
// touched features are adjusted in closed form.
//
// The returned loss is a diagnostic 0/1 indicator: 1 when the pre-update
// margin was on the wrong side of zero, 0 otherwise. It does not feed back
// into the update itself.
func (c *Classifier) Update(fv vectorizer.SparseVector, label int) (int, error) {
	if label != 1 && label != -1 {
		return 0, fmt.Errorf("%w: label must be -1 or +1, got %d", ErrInvalidArgument, label)
	}
	m, err := c.Margin(fv)
	if err != nil {
		return 0, err
	}
	if m*float64(label) >= 1 {
		return 0, nil
	}

	conf, err := c.Confidence(fv)
	if err != nil {
		return 0, err
	}
	beta := 1 / (conf + c.r)
	alpha := (1 - float64(label)*m) * beta

	// The mean update must see the pre-update covariance for every feature,
	// so the covariance pass runs only after the whole mean pass.
	for i, idx := range fv.Indices {
		c.mean[idx] += alpha * c.cov[idx] * float64(label) * fv.Values[i]
	}
	for i, idx := range fv.Indices {
		w := fv.Values[i]
		c.cov[idx] = 1 / (1/c.cov[idx] + w*w/c.r)
	}

	if m*float64(label) < 0 {
		return 1, nil
	}
	return 0, nil
}
