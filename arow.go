// Package arow trains and evaluates an online binary linear classifier.
//
// AROW (Adaptive Regularization of Weight Vectors) keeps a weight vector
// together with a per-feature confidence estimate and adjusts both after
// every labeled example. The algorithm itself lives in the classifier
// package; this package drives it over a dataset.
//
//	examples, _ := dataset.Load("train.txt", 0)
//	result, _ := arow.Evaluate(examples, nil)
//	for _, ep := range result.Epochs {
//	    fmt.Println(ep.Epoch, ep.ErrorRate)
//	}
package arow

import (
	"fmt"
	"math/rand"

	"github.com/happyhackingspace/arow/classifier"
	"github.com/happyhackingspace/arow/dataset"
)

// TrainConfig holds configuration for training.
type TrainConfig struct {
	Dim    int     // feature dimensionality; 0 infers it from the examples
	R      float64 // regularization hyperparameter; 0 uses classifier.DefaultR
	Epochs int     // passes over the data; 0 uses DefaultEpochs
	Seed   int64   // shuffle seed
}

// DefaultEpochs is the number of passes a default configuration makes.
const DefaultEpochs = 3

func (c *TrainConfig) fill(examples []dataset.Example) error {
	if c.Dim == 0 {
		c.Dim = dataset.Dim(examples)
	}
	if c.Dim <= 0 {
		return fmt.Errorf("arow: cannot infer dimensionality from %d examples", len(examples))
	}
	if c.R == 0 {
		c.R = classifier.DefaultR
	}
	if c.Epochs <= 0 {
		c.Epochs = DefaultEpochs
	}
	return nil
}

// Train fits a classifier on all examples, reshuffling them each epoch.
func Train(examples []dataset.Example, config *TrainConfig) (*classifier.Classifier, error) {
	cfg := TrainConfig{}
	if config != nil {
		cfg = *config
	}
	if err := cfg.fill(examples); err != nil {
		return nil, err
	}

	c, err := classifier.New(cfg.Dim, cfg.R)
	if err != nil {
		return nil, fmt.Errorf("arow: %w", err)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	work := make([]dataset.Example, len(examples))
	copy(work, examples)
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		dataset.Shuffle(work, rng)
		for _, ex := range work {
			if _, err := c.Update(ex.Features, ex.Label); err != nil {
				return nil, fmt.Errorf("arow: %w", err)
			}
		}
	}
	return c, nil
}
