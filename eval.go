package arow

import (
	"fmt"
	"log/slog"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/happyhackingspace/arow/classifier"
	"github.com/happyhackingspace/arow/dataset"
)

// EvalConfig holds configuration for a train/test evaluation run.
type EvalConfig struct {
	Dim       int     // feature dimensionality; 0 infers it from the examples
	R         float64 // regularization hyperparameter; 0 uses classifier.DefaultR
	Epochs    int     // passes over the training partition; 0 uses DefaultEpochs
	TrainFrac float64 // fraction of examples used for training; 0 uses DefaultTrainFrac
	Seed      int64   // shuffle seed
	Verbose   bool
}

// DefaultTrainFrac is the training share of a default train/test split.
const DefaultTrainFrac = 0.75

// EpochResult holds the outcome of evaluating the test partition after one
// training epoch.
type EpochResult struct {
	Epoch     int
	TrainSize int
	TestSize  int
	Mistakes  int
	ErrorRate float64
}

// EvalResult holds per-epoch evaluation results.
type EvalResult struct {
	Epochs        []EpochResult
	MeanErrorRate float64
}

// Evaluate shuffles the examples with the configured seed, splits them into
// train/test partitions, and runs the configured number of epochs. Each
// epoch updates the classifier once per training example (reshuffled) and
// then predicts every test example without updating, counting mistakes.
func Evaluate(examples []dataset.Example, config *EvalConfig) (*EvalResult, error) {
	cfg := EvalConfig{}
	if config != nil {
		cfg = *config
	}
	tc := TrainConfig{Dim: cfg.Dim, R: cfg.R, Epochs: cfg.Epochs}
	if err := tc.fill(examples); err != nil {
		return nil, err
	}
	if cfg.TrainFrac == 0 {
		cfg.TrainFrac = DefaultTrainFrac
	}

	c, err := classifier.New(tc.Dim, tc.R)
	if err != nil {
		return nil, fmt.Errorf("arow: %w", err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	work := make([]dataset.Example, len(examples))
	copy(work, examples)
	dataset.Shuffle(work, rng)
	train, test := dataset.Split(work, cfg.TrainFrac)

	result := &EvalResult{Epochs: make([]EpochResult, 0, tc.Epochs)}
	rates := make([]float64, 0, tc.Epochs)
	for epoch := 0; epoch < tc.Epochs; epoch++ {
		dataset.Shuffle(train, rng)
		for _, ex := range train {
			if _, err := c.Update(ex.Features, ex.Label); err != nil {
				return nil, fmt.Errorf("arow: %w", err)
			}
		}

		mistakes := 0
		for _, ex := range test {
			pred, err := c.Predict(ex.Features)
			if err != nil {
				return nil, fmt.Errorf("arow: %w", err)
			}
			if pred != ex.Label {
				mistakes++
			}
		}

		ep := EpochResult{
			Epoch:     epoch,
			TrainSize: len(train),
			TestSize:  len(test),
			Mistakes:  mistakes,
		}
		if len(test) > 0 {
			ep.ErrorRate = float64(mistakes) / float64(len(test))
		}
		if cfg.Verbose {
			slog.Debug("epoch finished",
				"epoch", epoch, "mistakes", mistakes, "error-rate", ep.ErrorRate)
		}
		result.Epochs = append(result.Epochs, ep)
		rates = append(rates, ep.ErrorRate)
	}
	result.MeanErrorRate = stat.Mean(rates, nil)
	return result, nil
}

// EvaluateFile loads a dataset file and evaluates it.
func EvaluateFile(path string, config *EvalConfig) (*EvalResult, error) {
	dim := 0
	if config != nil {
		dim = config.Dim
	}
	examples, err := dataset.Load(path, dim)
	if err != nil {
		return nil, fmt.Errorf("arow: %w", err)
	}
	if len(examples) == 0 {
		return nil, fmt.Errorf("arow: no examples in %s", path)
	}
	return Evaluate(examples, config)
}
