package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/happyhackingspace/arow"
	"github.com/spf13/cobra"
)

func (c *CLI) newEvalCommand() *cobra.Command {
	var (
		dim       int
		r         float64
		epochs    int
		trainFrac float64
		seed      int64
	)

	cmd := &cobra.Command{
		Use:   "eval <datafile>",
		Short: "Train on a shuffled split of a dataset and report test error per epoch",
		Args:  cobra.ExactArgs(1),
		Example: `  arow eval news20.binary --epochs 3
  arow eval data.txt --dim 1355192 --r 0.1 --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			slog.Info("Evaluating", "datafile", path, "epochs", epochs, "split", trainFrac)
			start := time.Now()
			result, err := arow.EvaluateFile(path, &arow.EvalConfig{
				Dim:       dim,
				R:         r,
				Epochs:    epochs,
				TrainFrac: trainFrac,
				Seed:      seed,
				Verbose:   c.verbose,
			})
			if err != nil {
				return err
			}
			slog.Debug("Evaluation completed", "duration", time.Since(start))

			for _, ep := range result.Epochs {
				fmt.Printf("train size: %d  test size: %d  epoch: %d  mistakes: %d  error rate: %f\n",
					ep.TrainSize, ep.TestSize, ep.Epoch, ep.Mistakes, ep.ErrorRate)
			}
			fmt.Printf("mean error rate: %f\n", result.MeanErrorRate)
			return nil
		},
	}

	cmd.Flags().IntVar(&dim, "dim", 0, "Feature dimensionality (0 = infer from data)")
	cmd.Flags().Float64Var(&r, "r", 0.1, "Regularization hyperparameter")
	cmd.Flags().IntVar(&epochs, "epochs", 3, "Number of training epochs")
	cmd.Flags().Float64Var(&trainFrac, "split", 0.75, "Training fraction of the shuffled dataset")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Shuffle seed")
	return cmd
}
