package cli

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/happyhackingspace/arow/dataset"
	"github.com/happyhackingspace/arow/vectorizer"
	"github.com/spf13/cobra"
)

func (c *CLI) newDataCommand() *cobra.Command {
	dataCmd := &cobra.Command{
		Use:   "data",
		Short: "Build and inspect sparse datasets",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	var minDF int
	buildCmd := &cobra.Command{
		Use:   "build <corpus> <out>",
		Short: "TF-IDF vectorize a labeled text corpus into the sparse dataset format",
		Long: `Build reads a corpus with one document per line, a +/- label marker,
a tab, and the document text. It fits a TF-IDF vocabulary on the corpus and
writes each document as a sparse "label idx:weight ..." line.`,
		Args: cobra.ExactArgs(2),
		Example: `  arow data build corpus.tsv data.txt
  arow data build corpus.tsv data.txt --min-df 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dataBuild(args[0], args[1], minDF)
		},
	}
	buildCmd.Flags().IntVar(&minDF, "min-df", 1, "Minimum document frequency for vocabulary terms")

	statsCmd := &cobra.Command{
		Use:     "stats <datafile>",
		Short:   "Print summary statistics for a sparse dataset",
		Args:    cobra.ExactArgs(1),
		Example: `  arow data stats data.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dataStats(args[0])
		},
	}

	dataCmd.AddCommand(buildCmd, statsCmd)
	return dataCmd
}

func dataBuild(corpusPath, outPath string, minDF int) error {
	labels, docs, err := readCorpus(corpusPath)
	if err != nil {
		return err
	}
	slog.Info("Fitting vocabulary", "documents", len(docs), "min-df", minDF)

	tv := vectorizer.NewTfidfVectorizer([2]int{1, 1}, minDF)
	vecs := tv.FitTransform(docs)
	slog.Info("Vocabulary fitted", "terms", tv.VocabSize())

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "# built from %s, %d terms\n", corpusPath, tv.VocabSize())
	for i, sv := range vecs {
		if labels[i] > 0 {
			fmt.Fprint(w, "+1")
		} else {
			fmt.Fprint(w, "-1")
		}
		for j, idx := range sv.Indices {
			fmt.Fprintf(w, " %d:%g", idx, sv.Values[j])
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	slog.Info("Dataset written", "path", outPath, "examples", len(vecs))
	return nil
}

// readCorpus reads "label<TAB>text" lines; the label field must start with
// '+' or '-'. Blank lines and '#' comments are skipped.
func readCorpus(path string) ([]int, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = f.Close() }()

	var labels []int
	var docs []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		marker, text, ok := strings.Cut(line, "\t")
		if !ok || marker == "" {
			return nil, nil, fmt.Errorf("%s:%d: expected <label><TAB><text>", path, lineNo)
		}
		switch marker[0] {
		case '+':
			labels = append(labels, 1)
		case '-':
			labels = append(labels, -1)
		default:
			return nil, nil, fmt.Errorf("%s:%d: label must start with '+' or '-', got %q", path, lineNo, marker)
		}
		docs = append(docs, text)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return labels, docs, nil
}

func dataStats(path string) error {
	examples, err := dataset.Load(path, 0)
	if err != nil {
		return err
	}
	s := dataset.Stats(examples)
	fmt.Printf("examples:   %d\n", s.Count)
	fmt.Printf("positive:   %d\n", s.Positive)
	fmt.Printf("negative:   %d\n", s.Negative)
	fmt.Printf("dimension:  %d\n", s.Dim)
	fmt.Printf("max index:  %d\n", s.MaxIndex)
	fmt.Printf("avg nnz:    %.2f\n", s.AvgNnz)
	return nil
}
