// Package dataset reads sparse labeled datasets from a line-oriented text
// format and prepares them for training.
//
// Each data line carries a sign marker followed by whitespace-separated
// index:weight pairs:
//
//	+1 3:0.5 7:2.0 10:1.0
//	-labelled_example 0:1.5
//
// Lines starting with '#' and blank lines are skipped. Only the first
// character of the leading token matters: '+' means label +1, '-' means
// label -1.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/happyhackingspace/arow/vectorizer"
)

// ErrMalformedInput reports a data line that cannot be parsed.
var ErrMalformedInput = errors.New("malformed input")

// Example is one labeled sparse feature vector. Label is -1 or +1.
type Example struct {
	Label    int
	Features vectorizer.SparseVector
}

// Load reads examples from a file. See Parse for the dim argument.
func Load(path string, dim int) ([]Example, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	examples, err := Parse(f, dim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return examples, nil
}

// Parse reads examples from r. If dim > 0 every feature index must lie in
// [0, dim); if dim is 0 the dimensionality is inferred as the largest index
// seen plus one.
//
// Tokens that do not split into exactly two colon-separated parts are
// skipped. A missing sign marker, an unparseable number, or a negative
// index is an ErrMalformedInput.
func Parse(r io.Reader, dim int) ([]Example, error) {
	var examples []Example
	maxIdx := -1

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var label int
		switch line[0] {
		case '+':
			label = 1
		case '-':
			label = -1
		default:
			return nil, fmt.Errorf("line %d: %w: expected '+' or '-' label marker, got %q", lineNo, ErrMalformedInput, line[0])
		}

		tokens := strings.Fields(line)
		sv := vectorizer.NewSparseVector(dim)
		for _, tok := range tokens[1:] {
			parts := strings.Split(tok, ":")
			if len(parts) != 2 {
				continue
			}
			idx, err := strconv.Atoi(parts[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: bad index %q: %v", lineNo, ErrMalformedInput, parts[0], err)
			}
			if idx < 0 {
				return nil, fmt.Errorf("line %d: %w: negative index %d", lineNo, ErrMalformedInput, idx)
			}
			if dim > 0 && idx >= dim {
				return nil, fmt.Errorf("line %d: %w: index %d outside dimension %d", lineNo, ErrMalformedInput, idx, dim)
			}
			weight, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: bad weight %q: %v", lineNo, ErrMalformedInput, parts[1], err)
			}
			sv.Append(idx, weight)
			if idx > maxIdx {
				maxIdx = idx
			}
		}
		examples = append(examples, Example{Label: label, Features: sv})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if dim == 0 {
		inferred := maxIdx + 1
		for i := range examples {
			examples[i].Features.Dim = inferred
		}
	}
	return examples, nil
}

// Dim returns the dimensionality of the example set, 0 when empty.
func Dim(examples []Example) int {
	if len(examples) == 0 {
		return 0
	}
	return examples[0].Features.Dim
}
