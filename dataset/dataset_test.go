package dataset

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestParseBasic(t *testing.T) {
	input := "+1 3:0.5 7:2.0 badtoken 10:1.0\n"
	examples, err := Parse(strings.NewReader(input), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(examples) != 1 {
		t.Fatalf("got %d examples, want 1", len(examples))
	}
	ex := examples[0]
	if ex.Label != 1 {
		t.Errorf("label = %d, want +1", ex.Label)
	}
	wantIdx := []int{3, 7, 10}
	wantVal := []float64{0.5, 2.0, 1.0}
	if ex.Features.Nnz() != 3 {
		t.Fatalf("nnz = %d, want 3 (badtoken must be dropped)", ex.Features.Nnz())
	}
	for i := range wantIdx {
		if ex.Features.Indices[i] != wantIdx[i] || ex.Features.Values[i] != wantVal[i] {
			t.Errorf("feature %d = (%d, %v), want (%d, %v)",
				i, ex.Features.Indices[i], ex.Features.Values[i], wantIdx[i], wantVal[i])
		}
	}
	if ex.Features.Dim != 11 {
		t.Errorf("inferred dim = %d, want 11", ex.Features.Dim)
	}
}

func TestParseSkipsCommentsAndBlanks(t *testing.T) {
	input := "#comment\n\n+1 0:1.0\n#another 3:4.0\n\n-x 1:2.0\n"
	examples, err := Parse(strings.NewReader(input), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(examples) != 2 {
		t.Fatalf("got %d examples, want 2", len(examples))
	}
	if examples[0].Label != 1 || examples[1].Label != -1 {
		t.Errorf("labels = %d, %d, want +1, -1", examples[0].Label, examples[1].Label)
	}
}

func TestParseLabelMarker(t *testing.T) {
	// Anything after the sign in the first token is ignored.
	examples, err := Parse(strings.NewReader("-labelled_example 0:1.5\n"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if examples[0].Label != -1 {
		t.Errorf("label = %d, want -1", examples[0].Label)
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing sign", "1 0:1.0\n"},
		{"bad index", "+1 x:1.0\n"},
		{"bad weight", "+1 0:abc\n"},
		{"empty weight", "+1 0:\n"},
		{"negative index", "+1 -2:1.0\n"},
		{"index beyond dim", "+1 5:1.0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.input), 4); !errors.Is(err, ErrMalformedInput) {
				t.Errorf("err = %v, want ErrMalformedInput", err)
			}
		})
	}
}

func TestParseFixedDim(t *testing.T) {
	examples, err := Parse(strings.NewReader("+1 0:1.0 2:0.5\n"), 8)
	if err != nil {
		t.Fatal(err)
	}
	if examples[0].Features.Dim != 8 {
		t.Errorf("dim = %d, want 8", examples[0].Features.Dim)
	}
}

func TestShuffleDeterministic(t *testing.T) {
	build := func() []Example {
		examples, err := Parse(strings.NewReader("+a 0:1\n-b 1:1\n+c 2:1\n-d 3:1\n+e 4:1\n"), 5)
		if err != nil {
			t.Fatal(err)
		}
		return examples
	}

	a := build()
	b := build()
	Shuffle(a, rand.New(rand.NewSource(42)))
	Shuffle(b, rand.New(rand.NewSource(42)))
	for i := range a {
		if a[i].Label != b[i].Label || a[i].Features.Indices[0] != b[i].Features.Indices[0] {
			t.Fatalf("same seed produced different orders at %d", i)
		}
	}
}

func TestSplit(t *testing.T) {
	examples := make([]Example, 8)
	train, test := Split(examples, 0.75)
	if len(train) != 6 || len(test) != 2 {
		t.Errorf("split = %d/%d, want 6/2", len(train), len(test))
	}
	train, test = Split(examples, 1.5)
	if len(train) != 8 || len(test) != 0 {
		t.Errorf("clamped split = %d/%d, want 8/0", len(train), len(test))
	}
	train, test = Split(nil, 0.75)
	if len(train) != 0 || len(test) != 0 {
		t.Errorf("empty split = %d/%d, want 0/0", len(train), len(test))
	}
}

func TestStats(t *testing.T) {
	examples, err := Parse(strings.NewReader("+1 0:1.0 3:0.5\n-1 1:2.0\n+1 2:1.0\n"), 0)
	if err != nil {
		t.Fatal(err)
	}
	s := Stats(examples)
	if s.Count != 3 || s.Positive != 2 || s.Negative != 1 {
		t.Errorf("counts = %d/%d/%d, want 3/2/1", s.Count, s.Positive, s.Negative)
	}
	if s.MaxIndex != 3 || s.Dim != 4 {
		t.Errorf("max index = %d dim = %d, want 3 and 4", s.MaxIndex, s.Dim)
	}
	want := 4.0 / 3.0
	if s.AvgNnz != want {
		t.Errorf("avg nnz = %v, want %v", s.AvgNnz, want)
	}
}
