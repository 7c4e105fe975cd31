package vectorizer

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/happyhackingspace/arow/internal/textutil"
)

// TfidfVectorizer converts text documents to L2-normalized TF-IDF vectors
// over a vocabulary learned from a corpus.
type TfidfVectorizer struct {
	Vocabulary map[string]int
	IDF        []float64
	NgramRange [2]int
	MinDF      int
}

// NewTfidfVectorizer creates a TfidfVectorizer. minDF below 1 is treated as 1;
// a zero ngram range defaults to unigrams.
func NewTfidfVectorizer(ngramRange [2]int, minDF int) *TfidfVectorizer {
	if minDF < 1 {
		minDF = 1
	}
	if ngramRange[0] < 1 {
		ngramRange = [2]int{1, 1}
	}
	return &TfidfVectorizer{
		NgramRange: ngramRange,
		MinDF:      minDF,
	}
}

func (tv *TfidfVectorizer) analyze(text string) []string {
	tokens := textutil.Tokenize(textutil.Normalize(text))
	return textutil.TokenNgrams(tokens, tv.NgramRange[0], tv.NgramRange[1])
}

// Fit builds the vocabulary and IDF values from a corpus.
func (tv *TfidfVectorizer) Fit(corpus []string) {
	df := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]bool)
		for _, term := range tv.analyze(doc) {
			if !seen[term] {
				df[term]++
				seen[term] = true
			}
		}
	}

	// Sort surviving terms for deterministic index assignment
	terms := make([]string, 0, len(df))
	for term, count := range df {
		if count >= tv.MinDF {
			terms = append(terms, term)
		}
	}
	sort.Strings(terms)

	tv.Vocabulary = make(map[string]int, len(terms))
	tv.IDF = make([]float64, len(terms))
	nDocs := float64(len(corpus))
	for i, term := range terms {
		tv.Vocabulary[term] = i
		// smooth IDF: log((1 + n) / (1 + df)) + 1
		tv.IDF[i] = math.Log((1+nDocs)/(1+float64(df[term]))) + 1
	}
}

// FitTransform fits the vocabulary and transforms the corpus.
func (tv *TfidfVectorizer) FitTransform(corpus []string) []SparseVector {
	tv.Fit(corpus)
	result := make([]SparseVector, len(corpus))
	for i, doc := range corpus {
		result[i] = tv.Transform(doc)
	}
	return result
}

// Transform converts a single document to a TF-IDF sparse vector with
// ascending indices.
func (tv *TfidfVectorizer) Transform(text string) SparseVector {
	counts := make(map[int]float64)
	for _, term := range tv.analyze(text) {
		if idx, ok := tv.Vocabulary[term]; ok {
			counts[idx]++
		}
	}

	indices := make([]int, 0, len(counts))
	for idx := range counts {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	sv := NewSparseVector(len(tv.Vocabulary))
	for _, idx := range indices {
		sv.Append(idx, counts[idx]*tv.IDF[idx])
	}

	// L2 normalize
	if norm := sv.L2Norm(); norm > 0 {
		floats.Scale(1/norm, sv.Values)
	}
	return sv
}

// VocabSize returns the vocabulary size.
func (tv *TfidfVectorizer) VocabSize() int {
	return len(tv.Vocabulary)
}
