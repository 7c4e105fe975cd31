package vectorizer

import (
	"math"
	"testing"
)

func TestSparseVector(t *testing.T) {
	sv := NewSparseVector(5)
	sv.Set(1, 2.0)
	sv.Set(3, 4.0)

	dense := sv.ToDense()
	if dense[1] != 2.0 || dense[3] != 4.0 || dense[0] != 0.0 {
		t.Errorf("ToDense unexpected: %v", dense)
	}

	dotVec := []float64{1, 2, 3, 4, 5}
	dot := sv.Dot(dotVec)
	expected := 2.0*2 + 4.0*4
	if dot != expected {
		t.Errorf("Dot = %v, want %v", dot, expected)
	}

	if sv.Nnz() != 2 {
		t.Errorf("Nnz = %d, want 2", sv.Nnz())
	}
	if sv.MaxIndex() != 3 {
		t.Errorf("MaxIndex = %d, want 3", sv.MaxIndex())
	}

	sv.Set(1, 7.0)
	if sv.Nnz() != 2 || sv.ToDense()[1] != 7.0 {
		t.Errorf("Set did not overwrite: %v", sv)
	}
}

func TestSparseVectorEmpty(t *testing.T) {
	sv := NewSparseVector(3)
	if sv.MaxIndex() != -1 {
		t.Errorf("MaxIndex of empty = %d, want -1", sv.MaxIndex())
	}
	if sv.L2Norm() != 0 {
		t.Errorf("L2Norm of empty = %v, want 0", sv.L2Norm())
	}
}

func TestL2Norm(t *testing.T) {
	sv := NewSparseVector(4)
	sv.Append(0, 3.0)
	sv.Append(2, 4.0)
	if sv.L2Norm() != 5.0 {
		t.Errorf("L2Norm = %v, want 5", sv.L2Norm())
	}
}

func TestTfidfFit(t *testing.T) {
	tv := NewTfidfVectorizer([2]int{1, 1}, 1)
	corpus := []string{"hello world", "world peace", "hello again"}
	tv.Fit(corpus)

	// Sorted vocabulary: again, hello, peace, world
	if tv.VocabSize() != 4 {
		t.Fatalf("vocab size = %d, want 4", tv.VocabSize())
	}
	if tv.Vocabulary["again"] != 0 || tv.Vocabulary["world"] != 3 {
		t.Errorf("vocabulary order unexpected: %v", tv.Vocabulary)
	}
	// "world" (df=2) must get a lower IDF than "peace" (df=1).
	if tv.IDF[tv.Vocabulary["world"]] >= tv.IDF[tv.Vocabulary["peace"]] {
		t.Errorf("IDF ordering unexpected: %v", tv.IDF)
	}
}

func TestTfidfMinDF(t *testing.T) {
	tv := NewTfidfVectorizer([2]int{1, 1}, 2)
	tv.Fit([]string{"hello world", "hello universe"})
	if _, ok := tv.Vocabulary["hello"]; !ok {
		t.Error("expected 'hello' in vocabulary (df=2)")
	}
	if _, ok := tv.Vocabulary["world"]; ok {
		t.Error("did not expect 'world' in vocabulary (df=1)")
	}
}

func TestTfidfTransform(t *testing.T) {
	tv := NewTfidfVectorizer([2]int{1, 1}, 1)
	vecs := tv.FitTransform([]string{"hello world", "world peace"})
	if len(vecs) != 2 {
		t.Fatalf("got %d vectors, want 2", len(vecs))
	}
	for i, sv := range vecs {
		if math.Abs(sv.L2Norm()-1.0) > 1e-12 {
			t.Errorf("vector %d norm = %v, want 1", i, sv.L2Norm())
		}
		for j := 1; j < len(sv.Indices); j++ {
			if sv.Indices[j] <= sv.Indices[j-1] {
				t.Errorf("vector %d indices not ascending: %v", i, sv.Indices)
			}
		}
	}

	// Unknown terms vanish.
	sv := tv.Transform("completely unknown text")
	if sv.Nnz() != 0 {
		t.Errorf("transform of unknown text nnz = %d, want 0", sv.Nnz())
	}
}
