package dataset

// Summary describes the shape of an example set.
type Summary struct {
	Count    int
	Positive int
	Negative int
	Dim      int
	MaxIndex int
	AvgNnz   float64
}

// Stats computes a Summary over the example set.
func Stats(examples []Example) Summary {
	s := Summary{Count: len(examples), Dim: Dim(examples), MaxIndex: -1}
	totalNnz := 0
	for _, ex := range examples {
		if ex.Label > 0 {
			s.Positive++
		} else {
			s.Negative++
		}
		totalNnz += ex.Features.Nnz()
		if m := ex.Features.MaxIndex(); m > s.MaxIndex {
			s.MaxIndex = m
		}
	}
	if s.Count > 0 {
		s.AvgNnz = float64(totalNnz) / float64(s.Count)
	}
	return s
}
