package dataset

import "math/rand"

// Shuffle permutes the examples in place using the supplied generator.
// Callers seed the generator themselves so runs can be replayed.
func Shuffle(examples []Example, rng *rand.Rand) {
	rng.Shuffle(len(examples), func(i, j int) {
		examples[i], examples[j] = examples[j], examples[i]
	})
}

// Split partitions examples into a training prefix and a test suffix.
// trainFrac is clamped to [0, 1]. The slices share the backing array.
func Split(examples []Example, trainFrac float64) (train, test []Example) {
	if trainFrac < 0 {
		trainFrac = 0
	}
	if trainFrac > 1 {
		trainFrac = 1
	}
	cut := int(trainFrac * float64(len(examples)))
	return examples[:cut], examples[cut:]
}
