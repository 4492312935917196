package session

import (
	"math/rand"

	"examsim/internal/exam"
)

// traversalOrder computes the question indices for one pass over the set.
// The order starts from the unique index list, drops AI-generated questions
// when the filter is on, and is freshly shuffled when randomize is on.
func traversalOrder(set exam.Set, filterNonAI, randomized bool, rng *rand.Rand) []int {
	order := make([]int, 0, len(set.Unique))
	for _, index := range set.Unique {
		if filterNonAI && set.Questions[index].AIGenerated {
			continue
		}
		order = append(order, index)
	}
	if randomized {
		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}
	return order
}

// displayShuffle returns a fresh display-to-original permutation for a
// question's options, independent of question ordering randomness.
func displayShuffle(optionCount int, rng *rand.Rand) []int {
	return rng.Perm(optionCount)
}
