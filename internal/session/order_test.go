package session

import (
	"math/rand"
	"sort"
	"testing"

	"examsim/internal/exam"
)

// orderFixture builds a six-question set with two AI-generated entries.
func orderFixture() exam.Set {
	return buildSet(
		question("q0", false, 1, "a", "b"),
		question("q1", true, 1, "a", "b"),
		question("q2", false, 1, "a", "b"),
		question("q3", true, 1, "a", "b"),
		question("q4", false, 1, "a", "b"),
		question("q5", false, 1, "a", "b"),
	)
}

// TestTraversalOrderSequential verifies the unfiltered, unshuffled order
// is the unique index list itself.
func TestTraversalOrderSequential(t *testing.T) {
	set := orderFixture()
	order := traversalOrder(set, false, false, rand.New(rand.NewSource(1)))
	if len(order) != 6 {
		t.Fatalf("expected 6 entries, got %d", len(order))
	}
	for i, index := range order {
		if index != i {
			t.Fatalf("expected sequential order, got %v", order)
		}
	}
}

// TestTraversalOrderFilter verifies AI-generated questions are dropped.
func TestTraversalOrderFilter(t *testing.T) {
	set := orderFixture()
	order := traversalOrder(set, true, false, rand.New(rand.NewSource(1)))
	want := []int{0, 2, 4, 5}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i, index := range order {
		if index != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

// TestTraversalOrderShuffleIsPermutation verifies repeated shuffles are
// each valid permutations of the same index set.
func TestTraversalOrderShuffleIsPermutation(t *testing.T) {
	set := orderFixture()
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 20; round++ {
		order := traversalOrder(set, false, true, rng)
		sorted := append([]int(nil), order...)
		sort.Ints(sorted)
		for i, index := range sorted {
			if index != i {
				t.Fatalf("round %d produced invalid permutation %v", round, order)
			}
		}
	}
}

// TestDisplayShuffleIsPermutation verifies option display orders are
// permutations of the option indices.
func TestDisplayShuffleIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for round := 0; round < 20; round++ {
		perm := displayShuffle(5, rng)
		sorted := append([]int(nil), perm...)
		sort.Ints(sorted)
		for i, index := range sorted {
			if index != i {
				t.Fatalf("round %d produced invalid permutation %v", round, perm)
			}
		}
	}
}
