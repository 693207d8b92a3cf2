package domain

import "math/rand"

// Shuffle permutes cards in place with a Fisher-Yates pass, swapping each
// position from the last down to index 1 with a uniformly chosen
// earlier-or-equal index. Uniform over permutations given a uniform source.
func Shuffle(cards []Card, rng *rand.Rand) {
	for i := len(cards) - 1; i >= 1; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
