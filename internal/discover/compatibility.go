// internal/discover/compatibility.go

package discover

import (
	"math/rand"
	"strings"
)

// Compatibility scores how well two interest sets overlap, as a percentage.
//
// When either side has no interests there is nothing to compare, so a
// placeholder in [60, 90) is returned instead of a real signal. Otherwise the
// score is 50 + up to 50 from the Jaccard overlap of the case-folded sets,
// capped at 99 so no pairing ever reads as perfect.
func Compatibility(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 60 + rand.Intn(30)
	}

	setA := foldSet(a)
	setB := foldSet(b)

	union := len(setA)
	matches := 0
	for k := range setB {
		if setA[k] {
			matches++
		} else {
			union++
		}
	}

	score := 50 + matches*50/union
	if score > 99 {
		score = 99
	}
	return score
}

func foldSet(interests []string) map[string]bool {
	set := make(map[string]bool, len(interests))
	for _, interest := range interests {
		set[strings.ToLower(interest)] = true
	}
	return set
}
