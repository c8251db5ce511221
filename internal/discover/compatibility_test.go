// internal/discover/compatibility_test.go

package discover

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCompatibilityFullOverlap(t *testing.T) {
	score := Compatibility([]string{"hiking", "jazz"}, []string{"Jazz", "HIKING"})
	assert.Equal(t, 99, score, "identical sets cap at 99, never 100")
}

func TestCompatibilityPartialOverlap(t *testing.T) {
	// intersection 1, union 3 -> 50 + floor(50/3) = 66
	score := Compatibility([]string{"hiking", "jazz"}, []string{"jazz", "sailing"})
	assert.Equal(t, 66, score)
}

func TestCompatibilityNoOverlap(t *testing.T) {
	score := Compatibility([]string{"hiking"}, []string{"sailing"})
	assert.Equal(t, 50, score)
}

func TestCompatibilitySymmetric(t *testing.T) {
	a := []string{"hiking", "jazz", "cooking"}
	b := []string{"Jazz", "wine"}
	assert.Equal(t, Compatibility(a, b), Compatibility(b, a))
}

func TestCompatibilityCaseDuplicates(t *testing.T) {
	// "x" and "X" fold to one element: intersection 1, union 2 -> 75,
	// regardless of which side carries the duplicate.
	a := []string{"x", "y"}
	b := []string{"x", "X"}
	assert.Equal(t, 75, Compatibility(a, b))
	assert.Equal(t, 75, Compatibility(b, a))
}

func TestCompatibilityRange(t *testing.T) {
	pairs := [][2][]string{
		{{"a"}, {"a"}},
		{{"a", "b", "c"}, {"d", "e"}},
		{{"a", "b"}, {"b", "c", "d", "e"}},
	}
	for _, p := range pairs {
		score := Compatibility(p[0], p[1])
		assert.GreaterOrEqual(t, score, 50)
		assert.LessOrEqual(t, score, 99)
	}
}

func TestCompatibilityEmptySideFallback(t *testing.T) {
	for i := 0; i < 200; i++ {
		score := Compatibility(nil, []string{"hiking"})
		assert.GreaterOrEqual(t, score, 60)
		assert.Less(t, score, 90)
	}
	for i := 0; i < 200; i++ {
		score := Compatibility([]string{"hiking"}, nil)
		assert.GreaterOrEqual(t, score, 60)
		assert.Less(t, score, 90)
	}
}

func TestAgeAt(t *testing.T) {
	birthday := time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC)

	dayBefore := time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 23, AgeAt(birthday, dayBefore))

	onAnniversary := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 24, AgeAt(birthday, onAnniversary))

	dayAfter := time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 24, AgeAt(birthday, dayAfter))
}
