package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/hangman/internal/game"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	assert.Equal(t, "2026-10-18", DateKey(time.Date(2026, 10, 19, 5, 0, 0, 0, loc)))
}

func TestWordIndex(t *testing.T) {
	day := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	a := WordIndex(day, "salt", 20)
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 20)
	assert.Equal(t, a, WordIndex(day.Add(3*time.Hour), "salt", 20), "same UTC day, same index")
	assert.Equal(t, 0, WordIndex(day, "salt", 0))
	assert.Equal(t, 0, WordIndex(day, "salt", 1))

	// Across a month of days and two salts the index is not constant.
	seen := map[int]bool{}
	for i := 0; i < 30; i++ {
		seen[WordIndex(day.AddDate(0, 0, i), "salt", 20)] = true
		seen[WordIndex(day.AddDate(0, 0, i), "pepper", 20)] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestPicker_IsGamePicker(t *testing.T) {
	var p game.Picker = Picker{Salt: "s", Date: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, WordIndex(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), "s", 7), p.Intn(7))
}
