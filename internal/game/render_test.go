package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	s := New(Easy, "CAT")
	for _, g := range []string{"z", "c", "q"} {
		_, err := s.ApplyGuess(g)
		require.NoError(t, err)
	}

	frame := Render(s, RenderOptions{})
	assert.Equal(t, strings.Join([]string{
		"Word: C _ _",
		"Lives used: 2/10",
		stages[1],
		"Incorrect letters: z q",
		"",
	}, "\n"), frame)
	assert.NotContains(t, frame, "Welcome")

	assert.True(t, strings.HasPrefix(Render(s, RenderOptions{Banner: true}), Banner()))
}

func TestRender_NoArtBeforeFirstMiss(t *testing.T) {
	s := New(Easy, "sun")
	frame := Render(s, RenderOptions{})
	assert.Equal(t, "Word: _ _ _\nLives used: 0/10\nIncorrect letters: \n", frame)
}

func TestRender_DoesNotMutate(t *testing.T) {
	s := New(Easy, "sun")
	_, err := s.ApplyGuess("x")
	require.NoError(t, err)
	before := *s
	_ = Render(s, RenderOptions{Banner: true})
	assert.Equal(t, before.LivesUsed, s.LivesUsed)
	assert.Equal(t, before.Incorrect, s.Incorrect)
	assert.Equal(t, "___", s.Mask())
}

func TestStage(t *testing.T) {
	assert.Empty(t, Stage(0))
	assert.Contains(t, Stage(1), "+-----+")
	assert.NotContains(t, Stage(1), "O")
	assert.Contains(t, Stage(MaxLives), "X")

	// Every stage draws at least as much as the previous one.
	ink := func(s string) int { return len(strings.Join(strings.Fields(s), "")) }
	for i := 2; i <= MaxLives; i++ {
		assert.GreaterOrEqual(t, ink(Stage(i)), ink(Stage(i-1)), "stage %d", i)
		assert.NotEqual(t, Stage(i-1), Stage(i), "stage %d", i)
	}

	assert.Panics(t, func() { Stage(MaxLives + 1) })
	assert.Panics(t, func() { Stage(-1) })
}

func TestSummary(t *testing.T) {
	s := New(Easy, "CAT")
	assert.Empty(t, Summary(s))
	_, err := s.ApplyGuess("cat")
	require.NoError(t, err)
	assert.Equal(t, "You won! The word was CAT.", Summary(s))
}
