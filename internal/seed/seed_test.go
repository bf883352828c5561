package seed

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooks(t *testing.T) {
	books := Books()

	titles := map[string]bool{}
	for _, b := range books {
		assert.NotEmpty(t, b.Title)
		assert.Greater(t, b.Price, 0.0)
		titles[b.Title] = true
	}
	for _, want := range []string{"The Hobbit", "Moby Dick", "1984", "Animal Farm"} {
		assert.True(t, titles[want], "missing %q", want)
	}
	assert.GreaterOrEqual(t, len(books), 10, "enough books for two pages of five")
}

func TestRandom(t *testing.T) {
	a := Random(rand.New(rand.NewSource(42)), 50)
	b := Random(rand.New(rand.NewSource(42)), 50)

	assert.Len(t, a, 50)
	assert.Equal(t, a, b, "same seed, same books")
	for _, bk := range a {
		assert.GreaterOrEqual(t, bk.PublishedYear, 1900)
		assert.Less(t, bk.PublishedYear, 2025)
		assert.GreaterOrEqual(t, bk.Price, 4.99)
	}
}
