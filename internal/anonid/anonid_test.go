package anonid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_Format(t *testing.T) {
	id := Generate()

	assert.True(t, strings.HasPrefix(id, "APP-"), "identifier should carry the APP prefix: %s", id)
	assert.Equal(t, id, strings.ToUpper(id), "identifier should be uppercase")

	parts := strings.Split(id, "-")
	assert.Len(t, parts, 3)
	assert.Len(t, parts[2], randomChars)

	for _, r := range parts[2] {
		assert.Contains(t, alphabet, string(r), "random part should stay inside the fixed alphabet")
	}
}

func TestGenerate_NoCollisions(t *testing.T) {
	// Burst of generations inside the same millisecond must still be unique
	// with overwhelming probability given 40 random bits.
	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		id := Generate()
		assert.False(t, seen[id], "duplicate identifier generated: %s", id)
		seen[id] = true
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "APP-ABC-123", Normalize("  app-abc-123 "))
	assert.Equal(t, "APP-ABC-123", Normalize("APP-ABC-123"))
}
