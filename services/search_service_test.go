package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "jose garcia", normalizeInput("  José García "))
	assert.Equal(t, "nguyen van a", normalizeInput("Nguyễn Văn A"))
	assert.Equal(t, "", normalizeInput("   "))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, calculateSimilarity("smith", "smith"))
	assert.Equal(t, 1.0, calculateSimilarity("", ""))

	near := calculateSimilarity("smith", "smyth")
	far := calculateSimilarity("smith", "johnson")
	assert.Greater(t, near, far)
	assert.Greater(t, near, searchSimilarityThreshold)
}
