package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedBackoff(t *testing.T) {
	b := Fixed(1500 * time.Millisecond)
	for attempt := 1; attempt <= 3; attempt++ {
		assert.Equal(t, 1500*time.Millisecond, b(attempt))
	}
}

func TestLinearBackoff(t *testing.T) {
	b := Linear(1500 * time.Millisecond)
	assert.Equal(t, 1500*time.Millisecond, b(1))
	assert.Equal(t, 3000*time.Millisecond, b(2))
	assert.Equal(t, 4500*time.Millisecond, b(3))
}

func TestExponentialBackoff(t *testing.T) {
	b := Exponential(time.Second, 10*time.Second)
	assert.Equal(t, time.Second, b(1))
	assert.Equal(t, 2*time.Second, b(2))
	assert.Equal(t, 4*time.Second, b(3))
	assert.Equal(t, 8*time.Second, b(4))
	assert.Equal(t, 10*time.Second, b(5), "capped at max")
	assert.Equal(t, 10*time.Second, b(20), "stays capped")
}

func TestBackoff_NeverDecreases(t *testing.T) {
	for name, b := range map[string]Backoff{
		"fixed":       Fixed(1500 * time.Millisecond),
		"linear":      Linear(1500 * time.Millisecond),
		"exponential": DefaultBackoff,
	} {
		prev := time.Duration(0)
		for attempt := 1; attempt <= 8; attempt++ {
			d := b(attempt)
			assert.GreaterOrEqual(t, d, prev, "%s backoff decreased at attempt %d", name, attempt)
			prev = d
		}
	}
}
