package season

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(m time.Month, d int) time.Time {
	return time.Date(2026, m, d, 12, 0, 0, 0, time.UTC)
}

func TestOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Winter, Of(date(time.January, 15)))
	assert.Equal(t, Winter, Of(date(time.March, 19)))
	assert.Equal(t, Spring, Of(date(time.March, 20)))
	assert.Equal(t, Spring, Of(date(time.June, 20)))
	assert.Equal(t, Summer, Of(date(time.June, 21)))
	assert.Equal(t, Summer, Of(date(time.September, 21)))
	assert.Equal(t, Autumn, Of(date(time.September, 22)))
	assert.Equal(t, Autumn, Of(date(time.December, 20)))
	assert.Equal(t, Winter, Of(date(time.December, 21)))
}

func TestValid(t *testing.T) {
	t.Parallel()

	for _, s := range Order {
		assert.True(t, Valid(s))
	}
	assert.False(t, Valid("monsoon"))
	assert.False(t, Valid(""))
}
