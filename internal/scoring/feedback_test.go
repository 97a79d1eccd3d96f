package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFeedback(t *testing.T) {
	t.Parallel()
	fb := newFeedback()
	assert.NotNil(t, fb.Strengths)
	assert.NotNil(t, fb.Improvements)
	assert.NotNil(t, fb.Errors)
	assert.Empty(t, fb.Strengths)
}

func TestUniqueInOrder(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"a", "b", "c"}, uniqueInOrder([]string{"a", "b", "a", "c", "b"}))
	assert.Empty(t, uniqueInOrder(nil))
}

func TestTruncateRunes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "hél", truncateRunes("héllo", 3))
	assert.Equal(t, "héllo", truncateRunes("héllo", 5))
	assert.Equal(t, "short", truncateRunes("short", 50))
}

func TestClampScore(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0.0, clampScore(-1))
	assert.Equal(t, 10.0, clampScore(11))
	assert.Equal(t, 5.5, clampScore(5.5))
}

func TestRound1(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 7.3, round1(7.25))
	assert.Equal(t, 7.2, round1(7.24))
	assert.Equal(t, 90.0, round1(90))
}
