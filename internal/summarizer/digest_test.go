package summarizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigest_PicksFrequentTopicSentences(t *testing.T) {
	text := "The device charges on its base. Charge the device nightly so the device is ready. " +
		"Unrelated trivia goes here. The charge light turns green when the device is full."
	got := Digest(text, 2)

	assert.Contains(t, got, "device")
	// At most two sentences selected.
	assert.LessOrEqual(t, strings.Count(got, "."), 2)
}

func TestDigest_KeepsDocumentOrder(t *testing.T) {
	text := "First point about charging the device. Second point about charging the device."
	got := Digest(text, 2)
	assert.Less(t, strings.Index(got, "First"), strings.Index(got, "Second"))
}

func TestDigest_NoSentencePunctuation(t *testing.T) {
	assert.Equal(t, "just a fragment", Digest("  just a fragment  ", 3))
}

func TestDigest_DefaultsWhenMaxNonPositive(t *testing.T) {
	text := "One. Two. Three. Four. Five."
	got := Digest(text, 0)
	assert.LessOrEqual(t, strings.Count(got, "."), 3)
}
