package scope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Decisions(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())
	cases := []struct {
		question string
		want     DecisionKind
	}{
		{"", DecisionEmpty},
		{"   \t ", DecisionEmpty},
		{"hello", DecisionGreeting},
		{"Hey there!", DecisionGreeting},
		{"What's the capital of France?", DecisionOutOfScope},
		{"Tell me a joke", DecisionOutOfScope},
		{"How do I pair my device via Bluetooth?", DecisionProceed},
		{"My battery drains overnight", DecisionProceed},
		// Greeting words lose to topic words.
		{"Hi, how do I charge the device?", DecisionProceed},
		{"Is the LED solid green?", DecisionAnswer},
	}
	for _, tc := range cases {
		t.Run(tc.question, func(t *testing.T) {
			assert.Equal(t, tc.want, c.Classify(tc.question).Kind)
		})
	}
}

func TestClassify_FuzzyTopicMatch(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())
	// Misspellings within the cutoff still count as on-topic.
	assert.Equal(t, DecisionProceed, c.Classify("how do I connect blutooth").Kind)
	assert.Equal(t, DecisionProceed, c.Classify("my battary wont hold power").Kind)
}

func TestClassify_CutoffIsConfigurable(t *testing.T) {
	strict := NewClassifier(Vocabulary{Topics: []string{"bluetooth"}, Cutoff: 0.99})
	assert.Equal(t, DecisionOutOfScope, strict.Classify("blutooth problems").Kind)

	loose := NewClassifier(Vocabulary{Topics: []string{"bluetooth"}, Cutoff: 0.7})
	assert.Equal(t, DecisionProceed, loose.Classify("blutooth problems").Kind)
}

func TestClassify_IndicatorAnswers(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())

	d := c.Classify("Is the LED solid green?")
	require.Equal(t, DecisionAnswer, d.Kind)
	assert.Contains(t, d.Answer, "fully charged")

	d = c.Classify("Why is the light blinking red?")
	require.Equal(t, DecisionAnswer, d.Kind)
	assert.Contains(t, d.Answer, "critically low")

	// Color without a state returns both known meanings.
	d = c.Classify("What does the blue light mean?")
	require.Equal(t, DecisionAnswer, d.Kind)
	assert.Contains(t, d.Answer, "connected")
	assert.Contains(t, d.Answer, "pairing mode")

	// Orange is a synonym for amber.
	d = c.Classify("The status light is steady orange")
	require.Equal(t, DecisionAnswer, d.Kind)
	assert.Contains(t, strings.ToLower(d.Answer), "battery is low")
}

func TestClassify_IndicatorFallsThrough(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())

	// Two distinct colors: ambiguous, defer to retrieval.
	assert.Equal(t, DecisionProceed, c.Classify("the light went from green to red").Kind)
	// No indicator-context word.
	assert.Equal(t, DecisionProceed, c.Classify("the device turned green during setup").Kind)
	// Unmapped color.
	assert.Equal(t, DecisionProceed, c.Classify("what does a purple light mean on the device").Kind)
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"what", "s", "the", "led", "for"}, Tokenize("What's the LED for?"))
	assert.Empty(t, Tokenize("42 ??"))
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 1.0, Ratio("battery", "battery"))
	assert.InDelta(t, 8.0/9.0, Ratio("blutooth", "bluetooth"), 1e-9)
	assert.Less(t, Ratio("france", "warranty"), DefaultCutoff)
	assert.InDelta(t, Ratio("abc", "xyz"), 0.0, 1e-9)
}
