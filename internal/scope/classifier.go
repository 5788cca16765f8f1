// Package scope decides, from the raw question alone, whether a question
// should be answered at all and how: greeting, refusal, a deterministic
// indicator lookup, or the full retrieval path. Every decision here is pure
// string work with no service calls.
package scope

import (
	"regexp"
	"strings"
)

// DecisionKind enumerates the classifier outcomes.
type DecisionKind int

const (
	// DecisionEmpty means the question was blank after trimming.
	DecisionEmpty DecisionKind = iota
	// DecisionGreeting means the question is a bare greeting.
	DecisionGreeting
	// DecisionOutOfScope means no token matched the allowed vocabulary.
	DecisionOutOfScope
	// DecisionAnswer carries a deterministic specialized answer.
	DecisionAnswer
	// DecisionProceed defers to retrieval and generation.
	DecisionProceed
)

// Decision is the tagged result of classification. Answer is set only for
// DecisionAnswer.
type Decision struct {
	Kind   DecisionKind
	Answer string
}

// Vocabulary is the data behind the scope gate: the allowed topic words, the
// greeting words, and the fuzzy-match cutoff. Kept as data so tests and
// config can vary it independently of the logic.
type Vocabulary struct {
	Topics    []string
	Greetings []string
	Cutoff    float64
}

// DefaultVocabulary covers the Somnair device and its support topics.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Topics: []string{
			"somnair", "sleep", "apnea", "device", "therapy", "mouthpiece", "usage", "use",
			"setup", "install", "pair", "pairing", "bluetooth", "app", "charge", "charging",
			"battery", "clean", "cleaning", "maintain", "maintenance", "support", "appointment",
			"book", "reschedule", "cancel", "hours", "contact", "warranty", "replacement",
			"spare", "parts", "manual", "guide", "troubleshoot", "error", "issue",
			"light", "led", "indicator",
		},
		Greetings: []string{
			"hello", "hi", "hey", "greetings", "howdy", "morning", "afternoon", "evening", "yo",
		},
		Cutoff: DefaultCutoff,
	}
}

// DefaultCutoff is the edit-distance ratio above which a token counts as a
// misspelling of a topic word.
const DefaultCutoff = 0.78

// Classifier evaluates questions against one vocabulary.
type Classifier struct {
	vocab     Vocabulary
	topics    map[string]struct{}
	greetings map[string]struct{}
}

func NewClassifier(vocab Vocabulary) *Classifier {
	if vocab.Cutoff <= 0 || vocab.Cutoff > 1 {
		vocab.Cutoff = DefaultCutoff
	}
	return &Classifier{
		vocab:     vocab,
		topics:    toSet(vocab.Topics),
		greetings: toSet(vocab.Greetings),
	}
}

var wordRe = regexp.MustCompile(`[a-zA-Z]+`)

// Tokenize splits a question into lowercase alphabetic word tokens.
func Tokenize(q string) []string {
	return wordRe.FindAllString(strings.ToLower(q), -1)
}

// Classify produces exactly one Decision for the question.
func (c *Classifier) Classify(question string) Decision {
	q := strings.TrimSpace(question)
	if q == "" {
		return Decision{Kind: DecisionEmpty}
	}
	tokens := Tokenize(q)

	onTopic := false
	for _, tok := range tokens {
		if c.matchesTopic(tok) {
			onTopic = true
			break
		}
	}
	if !onTopic {
		for _, tok := range tokens {
			if _, ok := c.greetings[tok]; ok {
				return Decision{Kind: DecisionGreeting}
			}
		}
		return Decision{Kind: DecisionOutOfScope}
	}

	if answer, ok := lookupIndicator(tokens); ok {
		return Decision{Kind: DecisionAnswer, Answer: answer}
	}
	return Decision{Kind: DecisionProceed}
}

func (c *Classifier) matchesTopic(tok string) bool {
	if _, ok := c.topics[tok]; ok {
		return true
	}
	for _, topic := range c.vocab.Topics {
		if Ratio(tok, topic) >= c.vocab.Cutoff {
			return true
		}
	}
	return false
}

func toSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
