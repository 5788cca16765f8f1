package responder

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inquiry/internal/domain"
	"inquiry/internal/hints"
	"inquiry/internal/scope"
)

type stubRetriever struct {
	results []domain.RankedResult
	err     error
}

func (s *stubRetriever) Retrieve(context.Context, string, int) ([]domain.RankedResult, error) {
	return s.results, s.err
}

type stubGenerator struct {
	completion string
	err        error
	gotMsgs    []domain.Message
}

func (s *stubGenerator) Name() string { return "stub" }
func (s *stubGenerator) Complete(_ context.Context, msgs []domain.Message) (string, error) {
	s.gotMsgs = msgs
	return s.completion, s.err
}

func newResponder(ret Retriever, gen domain.Generator) *Responder {
	return New(scope.NewClassifier(scope.DefaultVocabulary()), ret, gen, hints.DefaultTable(), zap.NewNop(), 4)
}

func contextResults() []domain.RankedResult {
	return []domain.RankedResult{
		{Text: "Charge the device on its base with the USB-C charger.", Score: 0.91},
		{Text: "A full charge takes about two hours.", Score: 0.84},
	}
}

func TestAnswer_EmptyQuestion(t *testing.T) {
	resp := newResponder(&stubRetriever{}, &stubGenerator{}).Answer(context.Background(), "   ")
	assert.Equal(t, promptForInputReply, resp.Answer)
	assert.Nil(t, resp.Citations)
	assert.Empty(t, resp.Err)
}

func TestAnswer_GreetingAndRefusalShortCircuit(t *testing.T) {
	gen := &stubGenerator{}
	r := newResponder(&stubRetriever{}, gen)

	assert.Equal(t, greetingReply, r.Answer(context.Background(), "hello").Answer)
	assert.Equal(t, outOfScopeReply, r.Answer(context.Background(), "What's the capital of France?").Answer)
	// Neither path may touch the generator.
	assert.Nil(t, gen.gotMsgs)
}

func TestAnswer_IndicatorLookupShortCircuits(t *testing.T) {
	gen := &stubGenerator{}
	resp := newResponder(&stubRetriever{}, gen).Answer(context.Background(), "Is the LED solid green?")
	assert.Contains(t, resp.Answer, "fully charged")
	assert.Nil(t, gen.gotMsgs)
}

func TestAnswer_SuccessAttachesCitations(t *testing.T) {
	gen := &stubGenerator{completion: "Place it on the base; a full charge takes about two hours. [1][2]"}
	resp := newResponder(&stubRetriever{results: contextResults()}, gen).Answer(context.Background(), "How do I charge the device?")

	assert.Contains(t, resp.Answer, "full charge")
	require.Len(t, resp.Citations, 2)
	assert.True(t, strings.HasPrefix(resp.Citations[0], "[1] "))
	assert.Empty(t, resp.Err)

	// Prompt layout: system prompt, context block, user question.
	require.Len(t, gen.gotMsgs, 3)
	assert.Equal(t, domain.RoleSystem, gen.gotMsgs[0].Role)
	assert.Contains(t, gen.gotMsgs[1].Content, "[1] Charge the device")
	assert.Equal(t, "How do I charge the device?", gen.gotMsgs[2].Content)
}

func TestAnswer_NormalizesCompletion(t *testing.T) {
	gen := &stubGenerator{completion: " “Don’t unplug it mid-session.” [1] "}
	resp := newResponder(&stubRetriever{results: contextResults()}, gen).Answer(context.Background(), "Can I unplug the charger?")
	assert.Equal(t, `"Don't unplug it mid-session." [1]`, resp.Answer)
}

func TestAnswer_EmptyStoreSendsSentinel(t *testing.T) {
	gen := &stubGenerator{completion: "I can help with the Somnair device and support only. For other topics, please contact your clinician."}
	resp := newResponder(&stubRetriever{}, gen).Answer(context.Background(), "warranty question about something obscure")

	require.Len(t, gen.gotMsgs, 3)
	assert.Contains(t, gen.gotMsgs[1].Content, "NO RELEVANT CONTEXT FOUND")
	// The refusal phrase counts as "no usable context" and triggers the
	// fallback chain; a warranty question has a topic hint.
	assert.Contains(t, resp.Answer, "warranty")
	assert.Equal(t, noteHint, resp.Note)
	assert.Nil(t, resp.Citations)
}

func TestAnswer_GeneratorDownFallsBackToHint(t *testing.T) {
	gen := &stubGenerator{err: domain.ErrGenerationService}
	resp := newResponder(&stubRetriever{results: contextResults()}, gen).Answer(context.Background(), "How do I charge the battery?")

	assert.Contains(t, resp.Answer, "charge")
	assert.Equal(t, noteHint, resp.Note)
	assert.NotEmpty(t, resp.Err)
	// Context existed, so citations stay attached even on the fallback path.
	assert.Len(t, resp.Citations, 2)
}

func TestAnswer_GeneratorDownWithoutHintApologizes(t *testing.T) {
	gen := &stubGenerator{err: domain.ErrGenerationService}
	resp := newResponder(&stubRetriever{}, gen).Answer(context.Background(), "Does the device support travel mode?")

	assert.Equal(t, apologyReply, resp.Answer)
	assert.Equal(t, noteFallback, resp.Note)
	assert.NotEmpty(t, resp.Err)
}

func TestAnswer_RetrievalFailureDegradesToNoContext(t *testing.T) {
	gen := &stubGenerator{completion: "Please charge it on the base."}
	r := newResponder(&stubRetriever{err: domain.ErrEmbeddingService}, gen)
	resp := r.Answer(context.Background(), "How do I charge it?")

	assert.Contains(t, gen.gotMsgs[1].Content, "NO RELEVANT CONTEXT FOUND")
	assert.Equal(t, "Please charge it on the base.", resp.Answer)
	assert.Equal(t, noteRetrievalFailed, resp.Note)
	assert.Nil(t, resp.Citations)
}

func TestAnswer_MalformedStoreApologizes(t *testing.T) {
	gen := &stubGenerator{completion: "should never be called"}
	resp := newResponder(&stubRetriever{err: domain.ErrMalformedStore}, gen).Answer(context.Background(), "How do I charge it?")

	assert.Equal(t, apologyReply, resp.Answer)
	assert.Equal(t, noteMalformedStore, resp.Note)
	assert.Nil(t, gen.gotMsgs)
}
