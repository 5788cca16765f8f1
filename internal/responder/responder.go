// Package responder sequences a question through scope classification,
// retrieval, generation and the fallback chain, and normalizes the final
// answer text. It owns no transport concerns; the server and the console
// client both sit on top of it.
package responder

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"inquiry/internal/domain"
	"inquiry/internal/hints"
	"inquiry/internal/retriever"
	"inquiry/internal/scope"
	"inquiry/internal/snippet"
	"inquiry/internal/textutil"
)

// Retriever is the responder-facing subset of the retrieval layer.
type Retriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]domain.RankedResult, error)
}

var _ Retriever = (*retriever.Retriever)(nil)

// Responder answers one question per call. All collaborators are injected;
// nothing here holds mutable state, so one Responder serves any number of
// concurrent requests.
type Responder struct {
	classifier *scope.Classifier
	retriever  Retriever
	generator  domain.Generator
	hints      *hints.Table
	log        *zap.Logger
	topK       int
}

func New(classifier *scope.Classifier, ret Retriever, gen domain.Generator, table *hints.Table, log *zap.Logger, topK int) *Responder {
	if topK < 1 {
		topK = 4
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Responder{
		classifier: classifier,
		retriever:  ret,
		generator:  gen,
		hints:      table,
		log:        log,
		topK:       topK,
	}
}

// Answer runs the full decision chain for question. It always produces a
// textual answer; failures along the way degrade into fallback replies with
// diagnostic fields instead of errors.
func (r *Responder) Answer(ctx context.Context, question string) domain.Response {
	q := strings.TrimSpace(question)

	switch d := r.classifier.Classify(q); d.Kind {
	case scope.DecisionEmpty:
		return domain.Response{Answer: promptForInputReply}
	case scope.DecisionGreeting:
		r.log.Info("greeting", zap.String("question", q))
		return domain.Response{Answer: greetingReply}
	case scope.DecisionOutOfScope:
		r.log.Info("out of scope", zap.String("question", q))
		return domain.Response{Answer: outOfScopeReply}
	case scope.DecisionAnswer:
		r.log.Info("indicator lookup", zap.String("question", q))
		return domain.Response{Answer: d.Answer}
	}

	bundle, note := r.buildContext(ctx, q)
	if note == noteMalformedStore {
		return domain.Response{Answer: apologyReply, Note: note}
	}

	completion, err := r.generator.Complete(ctx, r.buildMessages(bundle, q))
	if err != nil {
		r.log.Error("generation failed", zap.String("question", q), zap.Error(err))
		resp := r.fallback(q)
		resp.Err = err.Error()
		if resp.Note == "" {
			resp.Note = note
		}
		resp.Citations = citationsFor(bundle)
		return resp
	}

	answer := textutil.NormalizePunct(completion)
	if answer == "" || saysNoContext(answer) {
		r.log.Info("generator found no context", zap.String("question", q))
		resp := r.fallback(q)
		if resp.Note == "" {
			resp.Note = note
		}
		resp.Citations = citationsFor(bundle)
		return resp
	}

	return domain.Response{Answer: answer, Citations: citationsFor(bundle), Note: note}
}

// Diagnostic note values.
const (
	noteMalformedStore  = "store_unreadable"
	noteRetrievalFailed = "retrieval_failed"
	noteFallback        = "fallback"
	noteHint            = "topic_hint"
)

// buildContext retrieves and assembles grounding context. Embedding-service
// failures degrade to an empty bundle; an unreadable store is fatal for the
// request and reported via the returned note.
func (r *Responder) buildContext(ctx context.Context, q string) (domain.ContextBundle, string) {
	results, err := r.retriever.Retrieve(ctx, q, r.topK)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedStore) {
			r.log.Error("vector store unreadable", zap.Error(err))
			return domain.ContextBundle{}, noteMalformedStore
		}
		r.log.Error("retrieval failed", zap.String("question", q), zap.Error(err))
		return domain.ContextBundle{}, noteRetrievalFailed
	}
	return snippet.Assemble(results), ""
}

func (r *Responder) buildMessages(bundle domain.ContextBundle, q string) []domain.Message {
	contextBlock := bundle.Context
	if contextBlock == "" {
		contextBlock = noContextSentinel
	}
	return []domain.Message{
		{Role: domain.RoleSystem, Content: systemPrompt},
		{Role: domain.RoleSystem, Content: "CONTEXT:\n" + contextBlock},
		{Role: domain.RoleUser, Content: q},
	}
}

// fallback tries the topic-hint table before the generic apology.
func (r *Responder) fallback(q string) domain.Response {
	if text, ok := r.hints.Lookup(q); ok {
		return domain.Response{Answer: text, Note: noteHint}
	}
	return domain.Response{Answer: apologyReply, Note: noteFallback}
}

// citationsFor returns citations only when there was real context; labels
// for an empty block would point at nothing.
func citationsFor(bundle domain.ContextBundle) []string {
	if bundle.Context == "" {
		return nil
	}
	return bundle.Citations
}

func saysNoContext(answer string) bool {
	lower := strings.ToLower(answer)
	for _, marker := range noContextMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
