// Package retriever ranks stored chunks against a query by cosine
// similarity. The scan is exhaustive; the store holds tens to low hundreds
// of chunks, so an approximate index would be overhead without payoff. A
// larger corpus can swap in one behind the same interface.
package retriever

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"sort"

	"inquiry/internal/domain"
)

// Retriever embeds the query once and scores every stored vector.
type Retriever struct {
	store    domain.SnapshotStore
	embedder domain.Embedder
}

func New(store domain.SnapshotStore, embedder domain.Embedder) *Retriever {
	return &Retriever{store: store, embedder: embedder}
}

// Retrieve returns the top-min(k, store size) chunks sorted by descending
// similarity, ties kept in store order. A missing store yields an empty
// result, not an error; a malformed store or an embedding failure propagates.
// The stored vectors must come from the same model as the query embedder,
// with matching dimensions; anything else is an error, never a silent score.
func (r *Retriever) Retrieve(ctx context.Context, query string, k int) ([]domain.RankedResult, error) {
	if k < 1 {
		k = 1
	}
	snap, err := r.store.Load()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	if len(snap.Records) == 0 {
		return nil, nil
	}
	if model := r.embedder.Model(); snap.Model != "" && snap.Model != model {
		return nil, fmt.Errorf("store was embedded with model %q, query embedder is %q: re-ingest required", snap.Model, model)
	}

	vectors, err := r.embedder.EmbedBatch(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	q := vectors[0]

	results := make([]domain.RankedResult, len(snap.Records))
	for i, rec := range snap.Records {
		if len(rec.Embedding) != len(q) {
			return nil, fmt.Errorf("record %s has %d dimensions, query vector has %d: re-ingest required", rec.ID, len(rec.Embedding), len(q))
		}
		results[i] = domain.RankedResult{Text: rec.Text, Score: Cosine(q, rec.Embedding)}
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if k > len(results) {
		k = len(results)
	}
	return results[:k], nil
}

const epsilon = 1e-9

// Cosine computes (a·b)/(‖a‖‖b‖) over the shared prefix of the two vectors,
// with an epsilon guard against zero norms. Result is in [-1, 1].
func Cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	denom := math.Sqrt(na) * math.Sqrt(nb)
	if denom < epsilon {
		denom = epsilon
	}
	return dot / denom
}
