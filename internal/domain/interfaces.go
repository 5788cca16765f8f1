package domain

import "context"

// Embedder converts a batch of texts into fixed-dimension vectors, one per
// input, preserving order. All vectors from one Embedder share a model
// identifier reported by Model.
type Embedder interface {
	Name() string
	Model() string
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)
}

// Generator produces a single text completion for an ordered list of
// role-tagged messages. It is the only unreliable collaborator at request
// time and callers must be prepared for it to fail.
type Generator interface {
	Name() string
	Complete(ctx context.Context, messages []Message) (string, error)
}

// SnapshotStore persists the vector store as an immutable snapshot. Replace
// must be atomic so concurrent readers never observe a partial store; Load
// reports a missing store with fs.ErrNotExist and an undecodable one with
// ErrMalformedStore.
type SnapshotStore interface {
	Load() (*Snapshot, error)
	Replace(snap *Snapshot) error
}
