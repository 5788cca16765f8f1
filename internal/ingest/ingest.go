// Package ingest builds the vector store from a source document: chunk,
// embed in one batch, assign ids, atomically replace the snapshot. Runs
// out-of-band from query serving; a failed run leaves the previous snapshot
// untouched.
package ingest

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"inquiry/internal/chunker"
	"inquiry/internal/domain"
)

// Ingestor wires the chunker, the embedder and the snapshot store.
type Ingestor struct {
	splitter *chunker.Splitter
	embedder domain.Embedder
	store    domain.SnapshotStore
	log      *zap.Logger
}

func New(splitter *chunker.Splitter, embedder domain.Embedder, store domain.SnapshotStore, log *zap.Logger) *Ingestor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ingestor{splitter: splitter, embedder: embedder, store: store, log: log}
}

// Run ingests the document at docPath and returns the number of records
// written. Source problems wrap domain.ErrIngestion; embedding failures
// propagate unchanged.
func (ing *Ingestor) Run(ctx context.Context, docPath string) (int, error) {
	data, err := os.ReadFile(docPath)
	if err != nil {
		return 0, fmt.Errorf("%w: read %s: %v", domain.ErrIngestion, docPath, err)
	}
	chunks := ing.splitter.Split(string(data))
	if len(chunks) == 0 {
		return 0, fmt.Errorf("%w: %s produced no chunks", domain.ErrIngestion, docPath)
	}

	vectors, err := ing.embedder.EmbedBatch(ctx, chunks)
	if err != nil {
		return 0, err
	}
	if len(vectors) != len(chunks) {
		return 0, fmt.Errorf("%w: %d chunks but %d vectors", domain.ErrIngestion, len(chunks), len(vectors))
	}

	records := make([]domain.Record, len(chunks))
	for i, text := range chunks {
		records[i] = domain.Record{ID: uuid.NewString(), Text: text, Embedding: vectors[i]}
	}
	snap := &domain.Snapshot{Model: ing.embedder.Model(), Records: records}
	if err := ing.store.Replace(snap); err != nil {
		return 0, fmt.Errorf("%w: persist snapshot: %v", domain.ErrIngestion, err)
	}
	ing.log.Info("ingested document",
		zap.String("doc", docPath),
		zap.String("model", snap.Model),
		zap.Int("records", len(records)),
	)
	return len(records), nil
}
