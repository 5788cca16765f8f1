package domain

import "errors"

// Failure taxonomy shared across the pipeline. Errors returned by components
// wrap one of these sentinels so callers can branch with errors.Is without
// depending on concrete backend types.
var (
	// ErrEmbeddingService marks an unreachable or malformed response from the
	// embedding service. Callers must not substitute zero vectors.
	ErrEmbeddingService = errors.New("embedding service failure")

	// ErrGenerationService marks a failed completion call.
	ErrGenerationService = errors.New("generation service failure")

	// ErrMalformedStore marks a snapshot that exists but cannot be decoded.
	// Fatal for the request that hit it; a missing store is not an error.
	ErrMalformedStore = errors.New("malformed vector store")

	// ErrIngestion marks a failed ingestion run (unreadable source document,
	// empty chunk set). Embedding failures propagate unchanged.
	ErrIngestion = errors.New("ingestion failure")
)
