// Package hashing provides a deterministic local embedder based on token
// feature hashing. It needs no external service or corpus preparation, which
// makes it the backend for offline demos and tests.
package hashing

import (
	"context"
	"hash/fnv"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Embedder hashes lowercase word tokens into a fixed number of buckets and
// L2-normalizes the result. Not a semantic embedding; similarity degrades to
// weighted token overlap, which is enough for a small FAQ corpus.
type Embedder struct {
	dim     int
	tokenRe *regexp.Regexp
}

const defaultDim = 256

func NewEmbedder(dim int) *Embedder {
	if dim <= 0 {
		dim = defaultDim
	}
	return &Embedder{
		dim:     dim,
		tokenRe: regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`),
	}
}

func (e *Embedder) Name() string { return "hashing" }

// Model identifies the configuration so snapshots embed-checked against a
// differently sized embedder are caught at the store header.
func (e *Embedder) Model() string { return "hashing-v1-" + strconv.Itoa(e.dim) }

// EmbedBatch never fails; it exists to satisfy the Embedder contract.
func (e *Embedder) EmbedBatch(_ context.Context, texts []string) ([][]float64, error) {
	vectors := make([][]float64, len(texts))
	for i, t := range texts {
		vectors[i] = e.embed(t)
	}
	return vectors, nil
}

func (e *Embedder) embed(text string) []float64 {
	vec := make([]float64, e.dim)
	for _, tok := range e.tokenRe.FindAllString(strings.ToLower(text), -1) {
		h := fnv.New32a()
		_, _ = h.Write([]byte(tok))
		sum := h.Sum32()
		bucket := int(sum % uint32(e.dim))
		// Use one hash bit as the sign so collisions partially cancel.
		sign := 1.0
		if sum&(1<<31) != 0 {
			sign = -1.0
		}
		vec[bucket] += sign
	}
	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}
