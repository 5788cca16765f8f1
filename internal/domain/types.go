package domain

// Record is one indexed unit of the source document: a cleaned text chunk
// paired with its embedding vector.
type Record struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Embedding []float64 `json:"embedding"`
}

// Snapshot is the persisted vector store. It is written whole by an ingestion
// run and never mutated afterwards; Model records the embedding model that
// produced every vector in Records.
type Snapshot struct {
	Model   string   `json:"model"`
	Records []Record `json:"records"`
}

// RankedResult is a retrieved chunk with its cosine similarity to the query.
type RankedResult struct {
	Text  string
	Score float64
}

// ContextBundle is the assembled grounding context: a numbered block of full
// chunk texts and a parallel list of citation labels. Citations[i-1] always
// describes the i-th entry of the context block.
type ContextBundle struct {
	Context   string
	Citations []string
}

// Response is the user-facing answer payload. Citations, Note and Err are
// optional diagnostics; Answer is always set.
type Response struct {
	Answer    string   `json:"answer"`
	Citations []string `json:"citations,omitempty"`
	Note      string   `json:"note,omitempty"`
	Err       string   `json:"error,omitempty"`
}

// Message is one role-tagged entry of a generation request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Roles accepted by the generation service contract.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)
