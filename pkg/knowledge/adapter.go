package knowledge

import "context"

// Snippet is one retrieved knowledge fragment, ranked by similarity.
type Snippet struct {
	Content    string  `json:"content"`
	SourceType string  `json:"source_type"`
	SourceURL  string  `json:"source_url,omitempty"`
	Similarity float64 `json:"similarity"` // 0-1, results arrive sorted descending
}

// Searcher wraps the external hybrid text+vector search capability. Results
// are best-effort: an empty slice is a normal outcome, and consumers never
// treat retrieval failure as fatal.
type Searcher interface {
	Search(ctx context.Context, query string, personaTags []string, limit int) ([]Snippet, error)
}
