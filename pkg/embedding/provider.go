package embedding

import "context"

// Task types understood by the embedding backends.
const (
	TaskRetrievalQuery    = "RETRIEVAL_QUERY"
	TaskRetrievalDocument = "RETRIEVAL_DOCUMENT"
)

type Response struct {
	Embedding struct {
		Values []float32 `json:"values"`
	} `json:"embedding"`
}

// Provider generates text embeddings for the hybrid knowledge search.
type Provider interface {
	Generate(ctx context.Context, text string, taskType string) (*Response, error)
}
