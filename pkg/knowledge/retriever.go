package knowledge

import (
	"context"
	"log"

	"bevgenie-be/internal/repository/unitofwork"
	"bevgenie-be/pkg/embedding"
)

// Config encapsulates retrieval parameters.
type Config struct {
	DBThreshold float64
	TopK        int
}

func DefaultConfig() Config {
	return Config{
		DBThreshold: 0.3,
		TopK:        5,
	}
}

// Retriever executes hybrid search against the knowledge_chunks table:
// pgvector cosine similarity blended with a lexical match boost.
type Retriever struct {
	embeddingProvider embedding.Provider
	uowFactory        unitofwork.RepositoryFactory
	config            Config
	logger            *log.Logger
}

func NewRetriever(
	embeddingProvider embedding.Provider,
	uowFactory unitofwork.RepositoryFactory,
	logger *log.Logger,
) *Retriever {
	return &Retriever{
		embeddingProvider: embeddingProvider,
		uowFactory:        uowFactory,
		config:            DefaultConfig(),
		logger:            logger,
	}
}

// Search embeds the query and runs the hybrid search. Failures degrade to an
// empty result set after logging; the caller proceeds with an empty
// knowledge context.
func (r *Retriever) Search(ctx context.Context, query string, personaTags []string, limit int) ([]Snippet, error) {
	if limit <= 0 || limit > r.config.TopK {
		limit = r.config.TopK
	}

	embeddingRes, err := r.embeddingProvider.Generate(ctx, query, embedding.TaskRetrievalQuery)
	if err != nil {
		r.logger.Printf("[WARN] Query embedding failed, returning empty knowledge context: %v", err)
		return nil, nil
	}

	uow := r.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.KnowledgeRepository().HybridSearch(
		ctx,
		embeddingRes.Embedding.Values,
		query,
		personaTags,
		limit,
		r.config.DBThreshold,
	)
	if err != nil {
		r.logger.Printf("[WARN] Hybrid search failed, returning empty knowledge context: %v", err)
		return nil, nil
	}

	snippets := make([]Snippet, 0, len(scored))
	for _, s := range scored {
		snippets = append(snippets, Snippet{
			Content:    s.Chunk.Content,
			SourceType: s.Chunk.SourceType,
			SourceURL:  s.Chunk.SourceURL,
			Similarity: s.Similarity,
		})
	}
	return snippets, nil
}
