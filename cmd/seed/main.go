package main

import (
	"context"
	"log"
	"os"
	"time"

	"bevgenie-be/internal/entity"
	"bevgenie-be/internal/repository/specification"
	"bevgenie-be/internal/repository/unitofwork"
	"bevgenie-be/pkg/database"
	"bevgenie-be/pkg/embedding"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type seedChunk struct {
	Content    string
	SourceType string
	SourceURL  string
	Tags       []string
}

// Starter knowledge base: product copy and case-study material the page
// generator grounds its claims in.
var seedChunks = []seedChunk{
	{
		Content:    "BevGenie's field execution dashboard surfaces display compliance, shelf placement, and out-of-stock rates per account, updated from rep check-ins within minutes. Suppliers using it report finding execution gaps in 38% of accounts they believed were compliant.",
		SourceType: "case_study",
		SourceURL:  "https://bevgenie.example.com/resources/field-execution",
		Tags:       []string{"sales", "supplier", "beer"},
	},
	{
		Content:    "A mid-size spirits supplier measured a 22% lift in velocity at accounts where reps followed BevGenie's suggested visit cadence, with payback on the subscription inside two quarters.",
		SourceType: "case_study",
		SourceURL:  "https://bevgenie.example.com/resources/spirits-roi",
		Tags:       []string{"sales", "supplier", "spirits"},
	},
	{
		Content:    "BevGenie's market assessment module ranks territories by untapped velocity using retail scan data, distributor depletions, and demographic overlays, so marketing teams can prioritize launch markets without commissioning custom research.",
		SourceType: "product",
		SourceURL:  "https://bevgenie.example.com/product/market-assessment",
		Tags:       []string{"marketing", "supplier", "wine"},
	},
	{
		Content:    "Retail buyers use BevGenie's assortment comparison to benchmark their beer, wine, and spirits sets against nearby competitors, including pricing position and brand coverage gaps.",
		SourceType: "product",
		SourceURL:  "https://bevgenie.example.com/product/assortment",
		Tags:       []string{"retailer", "beer", "wine", "spirits"},
	},
	{
		Content:    "Implementation takes most teams under two weeks: connect distributor depletion feeds, import the account universe, and roll out the rep mobile app. No IT project is required; BevGenie's onboarding team handles the data mapping.",
		SourceType: "guide",
		SourceURL:  "https://bevgenie.example.com/resources/onboarding",
		Tags:       []string{"supplier", "retailer"},
	},
	{
		Content:    "Unlike generic CRM tools, BevGenie is built around three-tier beverage distribution: depletions, accounts, and retail execution live in one model, so ROI reporting ties rep activity directly to case movement.",
		SourceType: "comparison",
		SourceURL:  "https://bevgenie.example.com/resources/vs-crm",
		Tags:       []string{"sales", "supplier"},
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}
	apiKey := os.Getenv("GOOGLE_GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("Error: GOOGLE_GEMINI_API_KEY is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	provider := embedding.NewGeminiProvider(apiKey)
	uowFactory := unitofwork.NewRepositoryFactory(db)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	log.Printf("Seeding %d knowledge chunks...", len(seedChunks))

	// Reseeding replaces earlier runs per source type instead of piling up
	// duplicate chunks.
	sourceTypes := make(map[string]struct{})
	for _, chunk := range seedChunks {
		sourceTypes[chunk.SourceType] = struct{}{}
	}
	for sourceType := range sourceTypes {
		existing, err := uow.KnowledgeRepository().Count(ctx, specification.BySourceType{SourceType: sourceType})
		if err != nil {
			log.Fatalf("Error: Failed to count %q chunks: %v", sourceType, err)
		}
		if existing == 0 {
			continue
		}
		log.Printf("Replacing %d existing %q chunks", existing, sourceType)
		if err := uow.KnowledgeRepository().DeleteBySourceType(ctx, sourceType); err != nil {
			log.Fatalf("Error: Failed to delete %q chunks: %v", sourceType, err)
		}
	}

	var entities []*entity.KnowledgeChunk
	for i, chunk := range seedChunks {
		res, err := provider.Generate(ctx, chunk.Content, embedding.TaskRetrievalDocument)
		if err != nil {
			log.Fatalf("Error: Failed to embed chunk %d: %v", i, err)
		}
		entities = append(entities, &entity.KnowledgeChunk{
			Id:             uuid.New(),
			Content:        chunk.Content,
			SourceType:     chunk.SourceType,
			SourceURL:      chunk.SourceURL,
			Tags:           chunk.Tags,
			EmbeddingValue: res.Embedding.Values,
			CreatedAt:      time.Now(),
		})
	}

	if err := uow.KnowledgeRepository().CreateBulk(ctx, entities); err != nil {
		log.Fatalf("Error: Failed to insert chunks: %v", err)
	}

	log.Printf("Success: Seeded %d knowledge chunks.", len(entities))
}
