package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pradnya8113/expenses/internal/category"
	"github.com/pradnya8113/expenses/internal/dialogue"
	"github.com/pradnya8113/expenses/internal/extract"
	"github.com/pradnya8113/expenses/internal/logger"
	"github.com/pradnya8113/expenses/internal/store"
)

func main() {
	var (
		provider  = flag.String("provider", "gemini", "extraction provider: gemini or openai")
		model     = flag.String("model", "", "model name override (defaults per provider)")
		storePath = flag.String("store", "expenses.json", "path of the JSON expense store")

		gcsBucket = flag.String("gcs-bucket", os.Getenv("GCS_BUCKET"), "GCS bucket for the expense store (or set GCS_BUCKET); overrides -store")
		gcsObject = flag.String("gcs-object", "expenses.json", "GCS object name for the expense store")
		gcsCreds  = flag.String("gcs-credentials", "", "credentials file for GCS (default: application default credentials)")

		bqProject = flag.String("bq-project", "", "BigQuery project; with -bq-dataset and -bq-table, records are streamed there instead")
		bqDataset = flag.String("bq-dataset", "finance", "BigQuery dataset")
		bqTable   = flag.String("bq-table", "expenses", "BigQuery table")
	)
	flag.Parse()

	log := logger.New()
	ctx := logger.WithContext(context.Background(), log)

	categories := category.NewRegistry()

	extractor, err := newExtractor(ctx, *provider, *model, categories)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create extractor")
	}

	recordStore, err := newStore(ctx, log, *storePath, *gcsBucket, *gcsObject, *gcsCreds, *bqProject, *bqDataset, *bqTable)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create record store")
	}

	controller := dialogue.NewController(extractor, recordStore, categories)

	fmt.Println("💬 Expense Manager (type 'exit' to quit)")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		switch strings.ToLower(input) {
		case "exit", "quit", "q":
			fmt.Println("👋 Goodbye!")
			return
		}

		reply, err := controller.Handle(ctx, input)
		if err != nil {
			log.Error().Err(err).Msg("Could not save the expense")
			fmt.Println("⚠️ Something went wrong saving that expense. Say 'yes' to try again, anything else to cancel.")
			continue
		}
		fmt.Println("Agent:", reply)
	}
}

func newExtractor(ctx context.Context, provider, model string, categories *category.Registry) (dialogue.Extractor, error) {
	switch provider {
	case "gemini":
		return extract.NewGemini(ctx, model, categories)
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
		return extract.NewOpenAI(apiKey, os.Getenv("OPENAI_BASE_URL"), model, categories), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (want gemini or openai)", provider)
	}
}

func newStore(ctx context.Context, log zerolog.Logger, path, gcsBucket, gcsObject, gcsCreds, bqProject, bqDataset, bqTable string) (dialogue.RecordStore, error) {
	if bqProject != "" {
		log.Info().Str("project", bqProject).Str("dataset", bqDataset).Str("table", bqTable).Msg("Using BigQuery expense sink")
		return store.NewBigQueryStore(ctx, bqProject, bqDataset, bqTable)
	}
	if gcsBucket != "" {
		log.Info().Str("bucket", gcsBucket).Str("object", gcsObject).Msg("Using GCS expense store")
		return store.NewGCSStore(ctx, gcsBucket, gcsObject, gcsCreds)
	}

	s := store.NewFileStore(path)
	if records, err := s.Load(ctx); err == nil {
		log.Info().Str("path", path).Int("records", len(records)).Msg("Using file expense store")
	}
	return s, nil
}
