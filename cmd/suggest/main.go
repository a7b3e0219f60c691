package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/finbooks/entry-suggest/internal/ai"
	"github.com/finbooks/entry-suggest/internal/catalog"
	"github.com/finbooks/entry-suggest/internal/classify"
	"github.com/finbooks/entry-suggest/internal/config"
	"github.com/finbooks/entry-suggest/internal/domain"
	"github.com/finbooks/entry-suggest/internal/engine"
	"github.com/finbooks/entry-suggest/internal/logger"
)

func main() {
	log := logger.New()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "one":
		runOne(log)
	case "classify":
		runClassify(log)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Entry Suggestion CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  suggest <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  one       Suggest a double-entry posting for a single transaction")
	fmt.Println("  classify  Infer a category for a transaction description")
	fmt.Println("  help      Show this help message")
	fmt.Println("\nRun 'suggest <command> -h' for more information on a command.")
}

func runOne(log zerolog.Logger) {
	fs := flag.NewFlagSet("one", flag.ExitOnError)
	accountsPath := fs.String("accounts", "", "Path to chart of accounts file (YAML or JSON)")
	amount := fs.Float64("amount", 0, "Transaction amount (negative = expense, positive = income)")
	merchant := fs.String("merchant", "", "Merchant name")
	description := fs.String("description", "", "Transaction description")
	category := fs.String("category", "", "Declared category (comma-separated, optional)")
	business := fs.Bool("business", false, "Treat as a business transaction")
	businessType := fs.String("business-type", "", "Business type for industry-aware selection")
	debitOverride := fs.String("debit", "", "Override debit account ID")
	creditOverride := fs.String("credit", "", "Override credit account ID")
	withAI := fs.Bool("ai", false, "Enable AI stages using environment configuration")
	fs.Parse(os.Args[2:])

	if *accountsPath == "" {
		log.Fatal().Msg("Error: --accounts is required")
	}

	accounts, err := catalog.LoadFile(*accountsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load chart of accounts")
	}

	eng := buildEngine(log, *withAI)

	tx := domain.TransactionContext{
		Amount:      *amount,
		Merchant:    *merchant,
		Description: *description,
		IsBusiness:  *business,
		Date:        time.Now().Format("2006-01-02"),
	}
	if *category != "" {
		for _, c := range strings.Split(*category, ",") {
			if c = strings.TrimSpace(c); c != "" {
				tx.Category = append(tx.Category, c)
			}
		}
	}

	req := engine.SuggestRequest{
		Transaction:             tx,
		Accounts:                accounts,
		OverrideDebitAccountID:  *debitOverride,
		OverrideCreditAccountID: *creditOverride,
	}
	if *businessType != "" {
		req.Business = &domain.BusinessContext{BusinessType: *businessType}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	result, err := eng.Suggest(ctx, req)
	if err != nil {
		log.Fatal().Err(err).Msg("No suggestion possible")
	}

	printJSON(result)
}

func runClassify(log zerolog.Logger) {
	fs := flag.NewFlagSet("classify", flag.ExitOnError)
	description := fs.String("description", "", "Transaction description")
	merchant := fs.String("merchant", "", "Merchant name")
	business := fs.Bool("business", false, "Use business categories")
	fs.Parse(os.Args[2:])

	if *description == "" && *merchant == "" {
		log.Fatal().Msg("Error: --description or --merchant is required")
	}

	result := classify.Classify(*description, *merchant, *business)
	printJSON(result)
}

// buildEngine assembles the engine, wiring AI providers from the environment
// when requested.
func buildEngine(log zerolog.Logger, withAI bool) *engine.Engine {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	opts := []engine.Option{
		engine.WithAITimeout(cfg.AI.Timeout),
		engine.WithAlternativesThreshold(cfg.AlternativesThreshold),
	}

	if withAI && cfg.AIEnabled() {
		var providers []ai.Provider
		for _, name := range cfg.AI.ModelPriority {
			switch name {
			case config.ProviderGemini:
				providers = append(providers, ai.NewGeminiProvider(cfg.AI.GeminiModel))
			case config.ProviderClaude:
				providers = append(providers, ai.NewClaudeProvider(cfg.AI.ClaudeAPIKey, cfg.AI.ClaudeModel))
			}
		}
		svc := ai.NewService(log, providers...)
		opts = append(opts, engine.WithEnhancer(svc), engine.WithAIClassifier(svc))
	} else if withAI {
		log.Warn().Msg("--ai set but AI_MODEL_PRIORITY is empty, running fully local")
	}

	return engine.New(log, opts...)
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode output: %v\n", err)
		os.Exit(1)
	}
}
