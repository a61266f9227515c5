package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/review-scripter/internal/config"
	"github.com/jonathan/review-scripter/internal/observability"
	"github.com/jonathan/review-scripter/internal/pipeline"
)

var (
	genConfigPath  string
	genProduct     string
	genReviewsURL  string
	genReviewsFile string
	genMaxReviews  int
	genConcurrency int
	genAPIKey      string
	genDBURL       string
	genUseBrowser  bool
	genDemoReviews bool
	genVerbose     bool
	genOutPath     string
	genInputPath   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a marketing script from product reviews",
	Long: `Generate a four-part marketing script for a product. Reviews come from
either a product page URL (scraped from common review widgets) or a local
text file with one review per line.

With --input, runs a batch of sessions described by a JSON file instead.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "Path to JSON config file")
	generateCmd.Flags().StringVar(&genProduct, "product", "", "Product name the script is written for")
	generateCmd.Flags().StringVar(&genReviewsURL, "reviews-url", "", "Product page URL to scrape reviews from")
	generateCmd.Flags().StringVar(&genReviewsFile, "reviews-file", "", "Text file with one review per line")
	generateCmd.Flags().IntVar(&genMaxReviews, "max-reviews", 0, "Maximum reviews carried into analysis (0 = no limit)")
	generateCmd.Flags().IntVar(&genConcurrency, "concurrency", 2, "Parallel sessions in batch mode")
	generateCmd.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	generateCmd.Flags().StringVar(&genDBURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL)")
	generateCmd.Flags().BoolVar(&genUseBrowser, "use-browser", false, "Use a headless browser for JS-rendered review widgets")
	generateCmd.Flags().BoolVar(&genDemoReviews, "demo-reviews", false, "Substitute sample reviews when a page yields none")
	generateCmd.Flags().BoolVar(&genVerbose, "verbose", false, "Print analysis and script details")
	generateCmd.Flags().StringVar(&genOutPath, "out", "", "Write the packaged output JSON to this file")
	generateCmd.Flags().StringVar(&genInputPath, "input", "", "JSON file describing a batch of sessions")
	rootCmd.AddCommand(generateCmd)
}

// resolveConfig merges the config file (if any), CLI flag overrides and
// environment fallbacks into the effective configuration.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var fileCfg config.Config
	if genConfigPath != "" {
		loaded, err := config.LoadConfig(genConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		fileCfg = *loaded
	}

	// Explicit flags override config file values
	flagCfg := config.Config{}
	if cmd.Flags().Changed("product") {
		flagCfg.Product = genProduct
	}
	if cmd.Flags().Changed("reviews-url") {
		flagCfg.ReviewsURL = genReviewsURL
	}
	if cmd.Flags().Changed("reviews-file") {
		flagCfg.ReviewsFile = genReviewsFile
	}
	if cmd.Flags().Changed("max-reviews") {
		flagCfg.MaxReviews = genMaxReviews
	}
	if cmd.Flags().Changed("concurrency") {
		flagCfg.Concurrency = genConcurrency
	}
	if cmd.Flags().Changed("api-key") {
		flagCfg.APIKey = genAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		flagCfg.DatabaseURL = genDBURL
	}

	cfg := flagCfg.MergeWithDefaults(fileCfg)

	// Bools cannot be merged (unset is indistinguishable from false), so the
	// flag value always wins.
	cfg.UseBrowser = genUseBrowser || fileCfg.UseBrowser
	cfg.DemoReviews = genDemoReviews || fileCfg.DemoReviews
	cfg.Verbose = genVerbose || fileCfg.Verbose

	// Environment fallbacks
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// sessionOptions turns an effective config into pipeline options, reading the
// reviews file into pasted text when one is configured.
func sessionOptions(cfg config.Config) (pipeline.RunOptions, error) {
	opts := pipeline.RunOptions{
		ProductName: cfg.Product,
		ReviewsURL:  cfg.ReviewsURL,
		MaxReviews:  cfg.MaxReviews,
		APIKey:      cfg.APIKey,
		UseBrowser:  cfg.UseBrowser,
		DemoReviews: cfg.DemoReviews,
		Verbose:     cfg.Verbose,
		DatabaseURL: cfg.DatabaseURL,
	}
	if cfg.ReviewsFile != "" {
		data, err := os.ReadFile(cfg.ReviewsFile)
		if err != nil {
			return pipeline.RunOptions{}, fmt.Errorf("failed to read reviews file: %w", err)
		}
		opts.ReviewsText = string(data)
	}
	return opts, nil
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if genInputPath != "" {
		return runBatch(ctx, cfg)
	}

	opts, err := sessionOptions(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := pipeline.Run(ctx, opts)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintScript(result.Output)
	log.Printf("Session finished in %s (mode: %s, reviews: %d)",
		time.Since(start).Round(time.Millisecond), result.Output.Mode, result.Output.ReviewCount)

	if genOutPath != "" {
		if err := writeOutputJSON(genOutPath, result.Output); err != nil {
			return err
		}
		log.Printf("Output written to %s", genOutPath)
	}
	return nil
}

// batchEntry describes one session in a batch input file. Fields left empty
// inherit from the effective CLI configuration.
type batchEntry struct {
	Product     string `json:"product"`
	ReviewsURL  string `json:"reviews_url,omitempty"`
	ReviewsFile string `json:"reviews_file,omitempty"`
	Out         string `json:"out,omitempty"`
}

// runBatch executes the sessions described by the --input file, at most
// cfg.Concurrency at a time. A failed session aborts the batch.
func runBatch(ctx context.Context, cfg config.Config) error {
	data, err := os.ReadFile(genInputPath)
	if err != nil {
		return fmt.Errorf("failed to read batch input file: %w", err)
	}

	var entries []batchEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse batch input JSON: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("batch input file contains no sessions")
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	log.Printf("Running %d sessions (concurrency: %d)", len(entries), concurrency)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, entry := range entries {
		g.Go(func() error {
			entryCfg := cfg
			entryCfg.Product = entry.Product
			entryCfg.ReviewsURL = entry.ReviewsURL
			entryCfg.ReviewsFile = entry.ReviewsFile
			// Verbose box output interleaves badly across parallel sessions
			entryCfg.Verbose = false

			opts, err := sessionOptions(entryCfg)
			if err != nil {
				return fmt.Errorf("session %d (%s): %w", i+1, entry.Product, err)
			}

			result, err := pipeline.Run(gctx, opts)
			if err != nil {
				return fmt.Errorf("session %d (%s): %w", i+1, entry.Product, err)
			}

			log.Printf("Session %d/%d done: %s (mode: %s, reviews: %d)",
				i+1, len(entries), entry.Product, result.Output.Mode, result.Output.ReviewCount)

			if entry.Out != "" {
				if err := writeOutputJSON(entry.Out, result.Output); err != nil {
					return fmt.Errorf("session %d (%s): %w", i+1, entry.Product, err)
				}
			}
			return nil
		})
	}

	return g.Wait()
}

func writeOutputJSON(path string, output any) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
