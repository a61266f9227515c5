// Package pipeline provides the high-level orchestration for a script generation session.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/review-scripter/internal/analysis"
	"github.com/jonathan/review-scripter/internal/db"
	"github.com/jonathan/review-scripter/internal/llm"
	"github.com/jonathan/review-scripter/internal/observability"
	"github.com/jonathan/review-scripter/internal/reviews"
	"github.com/jonathan/review-scripter/internal/schemas"
	"github.com/jonathan/review-scripter/internal/script"
	"github.com/jonathan/review-scripter/internal/types"
)

// ProgressEvent represents a progress update during session execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when session progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running a generation session
type RunOptions struct {
	ProductName string
	ReviewsURL  string
	ReviewsText string
	MaxReviews  int
	APIKey      string
	Client      llm.Client // pre-built client; takes precedence over APIKey
	UseBrowser  bool
	DemoReviews bool // substitute sample reviews when a page yields none
	Verbose     bool
	DatabaseURL string
	Database    *db.DB    // pre-opened connection; takes precedence over DatabaseURL
	UserID      uuid.UUID // owner of the persisted run; uuid.Nil for unowned CLI runs
	OnProgress  ProgressCallback
}

// Result holds the outcome of a completed generation session
type Result struct {
	RunID  uuid.UUID
	Output *types.Output
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			Content:  content,
		})
	}
}

// validate checks the session input. Product name is required and exactly one
// review source must be provided.
func validate(opts *RunOptions) error {
	if strings.TrimSpace(opts.ProductName) == "" {
		return &InvalidInputError{Message: "product name is required"}
	}
	hasURL := strings.TrimSpace(opts.ReviewsURL) != ""
	hasText := strings.TrimSpace(opts.ReviewsText) != ""
	if !hasURL && !hasText {
		return &InvalidInputError{Message: "either a reviews URL or pasted review text is required"}
	}
	if hasURL && hasText {
		return &InvalidInputError{Message: "provide a reviews URL or pasted review text, not both"}
	}
	return nil
}

// Run executes one generation session: resolve reviews, analyze them, generate
// the script and persist the packaged output. Resolution and generation
// failures degrade the session (zero reviews, template fallback) rather than
// aborting it; only malformed input returns an error.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	if err := validate(&opts); err != nil {
		return nil, err
	}

	printer := observability.NewPrinter(os.Stdout)
	var warnings []string

	// Database connection is best-effort: a session still produces a script
	// when persistence is unavailable.
	database := opts.Database
	if database == nil && opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			log.Printf("Warning: failed to connect to database: %v", err)
			log.Printf("Continuing without persistence...")
			database = nil
		} else {
			defer database.Close()
		}
	}

	// Step 1: resolve reviews from the URL or pasted text.
	resolver := reviews.NewResolver(reviews.Options{
		MaxReviews: opts.MaxReviews,
		UseBrowser: opts.UseBrowser,
		Verbose:    opts.Verbose,
	})

	var reviewList []types.Review
	inputKind := db.InputKindText
	if opts.ReviewsURL != "" {
		inputKind = db.InputKindURL
		var err error
		reviewList, err = resolver.FromURL(ctx, opts.ReviewsURL)
		if err != nil {
			// Fetch and parse failures are recoverable: the session continues
			// with whatever was extracted (possibly nothing).
			log.Printf("Warning: %v", err)
			warnings = append(warnings, err.Error())
			if reviewList == nil {
				reviewList = []types.Review{}
			}
		}
	} else {
		reviewList = resolver.FromText(opts.ReviewsText)
	}

	if len(reviewList) == 0 && opts.DemoReviews {
		log.Printf("No reviews resolved, substituting demo reviews")
		reviewList = reviews.Demo()
		warnings = append(warnings, "no live reviews found, demo reviews substituted")
	}

	emitProgress(&opts, "resolve_reviews", db.CategoryResolve,
		fmt.Sprintf("Resolved %d reviews", len(reviewList)), nil)

	// Step 2: lexical analysis.
	analysisResult := analysis.Analyze(reviewList)
	if opts.Verbose {
		printer.PrintAnalysis(analysisResult)
	}
	emitProgress(&opts, db.StepAnalysis, db.CategoryAnalysis,
		fmt.Sprintf("Analyzed %d reviews: %d keywords, %d themes",
			analysisResult.ReviewCount, len(analysisResult.Keywords), len(analysisResult.Themes)),
		analysisResult)

	// Step 3: pick the generator once for the whole session.
	client := opts.Client
	if client == nil && opts.APIKey != "" {
		var err error
		client, err = llm.NewClient(ctx, llm.DefaultConfig(), opts.APIKey)
		if err != nil {
			log.Printf("Warning: failed to initialize generation client: %v", err)
			warnings = append(warnings, "external generation unavailable, using template fallback")
			client = nil
		} else {
			defer client.Close()
		}
	}
	generator := script.Select(client, opts.ProductName)

	// Step 4: generate, falling back to templates on any generation failure.
	prompt := ""
	if generator.Mode() == types.ModeExternal {
		prompt = script.BuildPrompt(opts.ProductName, analysisResult, reviewList)
	}

	generated, err := generator.Generate(ctx, analysisResult, reviewList)
	mode := generator.Mode()
	if err != nil {
		log.Printf("Warning: external generation failed: %v", err)
		warnings = append(warnings, "external generation failed, using template fallback")
		fallback := script.NewTemplateGenerator(opts.ProductName)
		generated, _ = fallback.Generate(ctx, analysisResult, reviewList)
		mode = fallback.Mode()
		prompt = ""
	}

	emitProgress(&opts, db.StepOutput, db.CategoryGeneration,
		fmt.Sprintf("Generated script (mode: %s)", mode), nil)

	// Step 5: package and validate the output.
	output := &types.Output{
		ProductName: strings.TrimSpace(opts.ProductName),
		GeneratedAt: time.Now().UTC(),
		SourceURL:   opts.ReviewsURL,
		ReviewCount: len(reviewList),
		Analysis:    analysisResult,
		Prompt:      prompt,
		Script:      *generated,
		Mode:        mode,
		Warnings:    warnings,
	}

	if err := schemas.ValidateScriptOutput(output); err != nil {
		// A schema violation here is a programming error, not a user error.
		// Surface it loudly but do not fail the session.
		log.Printf("Warning: output failed schema validation: %v", err)
		output.Warnings = append(output.Warnings, "output failed schema validation")
	}

	if opts.Verbose {
		printer.PrintScript(output)
	}

	// Step 6: persist, best-effort.
	var runID uuid.UUID
	if database != nil {
		runID, err = database.CreateRun(ctx, opts.UserID, output.ProductName, opts.ReviewsURL, inputKind)
		if err != nil {
			log.Printf("Warning: failed to create database run: %v", err)
		} else {
			_ = database.SaveArtifact(ctx, runID, db.StepAnalysis, db.CategoryAnalysis, analysisResult)
			_ = database.SaveArtifact(ctx, runID, db.StepOutput, db.CategoryGeneration, output)
			_ = database.SaveTextArtifact(ctx, runID, db.StepScriptText, db.CategoryGeneration, formatScriptText(output))
			if prompt != "" {
				_ = database.SaveTextArtifact(ctx, runID, db.StepPrompt, db.CategoryGeneration, prompt)
			}
			_ = database.CompleteRun(ctx, runID, db.StatusCompleted, string(mode), len(reviewList))
		}
	}

	return &Result{RunID: runID, Output: output}, nil
}

// formatScriptText renders the four script fields as plain text for download.
func formatScriptText(output *types.Output) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Product: %s\n", output.ProductName))
	sb.WriteString(fmt.Sprintf("Generated: %s (mode: %s)\n\n", output.GeneratedAt.Format(time.RFC3339), output.Mode))
	sb.WriteString(fmt.Sprintf("HEADLINE: %s\n\n", output.Script.Headline))
	sb.WriteString(fmt.Sprintf("HOOK: %s\n\n", output.Script.Hook))
	sb.WriteString(fmt.Sprintf("BODY:\n%s\n\n", output.Script.Body))
	sb.WriteString(fmt.Sprintf("CTA: %s\n", output.Script.CTA))
	return sb.String()
}
