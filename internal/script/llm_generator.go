package script

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/review-scripter/internal/llm"
	"github.com/jonathan/review-scripter/internal/prompts"
	"github.com/jonathan/review-scripter/internal/types"
)

// maxSampleReviews bounds how many raw reviews are embedded in the prompt.
const maxSampleReviews = 6

// LLMGenerator produces scripts through the external generation capability.
// One prompt, one call, no retry loop; the caller falls back on failure.
type LLMGenerator struct {
	client      llm.Client
	productName string
}

// NewLLMGenerator creates the external-capability generator.
func NewLLMGenerator(client llm.Client, productName string) *LLMGenerator {
	return &LLMGenerator{client: client, productName: productName}
}

// Mode reports the external generation mode.
func (g *LLMGenerator) Mode() types.GenerationMode {
	return types.ModeExternal
}

// Generate builds a single prompt from the analysis summary and a sample of
// reviews, invokes the capability once and parses the response into the four
// script fields. Any failure is returned as a *GenerationError.
func (g *LLMGenerator) Generate(ctx context.Context, analysis *types.AnalysisResult, reviews []types.Review) (*types.Script, error) {
	prompt := BuildPrompt(g.productName, analysis, reviews)

	response, err := g.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &GenerationError{Message: "external capability call failed", Cause: err}
	}

	parsed, err := ParseSections(response)
	if err != nil {
		return nil, err
	}
	return parsed, nil
}

// BuildPrompt composes the copywriter prompt embedding the analysis summary
// and a sample of reviews. Deterministic for a given input, so the pipeline
// can persist the exact prompt used.
func BuildPrompt(productName string, analysis *types.AnalysisResult, reviews []types.Review) string {
	template := prompts.MustGet("script.json", "copywriter")

	var themeLines []string
	for _, theme := range analysis.Themes {
		themeLines = append(themeLines,
			fmt.Sprintf("- %s: %s | %s", theme.Label, strings.Join(theme.Terms, " • "), theme.Representative))
	}
	if len(themeLines) == 0 {
		themeLines = []string{"- (no recurring themes found)"}
	}

	var reviewLines []string
	for i, r := range reviews {
		if i == maxSampleReviews {
			break
		}
		reviewLines = append(reviewLines, "- "+r.Text)
	}
	if len(reviewLines) == 0 {
		reviewLines = []string{"- (no reviews available)"}
	}

	sentiment := fmt.Sprintf("Avg: %.3f | Dist: pos=%d neu=%d neg=%d",
		analysis.Sentiment.Average,
		analysis.Sentiment.PositiveHits,
		analysis.Sentiment.NeutralHits,
		analysis.Sentiment.NegativeHits)

	return prompts.Format(template, map[string]string{
		"ProductName": productName,
		"Themes":      strings.Join(themeLines, "\n"),
		"Phrases":     strings.Join(analysis.Keywords, ", "),
		"Sentiment":   sentiment,
		"Reviews":     strings.Join(reviewLines, "\n"),
	})
}
