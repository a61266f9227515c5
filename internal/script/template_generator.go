package script

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/review-scripter/internal/types"
)

// TemplateGenerator builds the script from fixed templates parametrized by
// the analysis signals. Pure and deterministic; it always succeeds and every
// field is non-empty even for a zero-review session.
type TemplateGenerator struct {
	productName string
}

// NewTemplateGenerator creates the deterministic fallback generator.
func NewTemplateGenerator(productName string) *TemplateGenerator {
	return &TemplateGenerator{productName: productName}
}

// Mode reports the fallback generation mode.
func (g *TemplateGenerator) Mode() types.GenerationMode {
	return types.ModeFallback
}

// Generate fills the four fields from templates. Never returns an error.
func (g *TemplateGenerator) Generate(_ context.Context, analysis *types.AnalysisResult, _ []types.Review) (*types.Script, error) {
	name := g.productName
	if name == "" {
		name = "This product"
	}

	return &types.Script{
		Headline: g.headline(name, analysis),
		Hook:     g.hook(name, analysis),
		Body:     g.body(name, analysis),
		CTA:      fmt.Sprintf("Treat yourself: try %s today.", name),
	}, nil
}

func (g *TemplateGenerator) headline(name string, analysis *types.AnalysisResult) string {
	if analysis.ReviewCount > 0 {
		return fmt.Sprintf("%s, backed by %d real reviews", name, analysis.ReviewCount)
	}
	return fmt.Sprintf("Meet %s", name)
}

func (g *TemplateGenerator) hook(name string, analysis *types.AnalysisResult) string {
	if len(analysis.Keywords) > 0 {
		return fmt.Sprintf("If %q matters to you, %s delivers.", analysis.Keywords[0], name)
	}
	return fmt.Sprintf("Discover what makes %s different.", name)
}

func (g *TemplateGenerator) body(name string, analysis *types.AnalysisResult) string {
	var bullets []string

	for _, theme := range analysis.Themes {
		bullets = append(bullets, fmt.Sprintf("- Customers keep mentioning %s.", strings.Join(theme.Terms, ", ")))
	}
	if len(bullets) == 0 && len(analysis.Keywords) > 0 {
		top := analysis.Keywords
		if len(top) > 3 {
			top = top[:3]
		}
		bullets = append(bullets, fmt.Sprintf("- What stands out: %s.", strings.Join(top, ", ")))
	}

	if analysis.ReviewCount > 0 {
		switch {
		case analysis.Sentiment.Average > 0:
			bullets = append(bullets, fmt.Sprintf("- %d reviewers weighed in, and the mood is clearly positive.", analysis.ReviewCount))
		case analysis.Sentiment.Average < 0:
			bullets = append(bullets, fmt.Sprintf("- %d reviewers shared honest, unfiltered feedback.", analysis.ReviewCount))
		default:
			bullets = append(bullets, fmt.Sprintf("- %d reviewers have already shared their experience.", analysis.ReviewCount))
		}
	}

	// Invariant: body is never empty, even with zero reviews and no keywords.
	bullets = append(bullets, fmt.Sprintf("- %s is designed to fit real routines, not just product photos.", name))

	return strings.Join(bullets, "\n")
}
