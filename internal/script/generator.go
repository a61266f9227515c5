package script

import (
	"context"

	"github.com/jonathan/review-scripter/internal/llm"
	"github.com/jonathan/review-scripter/internal/types"
)

// Generator is the strategy contract shared by the external and fallback
// paths. A session selects one implementation up front rather than branching
// ad hoc through the code.
type Generator interface {
	// Generate produces a complete four-field script from the analysis
	// signals and, optionally, the original reviews.
	Generate(ctx context.Context, analysis *types.AnalysisResult, reviews []types.Review) (*types.Script, error)
	// Mode reports which generation mode this implementation represents.
	Mode() types.GenerationMode
}

// Select picks the generator for a session. With a non-nil LLM client the
// external path is chosen; otherwise the deterministic template path.
// The caller still needs the template generator as a fallback when the
// external path errors at runtime.
func Select(client llm.Client, productName string) Generator {
	if client != nil {
		return NewLLMGenerator(client, productName)
	}
	return NewTemplateGenerator(productName)
}
