package script

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/review-scripter/internal/types"
)

func TestTemplateGenerator_ZeroReviewsStillFillsAllFields(t *testing.T) {
	g := NewTemplateGenerator("GlowCup")

	out, err := g.Generate(context.Background(), &types.AnalysisResult{Keywords: []string{}}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out.Headline)
	assert.NotEmpty(t, out.Hook)
	assert.NotEmpty(t, out.Body)
	assert.NotEmpty(t, out.CTA)
}

func TestTemplateGenerator_InsertsTopKeywordIntoHook(t *testing.T) {
	g := NewTemplateGenerator("GlowCup")
	analysis := &types.AnalysisResult{
		ReviewCount: 4,
		Keywords:    []string{"battery life", "design"},
	}

	out, err := g.Generate(context.Background(), analysis, nil)
	require.NoError(t, err)
	assert.Contains(t, out.Hook, "battery life")
	assert.Contains(t, out.Headline, "4 real reviews")
}

func TestTemplateGenerator_Deterministic(t *testing.T) {
	g := NewTemplateGenerator("GlowCup")
	analysis := &types.AnalysisResult{
		ReviewCount: 2,
		Keywords:    []string{"comfort"},
		Sentiment:   types.SentimentSummary{Average: 0.3, PositiveHits: 2},
	}

	a, err := g.Generate(context.Background(), analysis, nil)
	require.NoError(t, err)
	b, err := g.Generate(context.Background(), analysis, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestTemplateGenerator_EmptyProductNameUsesPlaceholder(t *testing.T) {
	g := NewTemplateGenerator("")

	out, err := g.Generate(context.Background(), &types.AnalysisResult{}, nil)
	require.NoError(t, err)
	assert.Contains(t, out.Headline, "This product")
}

func TestTemplateGenerator_Mode(t *testing.T) {
	assert.Equal(t, types.ModeFallback, NewTemplateGenerator("x").Mode())
}
