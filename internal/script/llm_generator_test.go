package script

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/review-scripter/internal/llm"
	"github.com/jonathan/review-scripter/internal/types"
)

// fakeClient is a canned-response llm.Client for tests.
type fakeClient struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                  { return nil }

func sampleAnalysis() *types.AnalysisResult {
	return &types.AnalysisResult{
		ReviewCount: 2,
		Sentiment:   types.SentimentSummary{Average: 0.4, PositiveHits: 2},
		Keywords:    []string{"battery", "design"},
		Themes: []types.Theme{
			{Label: "Theme 1", Terms: []string{"battery"}, Representative: "Battery lasts forever."},
		},
	}
}

func TestLLMGenerator_ParsesResponse(t *testing.T) {
	client := &fakeClient{response: wellFormedResponse}
	g := NewLLMGenerator(client, "GlowCup")

	out, err := g.Generate(context.Background(), sampleAnalysis(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, "Premium comfort, zero compromise", out.Headline)
}

func TestLLMGenerator_APIErrorBecomesGenerationError(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}
	g := NewLLMGenerator(client, "GlowCup")

	_, err := g.Generate(context.Background(), sampleAnalysis(), nil)
	require.Error(t, err)

	var genErr *GenerationError
	assert.ErrorAs(t, err, &genErr)
	assert.Equal(t, 1, client.calls) // single attempt, no retry
}

func TestLLMGenerator_UnparseableResponseBecomesGenerationError(t *testing.T) {
	client := &fakeClient{response: "Sorry, I can't help with that."}
	g := NewLLMGenerator(client, "GlowCup")

	_, err := g.Generate(context.Background(), sampleAnalysis(), nil)
	require.Error(t, err)

	var genErr *GenerationError
	assert.ErrorAs(t, err, &genErr)
}

func TestLLMGenerator_Mode(t *testing.T) {
	assert.Equal(t, types.ModeExternal, NewLLMGenerator(&fakeClient{}, "x").Mode())
}

func TestBuildPrompt_EmbedsAnalysisAndReviews(t *testing.T) {
	reviews := []types.Review{
		{Text: "Battery lasts forever."},
		{Text: "Design feels premium."},
	}

	prompt := BuildPrompt("GlowCup", sampleAnalysis(), reviews)
	assert.Contains(t, prompt, "GlowCup")
	assert.Contains(t, prompt, "battery, design")
	assert.Contains(t, prompt, "- Battery lasts forever.")
	assert.Contains(t, prompt, "pos=2")
	assert.Contains(t, prompt, "HEADLINE:")
}

func TestBuildPrompt_SampleIsCapped(t *testing.T) {
	var reviews []types.Review
	for i := 0; i < 20; i++ {
		reviews = append(reviews, types.Review{Text: "Repeated review body text."})
	}

	prompt := BuildPrompt("GlowCup", sampleAnalysis(), reviews)
	count := countOccurrences(prompt, "- Repeated review body text.")
	assert.Equal(t, maxSampleReviews, count)
}

func TestBuildPrompt_ZeroReviews(t *testing.T) {
	prompt := BuildPrompt("GlowCup", &types.AnalysisResult{Keywords: []string{}}, nil)
	assert.Contains(t, prompt, "(no reviews available)")
	assert.Contains(t, prompt, "(no recurring themes found)")
}

func TestSelect(t *testing.T) {
	assert.Equal(t, types.ModeExternal, Select(&fakeClient{}, "x").Mode())
	assert.Equal(t, types.ModeFallback, Select(nil, "x").Mode())
}

func countOccurrences(s, sub string) int {
	count := 0
	for i := 0; i+len(sub) <= len(s); {
		if s[i:i+len(sub)] == sub {
			count++
			i += len(sub)
		} else {
			i++
		}
	}
	return count
}
