package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/review-scripter/internal/types"
)

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(&types.AnalysisResult{
		ReviewCount: 3,
		Sentiment:   types.SentimentSummary{Average: 0.25, PositiveHits: 2, NeutralHits: 1},
		Keywords:    []string{"battery", "design", "comfort"},
		Themes: []types.Theme{
			{Label: "Theme 1", Terms: []string{"battery", "life"}},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "REVIEW ANALYSIS")
	assert.Contains(t, out, "Reviews analyzed: 3")
	assert.Contains(t, out, "battery")
	assert.Contains(t, out, "Theme 1")
}

func TestPrintAnalysis_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAnalysis(nil)
	assert.Empty(t, buf.String())
}

func TestPrintScript(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScript(&types.Output{
		ProductName: "GlowCup",
		Mode:        types.ModeFallback,
		Script: types.Script{
			Headline: "Meet GlowCup",
			Hook:     "Discover what makes GlowCup different.",
			Body:     "- one\n- two",
			CTA:      "Try GlowCup today.",
		},
		Warnings: []string{"no reviews could be extracted"},
	})

	out := buf.String()
	assert.Contains(t, out, "MARKETING SCRIPT")
	assert.Contains(t, out, "HEADLINE: Meet GlowCup")
	assert.Contains(t, out, "fallback")
	assert.Contains(t, out, "no reviews could be extracted")
}
