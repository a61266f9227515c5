package types

import "time"

// GenerationMode indicates which generator produced a script.
type GenerationMode string

const (
	// ModeExternal means the script came from the external LLM capability.
	ModeExternal GenerationMode = "external"
	// ModeFallback means the script came from the deterministic template path.
	ModeFallback GenerationMode = "fallback"
)

// Review is a single unit of user-sourced opinion text about a product.
// Reviews are immutable once produced by the resolver.
type Review struct {
	Text      string `json:"text"`
	SourceURL string `json:"source_url,omitempty"`
	Rating    int    `json:"rating,omitempty"` // 1-5 when the page exposes it, 0 when unknown
}

// SentimentSummary is a coarse lexical sentiment tally over a review list.
type SentimentSummary struct {
	Average      float64 `json:"average"` // mean per-review score in [-1, 1]
	PositiveHits int     `json:"positive"`
	NeutralHits  int     `json:"neutral"`
	NegativeHits int     `json:"negative"`
}

// Theme groups a handful of related terms with one representative review snippet.
type Theme struct {
	Label          string   `json:"label"`
	Terms          []string `json:"terms"`
	Representative string   `json:"representative"`
}

// AnalysisResult holds the derived signals computed from a review list.
// It is deterministic for a given ordered input.
type AnalysisResult struct {
	ReviewCount int              `json:"review_count"`
	Sentiment   SentimentSummary `json:"sentiment"`
	Keywords    []string         `json:"keywords"`
	Themes      []Theme          `json:"themes,omitempty"`
}

// Script is the four-part generated marketing copy. All four fields are
// always populated, regardless of generation mode or input size.
type Script struct {
	Headline string `json:"headline"`
	Hook     string `json:"hook"`
	Body     string `json:"body"`
	CTA      string `json:"cta"`
}

// Output packages one generation session for display, download and persistence.
type Output struct {
	ProductName string          `json:"product_name"`
	GeneratedAt time.Time       `json:"generated_at"`
	SourceURL   string          `json:"source_url,omitempty"`
	ReviewCount int             `json:"review_count"`
	Analysis    *AnalysisResult `json:"analysis"`
	Prompt      string          `json:"prompt,omitempty"` // empty on the fallback path
	Script      Script          `json:"script"`
	Mode        GenerationMode  `json:"mode"`
	Warnings    []string        `json:"warnings,omitempty"`
}

// GenerateRequest is the API request body for starting a generation session.
// Exactly one of ReviewsURL or ReviewsText must be provided.
type GenerateRequest struct {
	ProductName string `json:"product_name" validate:"required,min=1"`
	ReviewsURL  string `json:"reviews_url,omitempty" validate:"omitempty,url"`
	ReviewsText string `json:"reviews_text,omitempty"`
	UseBrowser  bool   `json:"use_browser,omitempty"`
	MaxReviews  int    `json:"max_reviews,omitempty" validate:"omitempty,min=1"`
}
