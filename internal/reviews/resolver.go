package reviews

import (
	"context"
	"log"
	"strings"

	"github.com/jonathan/review-scripter/internal/fetch"
	"github.com/jonathan/review-scripter/internal/types"
)

// DefaultMaxReviews caps how many reviews a single session carries forward.
const DefaultMaxReviews = 150

// Options configures the resolver.
type Options struct {
	// MaxReviews caps the returned list; 0 means DefaultMaxReviews.
	MaxReviews int
	// UseBrowser enables the headless-browser fallback when the static
	// fetch finds no reviews (JS-rendered widgets).
	UseBrowser bool
	// Verbose enables detailed extraction logging.
	Verbose bool
}

// Resolver turns raw input (product URL or pasted text) into a review list.
type Resolver struct {
	opts Options
}

// NewResolver creates a resolver with the given options.
func NewResolver(opts Options) *Resolver {
	if opts.MaxReviews == 0 {
		opts.MaxReviews = DefaultMaxReviews
	}
	return &Resolver{opts: opts}
}

// FromText splits pasted text on line boundaries, trims whitespace and drops
// empty lines. Each surviving line becomes one review, verbatim. No network
// access; cannot fail (worst case: empty list).
func (r *Resolver) FromText(text string) []types.Review {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]types.Review, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, types.Review{Text: line})
		if len(out) == r.opts.MaxReviews {
			break
		}
	}
	return out
}

// FromURL issues a single outbound fetch of a product page, extracts
// review-like fragments via widget-specific markup selectors and returns them.
//
// Failure modes:
//   - network error or non-success status: nil list, *FetchError
//   - page fetched but nothing review-like found: empty list, *ParseError
//
// Both are recoverable by the caller; a generation session continues with
// zero reviews rather than aborting.
func (r *Resolver) FromURL(ctx context.Context, urlStr string) ([]types.Review, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return nil, &FetchError{URL: urlStr, Message: "product page fetch failed", Cause: err}
	}

	widget := fetch.DetectWidget(result.HTML)
	if r.opts.Verbose {
		log.Printf("[VERBOSE] Detected review widget: %s", widget)
	}

	texts, err := fetch.ExtractReviews(result.HTML, fetch.WidgetSelectors(widget))
	if err != nil {
		return nil, &FetchError{URL: urlStr, Message: "failed to parse product page", Cause: err}
	}

	// Widgets often render their reviews client-side; fall back to a single
	// headless-browser render when enabled and the static pass came up empty.
	if r.opts.UseBrowser && fetch.ShouldUseBrowser(texts) {
		if r.opts.Verbose {
			log.Printf("[VERBOSE] Static fetch found %d reviews, falling back to browser rendering...", len(texts))
		}
		html, browserErr := fetch.BrowserSimple(ctx, urlStr, r.opts.Verbose)
		if browserErr != nil {
			if r.opts.Verbose {
				log.Printf("[VERBOSE] Browser rendering failed: %v, keeping static result", browserErr)
			}
		} else {
			widget = fetch.DetectWidget(html)
			if rendered, exErr := fetch.ExtractReviews(html, fetch.WidgetSelectors(widget)); exErr == nil {
				texts = rendered
			}
		}
	}

	if len(texts) == 0 {
		return []types.Review{}, &ParseError{URL: urlStr, Message: "no review-like fragments found"}
	}

	if len(texts) > r.opts.MaxReviews {
		texts = texts[:r.opts.MaxReviews]
	}

	out := make([]types.Review, 0, len(texts))
	for _, t := range texts {
		out = append(out, types.Review{Text: t, SourceURL: urlStr})
	}
	return out, nil
}
