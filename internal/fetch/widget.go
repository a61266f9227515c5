// Package fetch - widget.go provides review-widget detection and widget-specific selectors.
package fetch

import "strings"

// Widget represents a known storefront review widget.
type Widget string

const (
	// WidgetOkendo is the Okendo review widget (common on Shopify stores)
	WidgetOkendo Widget = "okendo"
	// WidgetJudgeme is the Judge.me review widget
	WidgetJudgeme Widget = "judgeme"
	// WidgetShopifyReviews is the legacy Shopify Product Reviews widget
	WidgetShopifyReviews Widget = "shopify-reviews"
	// WidgetStamped is the Stamped.io review widget
	WidgetStamped Widget = "stamped"
	// WidgetYotpo is the Yotpo review widget
	WidgetYotpo Widget = "yotpo"
	// WidgetUnknown is an unrecognized widget
	WidgetUnknown Widget = "unknown"
)

// DetectWidget identifies the review widget embedded in a page. Widgets are
// markup-based, so detection looks at the HTML rather than the URL.
func DetectWidget(html string) Widget {
	lower := strings.ToLower(html)

	switch {
	case strings.Contains(lower, "okereviews") || strings.Contains(lower, "data-oke-"):
		return WidgetOkendo
	case strings.Contains(lower, "jdgm-rev"):
		return WidgetJudgeme
	case strings.Contains(lower, "spr-review"):
		return WidgetShopifyReviews
	case strings.Contains(lower, "stamped-review"):
		return WidgetStamped
	case strings.Contains(lower, "yotpo"):
		return WidgetYotpo
	default:
		return WidgetUnknown
	}
}

// WidgetSelectors returns review-body selectors for a specific widget.
func WidgetSelectors(widget Widget) []string {
	switch widget {
	case WidgetOkendo:
		return []string{
			".okeReviews-review-body",
			".okeReviews-review-content",
			".okeReviewsReviewContent",
			"[data-oke-review-text]",
		}
	case WidgetJudgeme:
		return []string{
			".jdgm-rev__body",
			".jdgm-rev__content",
			".jdgm-rev__title",
		}
	case WidgetShopifyReviews:
		return []string{
			".spr-review-content",
			".spr-review-body",
			".spr-review-header-title",
		}
	case WidgetStamped:
		return []string{
			".stamped-review-message",
			".stamped-review-content",
		}
	case WidgetYotpo:
		return []string{
			".yotpo-review",
			".yotpo-main .content-review",
			".yotpo-review-content",
		}
	default:
		return AllReviewSelectors()
	}
}

// AllReviewSelectors returns the union of known widget selectors plus generic
// fallbacks, used when no widget was recognized. Order is fixed so extraction
// stays deterministic.
func AllReviewSelectors() []string {
	var all []string
	for _, w := range []Widget{WidgetOkendo, WidgetJudgeme, WidgetShopifyReviews, WidgetStamped, WidgetYotpo} {
		all = append(all, WidgetSelectors(w)...)
	}
	all = append(all, genericReviewSelectors()...)
	return all
}

// genericReviewSelectors matches review markup that carries no widget branding.
func genericReviewSelectors() []string {
	return []string{
		"[itemprop='reviewBody']",
		".review-content",
		".review-body",
		".review-text",
		".customer-review",
	}
}
