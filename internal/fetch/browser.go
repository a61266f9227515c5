// Package fetch - browser.go provides headless browser rendering for JS-rendered review widgets.
package fetch

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chromedp/chromedp"
)

// MinStaticReviews is the review count below which the static fetch is
// considered insufficient. Review widgets frequently load their content with
// JavaScript, so a page that parses fine can still carry zero reviews.
const MinStaticReviews = 1

// ShouldUseBrowser returns true if the static extraction found too few
// reviews, indicating the widget is likely rendered client-side.
func ShouldUseBrowser(staticReviews []string) bool {
	return len(staticReviews) < MinStaticReviews
}

// loadMoreSelector matches the "load more" buttons of the widgets we know.
const loadMoreSelector = `[data-oke-reviews-more-button], .okeReviews-more, .jdgm-paginate__load-more, button[aria-label*="More"]`

// WithBrowser renders a product page in a headless browser, expands the
// review widget a few times and returns the rendered HTML.
// Requires Chrome/Chromium to be installed on the system.
func WithBrowser(ctx context.Context, url string, timeout time.Duration, verbose bool) (string, error) {
	if verbose {
		log.Printf("[BROWSER] Starting headless browser for: %s", url)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string

	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Let the widget JS render its first page of reviews.
		chromedp.Sleep(3*time.Second),
		// Expand the widget a few times; missing buttons are not an error.
		chromedp.ActionFunc(func(ctx context.Context) error {
			for i := 0; i < 3; i++ {
				_ = chromedp.Click(loadMoreSelector, chromedp.NodeVisible).Do(ctx)
				_ = chromedp.Sleep(1 * time.Second).Do(ctx)
			}
			return nil
		}),
		// Scroll to trigger lazy chunks.
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
		chromedp.Sleep(1*time.Second),
		chromedp.OuterHTML("html", &html),
	)

	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	if verbose {
		log.Printf("[BROWSER] Rendered HTML: %d bytes", len(html))
	}

	return html, nil
}

// BrowserSimple is a simplified version that uses default timeout.
func BrowserSimple(ctx context.Context, url string, verbose bool) (string, error) {
	return WithBrowser(ctx, url, 30*time.Second, verbose)
}
