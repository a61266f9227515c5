package reviews

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromText_LineCountMatchesNonEmptyLines(t *testing.T) {
	r := NewResolver(Options{})

	got := r.FromText("Great product!\nFast shipping\nLoved it")
	require.Len(t, got, 3)
	assert.Equal(t, "Great product!", got[0].Text)
	assert.Equal(t, "Fast shipping", got[1].Text)
	assert.Equal(t, "Loved it", got[2].Text)
}

func TestFromText_TrimsAndDropsEmptyLines(t *testing.T) {
	r := NewResolver(Options{})

	got := r.FromText("  padded line  \n\n\t\n   \nsecond line\n")
	require.Len(t, got, 2)
	assert.Equal(t, "padded line", got[0].Text)
	assert.Equal(t, "second line", got[1].Text)
}

func TestFromText_CRLFInput(t *testing.T) {
	r := NewResolver(Options{})

	got := r.FromText("one review\r\ntwo review\r\n")
	assert.Len(t, got, 2)
}

func TestFromText_EmptyInput(t *testing.T) {
	r := NewResolver(Options{})

	assert.Empty(t, r.FromText(""))
	assert.Empty(t, r.FromText("   \n \t \n"))
}

func TestFromText_RespectsMaxReviews(t *testing.T) {
	r := NewResolver(Options{MaxReviews: 2})

	got := r.FromText("a1\na2\na3\na4")
	assert.Len(t, got, 2)
}

func TestFromURL_ExtractsWidgetReviews(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`
			<html><body>
			<div class="okeReviews-review-body">Feels premium and the design is very discreet.</div>
			<div class="okeReviews-review-body">Simple to use and genuinely comfortable every day.</div>
			</body></html>`))
	}))
	defer server.Close()

	r := NewResolver(Options{})
	got, err := r.FromURL(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, server.URL, got[0].SourceURL)
	assert.Contains(t, got[0].Text, "Feels premium")
}

func TestFromURL_NetworkErrorReturnsFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // connection refused

	r := NewResolver(Options{})
	got, err := r.FromURL(context.Background(), server.URL)
	require.Error(t, err)
	assert.Nil(t, got)

	var fetchErr *FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestFromURL_BadStatusReturnsFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	r := NewResolver(Options{})
	_, err := r.FromURL(context.Background(), server.URL)
	require.Error(t, err)

	var fetchErr *FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestFromURL_NoReviewsReturnsEmptyListAndParseError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>Product description only.</p></body></html>`))
	}))
	defer server.Close()

	r := NewResolver(Options{})
	got, err := r.FromURL(context.Background(), server.URL)
	require.Error(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFromURL_CapsAtMaxReviews(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`
			<div class="jdgm-rev__body">First distinct review body with enough words.</div>
			<div class="jdgm-rev__body">Second distinct review body with enough words.</div>
			<div class="jdgm-rev__body">Third distinct review body with enough words.</div>`))
	}))
	defer server.Close()

	r := NewResolver(Options{MaxReviews: 2})
	got, err := r.FromURL(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
