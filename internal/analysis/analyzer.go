// Package analysis computes derived signals (sentiment, keywords, themes)
// from a review list using lexical heuristics. No external model calls.
//
// The analyzer is deterministic: the same ordered review list always yields
// an identical AnalysisResult. Ties are broken alphabetically.
package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/review-scripter/internal/types"
)

const (
	// DefaultTopKeywords is the number of keywords reported.
	DefaultTopKeywords = 10
	// maxThemes bounds the theme list.
	maxThemes = 3
	// themeTermCount is how many co-occurring terms each theme carries.
	themeTermCount = 3
	// snippetWords bounds the representative review snippet per theme.
	snippetWords = 22
	// neutralBand is the score band treated as neutral sentiment.
	neutralBand = 0.05
)

// Analyze computes an AnalysisResult over an ordered review list. A nil or
// empty input yields zero counts and empty keyword/theme sets, never an error.
func Analyze(reviews []types.Review) *types.AnalysisResult {
	result := &types.AnalysisResult{
		ReviewCount: len(reviews),
		Keywords:    []string{},
	}
	if len(reviews) == 0 {
		return result
	}

	tokenized := make([][]string, len(reviews))
	for i, r := range reviews {
		tokenized[i] = tokenize(r.Text)
	}

	result.Sentiment = scoreSentiment(tokenized)
	result.Keywords = topKeywords(tokenized, DefaultTopKeywords)
	result.Themes = buildThemes(reviews, tokenized, result.Keywords)
	return result
}

// tokenize lowercases text and splits it into alphanumeric tokens.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// scoreSentiment tallies per-review lexical scores. Each review scores
// (positive hits - negative hits) / token count, clamped to [-1, 1].
func scoreSentiment(tokenized [][]string) types.SentimentSummary {
	var summary types.SentimentSummary
	var total float64

	for _, tokens := range tokenized {
		if len(tokens) == 0 {
			summary.NeutralHits++
			continue
		}
		var pos, neg int
		for _, tok := range tokens {
			if _, ok := positiveWords[tok]; ok {
				pos++
			} else if _, ok := negativeWords[tok]; ok {
				neg++
			}
		}
		score := float64(pos-neg) / float64(len(tokens))
		score = math.Max(-1, math.Min(1, score))
		total += score

		switch {
		case score >= neutralBand:
			summary.PositiveHits++
		case score <= -neutralBand:
			summary.NegativeHits++
		default:
			summary.NeutralHits++
		}
	}

	// Round for stable display and artifact diffing.
	summary.Average = math.Round(total/float64(len(tokenized))*1000) / 1000
	return summary
}

// topKeywords extracts the k most frequent stopword-filtered unigrams and
// bigrams across the corpus. Frequency descending, then alphabetical.
func topKeywords(tokenized [][]string, k int) []string {
	counts := make(map[string]int)
	for _, tokens := range tokenized {
		for i, tok := range tokens {
			if len(tok) > 2 && !isStopword(tok) {
				counts[tok]++
				if i+1 < len(tokens) {
					next := tokens[i+1]
					if len(next) > 2 && !isStopword(next) {
						counts[tok+" "+next]++
					}
				}
			}
		}
	}

	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	if len(keys) > k {
		keys = keys[:k]
	}
	return keys
}

// buildThemes derives up to maxThemes keyword clusters. Each theme is seeded
// by one top keyword, picks up co-occurring keywords as terms, and carries
// the first review mentioning the seed as its representative snippet.
func buildThemes(reviews []types.Review, tokenized [][]string, keywords []string) []types.Theme {
	var themes []types.Theme
	used := make(map[string]bool)

	for _, seed := range keywords {
		if len(themes) == maxThemes {
			break
		}
		if used[seed] {
			continue
		}

		repIdx := -1
		for i := range tokenized {
			if containsPhrase(tokenized[i], seed) {
				repIdx = i
				break
			}
		}
		if repIdx == -1 {
			continue
		}

		terms := []string{seed}
		used[seed] = true
		for _, other := range keywords {
			if len(terms) == themeTermCount {
				break
			}
			if used[other] {
				continue
			}
			if containsPhrase(tokenized[repIdx], other) {
				terms = append(terms, other)
				used[other] = true
			}
		}

		themes = append(themes, types.Theme{
			Label:          fmt.Sprintf("Theme %d", len(themes)+1),
			Terms:          terms,
			Representative: shorten(reviews[repIdx].Text, snippetWords),
		})
	}
	return themes
}

// containsPhrase reports whether tokens contain the keyword, which may be a
// unigram or a space-separated bigram.
func containsPhrase(tokens []string, keyword string) bool {
	parts := strings.Split(keyword, " ")
	if len(parts) == 1 {
		for _, tok := range tokens {
			if tok == keyword {
				return true
			}
		}
		return false
	}
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i] == parts[0] && tokens[i+1] == parts[1] {
			return true
		}
	}
	return false
}

// shorten truncates text to at most n words, appending an ellipsis when cut.
func shorten(text string, n int) string {
	words := strings.Fields(text)
	if len(words) <= n {
		return text
	}
	return strings.Join(words[:n], " ") + "…"
}
