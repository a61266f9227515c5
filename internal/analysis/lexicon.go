package analysis

// Lexical sentiment word lists. Coarse on purpose: the analyzer only needs a
// positive/negative/neutral tally and an average, not model-grade scoring.

var positiveWords = map[string]struct{}{}
var negativeWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"amazing", "awesome", "beautiful", "best", "better", "comfortable",
		"convenient", "delighted", "discreet", "easy", "effective", "elegant",
		"excellent", "exceeded", "fantastic", "fast", "favorite", "friendly",
		"good", "great", "happy", "helpful", "impressed", "impressive",
		"incredible", "love", "loved", "lovely", "luxury", "nice", "perfect",
		"pleasant", "powerful", "premium", "quality", "quick", "quiet",
		"recommend", "reliable", "satisfied", "simple", "smooth", "soft",
		"solid", "sturdy", "stylish", "superb", "wonderful", "worth",
	} {
		positiveWords[w] = struct{}{}
	}
	for _, w := range []string{
		"annoying", "awful", "bad", "broke", "broken", "cheap", "defective",
		"disappointed", "disappointing", "expensive", "faulty", "flimsy",
		"fragile", "hate", "hated", "horrible", "late", "leak", "loud",
		"mediocre", "noisy", "overpriced", "poor", "problem", "refund",
		"return", "returned", "slow", "terrible", "uncomfortable", "useless",
		"waste", "weak", "worse", "worst", "wrong",
	} {
		negativeWords[w] = struct{}{}
	}
}
