package analysis

// stopwords is a compact English stopword list for keyword filtering.
// Keeping it small and fixed keeps the analyzer deterministic and dependency-free.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "about", "above", "after", "again", "all", "also", "am", "an",
		"and", "any", "are", "as", "at", "be", "because", "been", "before",
		"being", "below", "between", "both", "but", "by", "can", "could",
		"did", "do", "does", "doing", "down", "during", "each", "few", "for",
		"from", "further", "had", "has", "have", "having", "he", "her",
		"here", "hers", "him", "his", "how", "i", "if", "in", "into", "is",
		"it", "its", "itself", "just", "me", "more", "most", "my", "myself",
		"no", "nor", "not", "now", "of", "off", "on", "once", "only", "or",
		"other", "our", "ours", "out", "over", "own", "same", "she", "should",
		"so", "some", "such", "than", "that", "the", "their", "theirs",
		"them", "then", "there", "these", "they", "this", "those", "through",
		"to", "too", "under", "until", "up", "very", "was", "we", "were",
		"what", "when", "where", "which", "while", "who", "whom", "why",
		"will", "with", "would", "you", "your", "yours", "yourself",
		// Review boilerplate that carries no signal.
		"ive", "im", "dont", "didnt", "doesnt", "cant", "wont", "really",
		"get", "got", "one", "use", "used", "using",
	} {
		stopwords[w] = struct{}{}
	}
}

// isStopword reports whether a lowercased token should be excluded from keywords.
func isStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
