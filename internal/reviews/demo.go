package reviews

import "github.com/jonathan/review-scripter/internal/types"

// demoTexts stands in for live reviews during demos when a page yields nothing.
var demoTexts = []string{
	"Absolutely love this product, the quality is way better than I expected for the price.",
	"Shipping was fast and the packaging felt premium. Works exactly as described.",
	"I was skeptical at first but after two weeks of daily use I am completely sold.",
	"Great value for money. The battery life is impressive and it feels sturdy.",
	"Bought one for myself and one as a gift. Both arrived quickly and look fantastic.",
	"Customer service was helpful when I had a question about sizing. Five stars.",
	"The design is sleek and it fits perfectly into my daily routine.",
	"Honestly the best purchase I have made this year. Highly recommend it.",
}

// Demo returns a fixed set of sample reviews for demonstration sessions.
func Demo() []types.Review {
	reviews := make([]types.Review, 0, len(demoTexts))
	for _, text := range demoTexts {
		reviews = append(reviews, types.Review{Text: text})
	}
	return reviews
}
