package service

import "strings"

// Classification is the result of inspecting a single user message.
type Classification struct {
	GoldRelated bool
	BuyIntent   bool
	PriceQuery  bool
	IntentHint  string
}

// Classifier decides whether a free-text message concerns gold
// investing. Implementations must be pure: same message, same result.
type Classifier interface {
	Classify(message string) Classification
}

// KeywordClassifier matches a message against a fixed vocabulary,
// case-insensitively. It is the simplest classifier satisfying the
// contract; anything smarter slots in behind the same interface.
type KeywordClassifier struct {
	goldKeywords []string
	buyIntent    []string
}

var defaultGoldKeywords = []string{
	"gold", "24k", "24 karat", "22k", "sovereign gold bond", "sgb",
	"digital gold", "invest", "price", "buy", "gold etf",
	"gold mutual fund", "gold returns", "gold inflation hedge", "gold taxation",
}

var defaultBuyIntent = []string{
	"buy", "purchase", "invest", "yes", "proceed", "confirm", "place order",
}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{
		goldKeywords: defaultGoldKeywords,
		buyIntent:    defaultBuyIntent,
	}
}

func (c *KeywordClassifier) Classify(message string) Classification {
	lower := strings.ToLower(message)

	result := Classification{IntentHint: "general"}
	if !containsAny(lower, c.goldKeywords) {
		return result
	}

	result.GoldRelated = true
	result.IntentHint = "gold_investment"
	result.BuyIntent = containsAny(lower, c.buyIntent)
	result.PriceQuery = strings.Contains(lower, "price")
	return result
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
