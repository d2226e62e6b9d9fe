package service

// PriceOracle is a synchronous price source. The current implementation
// is a fixed constant; a live feed would implement the same method and
// add its own timeout/fallback policy.
type PriceOracle interface {
	PricePerGram() float64
}

// FixedPriceOracle serves the configured price-per-gram constant.
type FixedPriceOracle struct {
	price float64
}

func NewFixedPriceOracle(pricePerGramINR float64) *FixedPriceOracle {
	return &FixedPriceOracle{price: pricePerGramINR}
}

func (o *FixedPriceOracle) PricePerGram() float64 {
	return o.price
}
