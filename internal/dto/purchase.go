package dto

type PurchaseRequest struct {
	UserID    int64   `json:"user_id"`
	AmountINR float64 `json:"amount_in_inr"`
}

// PurchaseReceipt is the confirmation returned right after a purchase.
type PurchaseReceipt struct {
	Message       string  `json:"message"`
	User          string  `json:"user"`
	AmountINR     float64 `json:"amount_in_inr"`
	Grams         float64 `json:"grams"`
	TransactionID string  `json:"transaction_id"`
	PricePerGram  float64 `json:"price_per_gram"`
	Provider      string  `json:"provider"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}

// PurchaseResponse is a single history entry.
type PurchaseResponse struct {
	ID           string  `json:"id"`
	UserID       int64   `json:"user_id"`
	AmountINR    float64 `json:"amount_in_inr"`
	Grams        float64 `json:"grams"`
	PricePerGram float64 `json:"price_per_gram"`
	Provider     string  `json:"provider"`
	Status       string  `json:"status"`
	Timestamp    string  `json:"timestamp"`
}

type PriceResponse struct {
	PricePerGramINR float64 `json:"price_per_gram_inr"`
	Source          string  `json:"source"`
}
