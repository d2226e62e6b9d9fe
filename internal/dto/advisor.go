package dto

type AdvisorRequest struct {
	// Pointer so a missing field is distinguishable from an empty
	// message: the former is a client error, the latter gets the
	// generic fallback reply.
	Message *string `json:"message"`
	Name    string  `json:"name,omitempty"`
	Email   string  `json:"email,omitempty"`
}

// NextAction tells a client how to follow the purchase nudge.
type NextAction struct {
	Label        string         `json:"label"`
	Endpoint     string         `json:"endpoint"`
	Method       string         `json:"method"`
	ExpectedBody map[string]any `json:"expected_body"`
}

type AdvisorResponse struct {
	IsGoldRelated      bool        `json:"is_gold_related"`
	Reply              string      `json:"reply"`
	Suggestion         string      `json:"suggestion,omitempty"`
	RedirectToPurchase bool        `json:"redirect_to_purchase"`
	NextAction         *NextAction `json:"next_action,omitempty"`
}
