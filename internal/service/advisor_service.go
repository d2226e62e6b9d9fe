package service

import (
	"fmt"

	"goldadvisor/internal/dto"

	"go.uber.org/zap"
)

const (
	fallbackReply = "I can help with many finance topics. Ask about gold for advice and digital gold purchase options."
	safeHavenFact = "Gold is a safe-haven asset and can hedge against inflation."
	purchaseNudge = "You can invest in gold via the Simplify Money app using Digital Gold — start with just ₹10."
)

// AdvisorService turns a free-text question into a reply and, for
// gold-related questions, a purchase nudge. It holds no mutable state
// and performs no I/O: the same request always yields the same response.
type AdvisorService struct {
	classifier Classifier
	oracle     PriceOracle
	logger     *zap.Logger
}

func NewAdvisorService(classifier Classifier, oracle PriceOracle, logger *zap.Logger) *AdvisorService {
	return &AdvisorService{
		classifier: classifier,
		oracle:     oracle,
		logger:     logger,
	}
}

// Advise never fails: any text, including empty, yields a
// classification and a reply. Presence of the message field is the
// transport layer's concern.
func (s *AdvisorService) Advise(req *dto.AdvisorRequest) *dto.AdvisorResponse {
	var message string
	if req.Message != nil {
		message = *req.Message
	}

	c := s.classifier.Classify(message)
	if !c.GoldRelated {
		return &dto.AdvisorResponse{
			IsGoldRelated: false,
			Reply:         fallbackReply,
		}
	}

	reply := safeHavenFact
	if c.PriceQuery {
		reply = fmt.Sprintf("Indicative price: ₹%g per gram.", s.oracle.PricePerGram())
	}

	s.logger.Debug("Gold-related query advised",
		zap.Bool("buy_intent", c.BuyIntent),
		zap.String("intent_hint", c.IntentHint),
	)

	return &dto.AdvisorResponse{
		IsGoldRelated:      true,
		Reply:              reply,
		Suggestion:         purchaseNudge,
		RedirectToPurchase: c.BuyIntent,
		NextAction: &dto.NextAction{
			Label:    "Buy digital gold now",
			Endpoint: "/purchase",
			Method:   "POST",
			ExpectedBody: map[string]any{
				"user_id":       "<your_user_id>",
				"amount_in_inr": 1000,
			},
		},
	}
}
