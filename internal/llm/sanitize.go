package llm

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/flyerscan/offers-tracker/internal/common"
)

// StripCodeFence removes a leading ```json / ``` marker and a trailing ```
// marker from the reply. Vision models routinely wrap JSON in markdown fences;
// we normalize that before parsing instead of trusting the literal formatting.
// Leading and trailing markers are stripped independently, so a reply with
// only one of them is normalized too. Unfenced input passes through
// unchanged, which makes the call idempotent.
func StripCodeFence(b []byte) []byte {
	s := strings.TrimSpace(string(b))
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return []byte(strings.TrimSpace(s))
}

// DecodeOffers turns the model's message content into offer candidates.
// Absent content, non-JSON content, and a missing 'offers' key are all
// ParseErrors; so is any offer element that violates the strict schema.
// An empty offers array is success.
func DecodeOffers(content []byte) ([]OfferFields, error) {
	doc := StripCodeFence(bytes.TrimSpace(content))
	if len(doc) == 0 {
		return nil, common.NewParseError("no valid answer received", nil)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(doc, &probe); err != nil {
		return nil, common.NewParseError("no valid answer received", err)
	}
	if _, ok := probe["offers"]; !ok {
		return nil, common.NewParseError("no valid answer received: reply has no 'offers' key", nil)
	}

	if err := ValidateJSONAgainstSchema(BuildOffersJSONSchema(), doc); err != nil {
		return nil, common.NewParseError("reply violates offers schema", err)
	}

	var wrapper struct {
		Offers []OfferFields `json:"offers"`
	}
	if err := json.Unmarshal(doc, &wrapper); err != nil {
		return nil, common.NewParseError("decode offers", err)
	}
	return wrapper.Offers, nil
}
