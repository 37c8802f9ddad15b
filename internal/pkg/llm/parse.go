package llm

import (
	"encoding/json"
	"strings"
)

// Defaults substituted per missing key on a well-formed reply, and wholesale
// when the reply is unusable.
const (
	DefaultScore          = 60
	DefaultRecommendedBid = 30000
	DefaultMargin         = 15
	DefaultRiskLevel      = "MEDIUM"

	fallbackReasoningLimit = 500
)

// Result is the normalized five-field evaluation.
type Result struct {
	Score          float64
	RecommendedBid float64
	Margin         float64
	RiskLevel      string
	Reasoning      string
}

// replyPayload decodes the model's JSON object. Pointer fields distinguish
// an absent key (per-key default) from a present one.
type replyPayload struct {
	Score          *float64 `json:"score"`
	RecommendedBid *float64 `json:"recommended_bid"`
	Margin         *float64 `json:"margin"`
	RiskLevel      *string  `json:"risk_level"`
	Reasoning      *string  `json:"reasoning"`
}

// ParseReply normalizes the raw model reply. A reply that is not a JSON
// object, or carries a wrongly typed field, is treated as malformed as a
// whole and yields the fallback record with the raw text as reasoning.
// A well-formed object only falls back per missing key.
func ParseReply(raw string) Result {
	text := strings.TrimSpace(raw)

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &obj); err != nil || obj == nil {
		return Fallback(text)
	}

	var payload replyPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return Fallback(text)
	}

	result := Result{
		Score:          DefaultScore,
		RecommendedBid: DefaultRecommendedBid,
		Margin:         DefaultMargin,
		RiskLevel:      DefaultRiskLevel,
		Reasoning:      "",
	}
	if payload.Score != nil {
		result.Score = *payload.Score
	}
	if payload.RecommendedBid != nil {
		result.RecommendedBid = *payload.RecommendedBid
	}
	if payload.Margin != nil {
		result.Margin = *payload.Margin
	}
	if payload.RiskLevel != nil {
		result.RiskLevel = *payload.RiskLevel
	}
	if payload.Reasoning != nil {
		result.Reasoning = *payload.Reasoning
	}

	return result
}

// Fallback builds the fixed default record, keeping the first 500 characters
// of the raw reply as reasoning.
func Fallback(raw string) Result {
	reasoning := raw
	if runes := []rune(raw); len(runes) > fallbackReasoningLimit {
		reasoning = string(runes[:fallbackReasoningLimit])
	}

	return Result{
		Score:          DefaultScore,
		RecommendedBid: DefaultRecommendedBid,
		Margin:         DefaultMargin,
		RiskLevel:      DefaultRiskLevel,
		Reasoning:      reasoning,
	}
}
