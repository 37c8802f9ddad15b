package dto

// AnalyzeRequest describes one auction lot. Everything except user_email is
// optional free text passed through to the evaluation prompt.
type AnalyzeRequest struct {
	UserEmail      string                 `json:"user_email" binding:"required"`
	LotURL         string                 `json:"lot_url,omitempty"`
	Auctioneer     string                 `json:"auctioneer,omitempty"`
	CarTitle       string                 `json:"car_title,omitempty"`
	Year           string                 `json:"year,omitempty"`
	KM             string                 `json:"km,omitempty"`
	ConditionNotes string                 `json:"condition_notes,omitempty"`
	Extra          map[string]interface{} `json:"extra,omitempty"`
}

// AnalyzeResponse is the normalized evaluation. All five fields are always
// populated, falling back to defaults when the model reply is unusable.
type AnalyzeResponse struct {
	Score          float64 `json:"score"`
	RecommendedBid float64 `json:"recommended_bid"`
	Margin         float64 `json:"margin"`
	RiskLevel      string  `json:"risk_level"`
	Reasoning      string  `json:"reasoning"`
}

// AnalysisListItem is one stored analysis in a paginated listing.
type AnalysisListItem struct {
	ID             int64   `json:"id"`
	UserEmail      string  `json:"user_email"`
	LotURL         string  `json:"lot_url,omitempty"`
	Auctioneer     string  `json:"auctioneer,omitempty"`
	CarTitle       string  `json:"car_title,omitempty"`
	Score          float64 `json:"score"`
	RecommendedBid float64 `json:"recommended_bid"`
	Margin         float64 `json:"margin"`
	RiskLevel      string  `json:"risk_level"`
	CreatedAt      string  `json:"created_at"`
}
