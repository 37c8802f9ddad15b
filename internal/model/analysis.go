package model

import (
	"time"

	"gorm.io/datatypes"
)

type Analysis struct {
	ID             int64   `gorm:"primaryKey" json:"id"`
	UserEmail      string  `gorm:"size:255;not null;index" json:"user_email"`
	LotURL         string  `gorm:"size:500" json:"lot_url,omitempty"`
	Auctioneer     string  `gorm:"size:200" json:"auctioneer,omitempty"`
	CarTitle       string  `gorm:"size:200" json:"car_title,omitempty"`
	Score          float64 `json:"score"`
	RecommendedBid float64 `json:"recommended_bid"`
	Margin         float64 `json:"margin"`
	RiskLevel      string  `gorm:"size:20" json:"risk_level"`
	// RawInput keeps the free-form lot details and the model's reasoning
	// next to the scored fields: {year, km, condition_notes, extra, ai_reasoning}
	RawInput  datatypes.JSONMap `gorm:"type:json" json:"raw_input,omitempty"`
	CreatedAt time.Time         `gorm:"index" json:"created_at"`
}

func (Analysis) TableName() string {
	return "analyses"
}
