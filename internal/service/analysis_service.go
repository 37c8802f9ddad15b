package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/autoflip/backend/internal/model"
	"github.com/autoflip/backend/internal/model/dto"
	"github.com/autoflip/backend/internal/pkg/llm"
	"github.com/autoflip/backend/internal/repository"
)

var (
	ErrAnalysisNotFound = errors.New("analysis not found")
)

// LotEvaluator is the completion-API dependency of the analyze flow.
// *llm.Client satisfies it; tests substitute a fake.
type LotEvaluator interface {
	Evaluate(ctx context.Context, lot llm.Lot) (string, error)
}

type AnalysisService struct {
	analysisRepo *repository.AnalysisRepository
	evaluator    LotEvaluator
	logger       *zap.Logger
}

func NewAnalysisService(
	analysisRepo *repository.AnalysisRepository,
	evaluator LotEvaluator,
	logger *zap.Logger,
) *AnalysisService {
	return &AnalysisService{
		analysisRepo: analysisRepo,
		evaluator:    evaluator,
		logger:       logger,
	}
}

// Analyze runs the blocking evaluate-parse-persist flow for one lot.
// The completion call and the insert are sequential; a failure in either
// fails the request, with no retry.
func (s *AnalysisService) Analyze(ctx context.Context, req *dto.AnalyzeRequest) (*dto.AnalyzeResponse, error) {
	raw, err := s.evaluator.Evaluate(ctx, llm.Lot{
		LotURL:         req.LotURL,
		Auctioneer:     req.Auctioneer,
		CarTitle:       req.CarTitle,
		Year:           req.Year,
		KM:             req.KM,
		ConditionNotes: req.ConditionNotes,
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI error: %w", err)
	}

	result := llm.ParseReply(raw)

	rawInput := datatypes.JSONMap{
		"year":            req.Year,
		"km":              req.KM,
		"condition_notes": req.ConditionNotes,
		"extra":           req.Extra,
		"ai_reasoning":    result.Reasoning,
	}

	analysis := &model.Analysis{
		UserEmail:      req.UserEmail,
		LotURL:         req.LotURL,
		Auctioneer:     req.Auctioneer,
		CarTitle:       req.CarTitle,
		Score:          result.Score,
		RecommendedBid: result.RecommendedBid,
		Margin:         result.Margin,
		RiskLevel:      result.RiskLevel,
		RawInput:       rawInput,
	}

	if err := s.analysisRepo.Create(analysis); err != nil {
		// The evaluation already succeeded; log it so the result is not
		// lost with the failed insert.
		s.logger.Error("analysis insert failed after completion",
			zap.Error(err),
			zap.String("user_email", req.UserEmail),
			zap.Float64("score", result.Score),
			zap.Float64("recommended_bid", result.RecommendedBid),
			zap.Float64("margin", result.Margin),
			zap.String("risk_level", result.RiskLevel),
		)
		return nil, fmt.Errorf("insert analysis: %w", err)
	}

	return &dto.AnalyzeResponse{
		Score:          result.Score,
		RecommendedBid: result.RecommendedBid,
		Margin:         result.Margin,
		RiskLevel:      result.RiskLevel,
		Reasoning:      result.Reasoning,
	}, nil
}

// List returns stored analyses for one requester email, newest first.
func (s *AnalysisService) List(userEmail string, page, pageSize int) ([]*dto.AnalysisListItem, int64, error) {
	analyses, total, err := s.analysisRepo.ListByUserEmail(userEmail, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	items := make([]*dto.AnalysisListItem, 0, len(analyses))
	for _, a := range analyses {
		items = append(items, buildListItem(a))
	}

	return items, total, nil
}

// Get returns one stored analysis by id.
func (s *AnalysisService) Get(id int64) (*model.Analysis, error) {
	analysis, err := s.analysisRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnalysisNotFound
		}
		return nil, err
	}
	return analysis, nil
}

func buildListItem(a *model.Analysis) *dto.AnalysisListItem {
	return &dto.AnalysisListItem{
		ID:             a.ID,
		UserEmail:      a.UserEmail,
		LotURL:         a.LotURL,
		Auctioneer:     a.Auctioneer,
		CarTitle:       a.CarTitle,
		Score:          a.Score,
		RecommendedBid: a.RecommendedBid,
		Margin:         a.Margin,
		RiskLevel:      a.RiskLevel,
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
	}
}
