package service

import (
	"context"
	"strings"

	"fintrack/internal/dto"
	"fintrack/internal/predict"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PredictService forwards expense features to the out-of-process prediction
// collaborator. The prediction carries no correctness guarantee.
type PredictService struct {
	predictor predict.Predictor
	logger    *zap.Logger
}

func NewPredictService(predictor predict.Predictor, logger *zap.Logger) *PredictService {
	return &PredictService{
		predictor: predictor,
		logger:    logger,
	}
}

func (s *PredictService) Predict(ctx context.Context, actorID uuid.UUID, req *dto.PredictRequest) (*dto.PredictResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	amount, err := s.predictor.PredictAmount(ctx, predict.Features{
		Date:        date,
		Category:    req.Category,
		Description: req.Description,
		Currency:    strings.ToUpper(req.Currency),
		UserID:      actorID,
	})
	if err != nil {
		return nil, err
	}

	return &dto.PredictResponse{PredictedAmount: amount.StringFixed(2)}, nil
}
