package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrPredictorUnavailable = errors.New("predictor unavailable")

// Features describe an expense whose amount should be predicted.
type Features struct {
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Currency    string    `json:"currency"`
	UserID      uuid.UUID `json:"user_id"`
}

// Predictor is the out-of-process prediction collaborator. It gives no
// correctness guarantee and is never retried here.
type Predictor interface {
	PredictAmount(ctx context.Context, features Features) (decimal.Decimal, error)
}

// HTTPClient posts expense features to the prediction service and returns
// the predicted amount.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type predictResponse struct {
	PredictedAmount float64 `json:"predicted_amount"`
}

func (c *HTTPClient) PredictAmount(ctx context.Context, features Features) (decimal.Decimal, error) {
	payload, err := json.Marshal(features)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrPredictorUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrPredictorUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("Prediction request failed", zap.Error(err))
		return decimal.Zero, fmt.Errorf("%w: %v", ErrPredictorUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("%w: status %d", ErrPredictorUnavailable, resp.StatusCode)
	}

	var body predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrPredictorUnavailable, err)
	}

	return decimal.NewFromFloat(body.PredictedAmount), nil
}
