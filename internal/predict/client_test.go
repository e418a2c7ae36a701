package predict

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPredictAmount(t *testing.T) {
	owner := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/predict", r.URL.Path)

		var features Features
		require.NoError(t, json.NewDecoder(r.Body).Decode(&features))
		assert.Equal(t, "food", features.Category)
		assert.Equal(t, owner, features.UserID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]float64{"predicted_amount": 42.5})
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, zap.NewNop())
	amount, err := client.PredictAmount(context.Background(), Features{
		Date:     time.Now(),
		Category: "food",
		Currency: "USD",
		UserID:   owner,
	})
	require.NoError(t, err)
	assert.Equal(t, "42.50", amount.StringFixed(2))
}

func TestPredictAmountServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, zap.NewNop())
	_, err := client.PredictAmount(context.Background(), Features{Category: "food"})
	assert.ErrorIs(t, err, ErrPredictorUnavailable)
}

func TestPredictAmountTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	client := NewHTTPClient(srv.URL, 50*time.Millisecond, zap.NewNop())
	_, err := client.PredictAmount(context.Background(), Features{Category: "food"})
	assert.ErrorIs(t, err, ErrPredictorUnavailable)
}
