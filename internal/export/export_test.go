package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleExpenses() []*models.Expense {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	return []*models.Expense{
		{
			ID:          uuid.New(),
			Amount:      decimal.RequireFromString("55"),
			Description: "Train ticket",
			Currency:    "EUR",
			Date:        day,
		},
		{
			ID:          uuid.New(),
			Amount:      decimal.RequireFromString("12.4"),
			Description: "Lunch, downtown",
			Currency:    "USD",
			Date:        day.AddDate(0, 0, 1),
		},
	}
}

func TestCSVColumnOrder(t *testing.T) {
	out, err := CSV(sampleExpenses())
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"date", "description", "amount", "currency"}, rows[0])
	assert.Equal(t, []string{"2024-03-10", "Train ticket", "55.00", "EUR"}, rows[1])
	// A description containing the delimiter survives the round trip.
	assert.Equal(t, []string{"2024-03-11", "Lunch, downtown", "12.40", "USD"}, rows[2])
}

func TestCSVEmpty(t *testing.T) {
	out, err := CSV(nil)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"date", "description", "amount", "currency"}, rows[0])
}

func TestPDFProducesDocument(t *testing.T) {
	out, err := PDF("Expense Report", sampleExpenses())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestPDFEmptyList(t *testing.T) {
	out, err := PDF("Expense Report", nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
