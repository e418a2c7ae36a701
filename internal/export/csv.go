// Package export renders a user's expenses into response-ready byte
// representations. Rendering is pure: amounts come in already normalized and
// are written out as-is.
package export

import (
	"bytes"
	"encoding/csv"

	"fintrack/internal/models"
)

// CSV renders expenses as delimited text with the fixed column order
// [date, description, amount, currency].
func CSV(expenses []*models.Expense) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"date", "description", "amount", "currency"}); err != nil {
		return nil, err
	}

	for _, e := range expenses {
		record := []string{
			e.Date.Format("2006-01-02"),
			e.Description,
			e.Amount.StringFixed(2),
			e.Currency,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
