package export

import (
	"bytes"
	"fmt"

	"fintrack/internal/models"

	"github.com/jung-kurt/gofpdf"
)

// PDF renders expenses as a paginated document: a title line followed by one
// line per expense with its 1-based index, date, description, amount and
// currency.
func PDF(title string, expenses []*models.Expense) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	for i, e := range expenses {
		line := fmt.Sprintf("%d. %s  %s  %s %s",
			i+1,
			e.Date.Format("2006-01-02"),
			e.Description,
			e.Amount.StringFixed(2),
			e.Currency,
		)
		pdf.MultiCell(0, 7, line, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
