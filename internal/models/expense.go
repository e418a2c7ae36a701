package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a single spending event. Amount is always stored in the
// canonical currency; Currency keeps the original code for display and audit.
type Expense struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	Amount      decimal.Decimal `db:"amount"`
	Category    string          `db:"category"`
	Description string          `db:"description"`
	Currency    string          `db:"currency"`
	Date        time.Time       `db:"date"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}
