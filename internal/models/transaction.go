package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is a minimal single-currency ledger line.
type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Date        time.Time       `db:"date"`
	CreatedAt   time.Time       `db:"created_at"`
}
