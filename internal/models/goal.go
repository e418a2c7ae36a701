package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal is a savings target. IsAchieved is a cached signal and must equal
// CurrentAmount >= TargetAmount after every progress write.
type Goal struct {
	ID            uuid.UUID       `db:"id"`
	UserID        uuid.UUID       `db:"user_id"`
	Title         string          `db:"title"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	Deadline      time.Time       `db:"deadline"`
	IsAchieved    bool            `db:"is_achieved"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}
