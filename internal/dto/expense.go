package dto

type CreateExpenseRequest struct {
	Amount      Amount `json:"amount" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description"`
	Currency    string `json:"currency"`
	Date        string `json:"date"`
}

type UpdateExpenseRequest struct {
	Amount      *Amount `json:"amount"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Currency    *string `json:"currency"`
	Date        *string `json:"date"`
}

type ExpenseResponse struct {
	ID          string `json:"id"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Currency    string `json:"currency"`
	Date        string `json:"date"`
	CreatedAt   string `json:"created_at"`
}
