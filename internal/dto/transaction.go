package dto

type CreateTransactionRequest struct {
	Description string `json:"description" validate:"required"`
	Amount      Amount `json:"amount" validate:"required"`
}

type TransactionResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	CreatedAt   string `json:"created_at"`
}
