package dto

type PredictRequest struct {
	Date        string `json:"date" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description"`
	Currency    string `json:"currency"`
}

type PredictResponse struct {
	PredictedAmount string `json:"predicted_amount"`
}
