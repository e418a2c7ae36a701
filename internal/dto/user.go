package dto

type UserResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

type UpdateUserRequest struct {
	Name  string `json:"name" validate:"omitempty,min=1"`
	Email string `json:"email" validate:"omitempty,email"`
}
