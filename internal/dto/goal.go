package dto

type CreateGoalRequest struct {
	Title         string `json:"title" validate:"required"`
	TargetAmount  Amount `json:"target_amount" validate:"required"`
	CurrentAmount Amount `json:"current_amount"`
	Deadline      string `json:"deadline" validate:"required"`
}

type UpdateGoalProgressRequest struct {
	CurrentAmount Amount `json:"current_amount" validate:"required"`
}

type GoalResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	TargetAmount  string `json:"target_amount"`
	CurrentAmount string `json:"current_amount"`
	Deadline      string `json:"deadline"`
	IsAchieved    bool   `json:"is_achieved"`
	CreatedAt     string `json:"created_at"`
}
