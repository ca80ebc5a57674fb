package api

// swagger:model api.CreateTodoRequest
type CreateTodoRequest struct {
	Task string `form:"task" validate:"required" example:"牛乳を買う"`
	// DueDate は YYYY-MM-DD。空なら期限なし。
	DueDate string `form:"due_date" example:"2025-01-01"`
}
