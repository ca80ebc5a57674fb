package api

// swagger:model api.CreateInventoryRequest
type CreateInventoryRequest struct {
	Name string `form:"name" validate:"required" example:"Milk"`
	// Quantity は整数文字列。空なら 0。
	Quantity string `form:"quantity" example:"3"`
	Category string `form:"category" example:"乳製品"`
	// ExpireDate は YYYY-MM-DD。空なら期限なし。
	ExpireDate string `form:"expire_date" example:"2025-01-01"`
}
