package api

// UpdateInventoryRequest は部分更新の入力。文字列のまま受けて
// 「空＝送られていない」をハンドラ側で判定する。
// swagger:model api.UpdateInventoryRequest
type UpdateInventoryRequest struct {
	// Quantity が空でなければ整数として代入する。空なら現状維持。
	Quantity string `form:"quantity" example:"5"`
	// ExpireDate が空でなければ YYYY-MM-DD として代入し、
	// 空なら「期限なし」へ明示的にクリアする。
	ExpireDate string `form:"expire_date" example:"2025-01-01"`
}
