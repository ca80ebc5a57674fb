// File: internal/model/inventory.go
package model

import "time"

// Inventory は食材・日用品の在庫 1 行分。
// ExpireDate が nil のときは「期限なし」を意味する。
type Inventory struct {
	ID         int        `db:"id" json:"id"`
	UserID     int        `db:"user_id" json:"user_id"`
	ItemName   string     `db:"item_name" json:"item_name"`
	Quantity   int        `db:"quantity" json:"quantity"`
	Category   *string    `db:"category" json:"category,omitempty"`
	ExpireDate *time.Time `db:"expire_date" json:"expire_date,omitempty"`
}
