package store

import (
	"context"
	"fmt"

	"futari-board/internal/database"
	"futari-board/internal/model"
)

// ListInventoryByUser は指定ユーザーの在庫を id 順で返す。
func ListInventoryByUser(ctx context.Context, db database.DB, userID int) ([]model.Inventory, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, item_name, quantity, category, expire_date
		 FROM inventory WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListInventoryByUser: %w", err)
	}
	defer rows.Close()

	var items []model.Inventory
	for rows.Next() {
		var it model.Inventory
		if err := rows.Scan(&it.ID, &it.UserID, &it.ItemName, &it.Quantity, &it.Category, &it.ExpireDate); err != nil {
			return nil, fmt.Errorf("ListInventoryByUser: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListInventoryByUser: %w", err)
	}
	return items, nil
}

// GetInventoryItem は本人所有の行だけを引く。他人の行は存在しない扱い。
func GetInventoryItem(ctx context.Context, db database.DB, id, userID int) (*model.Inventory, error) {
	row := db.QueryRow(ctx,
		`SELECT id, user_id, item_name, quantity, category, expire_date
		 FROM inventory WHERE id = $1 AND user_id = $2`,
		id,
		userID,
	)
	it := &model.Inventory{}
	if err := row.Scan(
		&it.ID,
		&it.UserID,
		&it.ItemName,
		&it.Quantity,
		&it.Category,
		&it.ExpireDate,
	); err != nil {
		return nil, fmt.Errorf("GetInventoryItem: %w", err)
	}
	return it, nil
}

func CreateInventoryItem(ctx context.Context, db database.DB, it *model.Inventory) (*model.Inventory, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO inventory (user_id, item_name, quantity, category, expire_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		it.UserID,
		it.ItemName,
		it.Quantity,
		it.Category,
		it.ExpireDate,
	)
	if err := row.Scan(&it.ID); err != nil {
		return nil, fmt.Errorf("CreateInventoryItem: %w", err)
	}
	return it, nil
}

// UpdateInventoryItem は quantity と expire_date をまとめて 1 回の UPDATE で書く。
// 部分更新の合成はハンドラ側で済んでいる前提。
func UpdateInventoryItem(ctx context.Context, db database.DB, it *model.Inventory) error {
	_, err := db.Exec(ctx,
		`UPDATE inventory SET quantity = $1, expire_date = $2
		 WHERE id = $3 AND user_id = $4`,
		it.Quantity,
		it.ExpireDate,
		it.ID,
		it.UserID,
	)
	if err != nil {
		return fmt.Errorf("UpdateInventoryItem: %w", err)
	}
	return nil
}

// DeleteInventoryItem は本人所有の行だけを消す。該当なしでもエラーにしない。
func DeleteInventoryItem(ctx context.Context, db database.DB, id, userID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM inventory WHERE id = $1 AND user_id = $2`,
		id,
		userID,
	)
	if err != nil {
		return fmt.Errorf("DeleteInventoryItem: %w", err)
	}
	return nil
}
