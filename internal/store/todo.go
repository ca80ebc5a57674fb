package store

import (
	"context"
	"fmt"

	"futari-board/internal/database"
	"futari-board/internal/model"
)

// ListTodosByUser は指定ユーザーの Todo を id 順で返す。
func ListTodosByUser(ctx context.Context, db database.DB, userID int) ([]model.Todo, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, task, due_date, is_done
		 FROM todos WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListTodosByUser: %w", err)
	}
	defer rows.Close()

	var todos []model.Todo
	for rows.Next() {
		var td model.Todo
		if err := rows.Scan(&td.ID, &td.UserID, &td.Task, &td.DueDate, &td.IsDone); err != nil {
			return nil, fmt.Errorf("ListTodosByUser: %w", err)
		}
		todos = append(todos, td)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListTodosByUser: %w", err)
	}
	return todos, nil
}

func CreateTodo(ctx context.Context, db database.DB, td *model.Todo) (*model.Todo, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO todos (user_id, task, due_date)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		td.UserID,
		td.Task,
		td.DueDate,
	)
	if err := row.Scan(&td.ID); err != nil {
		return nil, fmt.Errorf("CreateTodo: %w", err)
	}
	return td, nil
}

// DeleteTodo は本人所有の行だけを消す。該当なしでもエラーにしない。
func DeleteTodo(ctx context.Context, db database.DB, id, userID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM todos WHERE id = $1 AND user_id = $2`,
		id,
		userID,
	)
	if err != nil {
		return fmt.Errorf("DeleteTodo: %w", err)
	}
	return nil
}
