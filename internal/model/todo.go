// File: internal/model/todo.go
package model

import "time"

type Todo struct {
	ID      int        `db:"id" json:"id"`
	UserID  int        `db:"user_id" json:"user_id"`
	Task    string     `db:"task" json:"task"`
	DueDate *time.Time `db:"due_date" json:"due_date,omitempty"`
	IsDone  bool       `db:"is_done" json:"is_done"`
}
