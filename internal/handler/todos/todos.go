package todos

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"futari-board/internal/api"
	"futari-board/internal/database"
	"futari-board/internal/middleware"
	"futari-board/internal/model"
	"futari-board/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

var (
	listTodosByUser = store.ListTodosByUser
	createTodo      = store.CreateTodo
	deleteTodo      = store.DeleteTodo
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// @Summary     タスク一覧
// @Description ログイン中ユーザーのタスクを表示する
// @Tags        todos
// @Produce     html
// @Success     200 {string} string "todos view"
// @Failure     500 {string} string "サーバーエラー"
// @Router      / [get]
func IndexHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		todos, err := listTodosByUser(c.Request().Context(), db, userID)
		if err != nil {
			logger.Error().Err(err).Int("user_id", userID).Msg("list todos failed")
			return c.String(http.StatusInternalServerError, "サーバーエラーが発生しました")
		}
		return c.Render(http.StatusOK, "index.html", map[string]any{"Todos": todos})
	}
}

// @Summary     タスク追加
// @Description ログイン中ユーザーのタスクを追加する
// @Tags        todos
// @Accept      application/x-www-form-urlencoded
// @Param       task     formData string true  "タスク内容"
// @Param       due_date formData string false "期限 (YYYY-MM-DD)"
// @Success     302 "トップページへリダイレクト"
// @Failure     400 {string} string "検証エラー"
// @Failure     500 {string} string "サーバーエラー"
// @Router      /add [post]
func AddTodoHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		var req api.CreateTodoRequest
		if err := c.Bind(&req); err != nil {
			return c.String(http.StatusBadRequest, "無効なフォームデータです")
		}
		if err := c.Validate(&req); err != nil {
			return c.String(http.StatusBadRequest, "タスクは必須です")
		}

		todo := &model.Todo{UserID: userID, Task: req.Task}
		if req.DueDate != "" {
			due, err := time.Parse("2006-01-02", req.DueDate)
			if err != nil {
				return c.String(http.StatusBadRequest, "期限の形式が正しくありません")
			}
			todo.DueDate = &due
		}

		if _, err := createTodo(c.Request().Context(), db, todo); err != nil {
			logger.Error().Err(err).Int("user_id", userID).Msg("create todo failed")
			return c.String(http.StatusInternalServerError, "サーバーエラーが発生しました")
		}
		return c.Redirect(http.StatusFound, "/")
	}
}

// @Summary     タスク削除
// @Description ログイン中ユーザーのタスクを削除する。存在しない ID は何もしない
// @Tags        todos
// @Param       id path int true "タスク ID"
// @Success     302 "トップページへリダイレクト"
// @Failure     400 {string} string "検証エラー"
// @Failure     500 {string} string "サーバーエラー"
// @Router      /delete/{id} [get]
func DeleteTodoHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.String(http.StatusBadRequest, "IDが正しくありません")
		}
		if err := deleteTodo(c.Request().Context(), db, id, userID); err != nil {
			logger.Error().Err(err).Int("todo_id", id).Msg("delete todo failed")
			return c.String(http.StatusInternalServerError, "サーバーエラーが発生しました")
		}
		return c.Redirect(http.StatusFound, "/")
	}
}
