package users

import (
	"errors"
	"net/http"
	"os"

	"futari-board/internal/api"
	"futari-board/internal/database"
	"futari-board/internal/model"
	"futari-board/internal/service"
	"futari-board/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// MaxUsers は登録できるアカウントの上限。ふたり暮らし用なので 2。
const MaxUsers = 2

var (
	hashPassword      = service.HashPassword
	countUsers        = store.CountUsers
	getUserByUsername = store.GetUserByUsername
	createUser        = store.CreateUser
	listUsers         = store.ListUsers
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// @Summary     ユーザー一覧
// @Description 登録済みユーザーの一覧を表示する
// @Tags        users
// @Produce     html
// @Success     200 {string} string "users view"
// @Failure     500 {string} string "サーバーエラー"
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			logger.Error().Err(err).Msg("list users failed")
			return c.String(http.StatusInternalServerError, "サーバーエラーが発生しました")
		}
		return c.Render(http.StatusOK, "users.html", map[string]any{"Users": users})
	}
}

// @Summary     ユーザー登録
// @Description ユーザーを登録する。必須チェック → 定員チェック → 重複チェックの順で検証する
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     plain
// @Param       username formData string true "ユーザー名"
// @Param       password formData string true "パスワード"
// @Success     302 "ユーザー一覧へリダイレクト"
// @Failure     400 {string} string "検証エラー"
// @Failure     500 {string} string "サーバーエラー"
// @Router      /users [post]
func RegisterUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterUserRequest
		if err := c.Bind(&req); err != nil {
			return c.String(http.StatusBadRequest, "無効なフォームデータです")
		}
		// 検証順序は固定: 必須 → 定員 → 重複。
		if err := c.Validate(&req); err != nil {
			return c.String(http.StatusBadRequest, "ユーザー名とパスワードは必須です")
		}

		count, err := countUsers(c.Request().Context(), db)
		if err != nil {
			logger.Error().Err(err).Msg("count users failed")
			return c.String(http.StatusInternalServerError, "サーバーエラーが発生しました")
		}
		if count >= MaxUsers {
			return c.String(http.StatusBadRequest, "ユーザーは2名までです")
		}

		if _, err := getUserByUsername(c.Request().Context(), db, req.Username); err == nil {
			return c.String(http.StatusBadRequest, "そのユーザー名は既に使われています")
		} else if !errors.Is(err, pgx.ErrNoRows) {
			logger.Error().Err(err).Msg("lookup username failed")
			return c.String(http.StatusInternalServerError, "サーバーエラーが発生しました")
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			logger.Error().Err(err).Msg("hash password failed")
			return c.String(http.StatusInternalServerError, "サーバーエラーが発生しました")
		}

		if _, err := createUser(c.Request().Context(), db, &model.User{
			Username:     req.Username,
			PasswordHash: hash,
		}); err != nil {
			logger.Error().Err(err).Msg("create user failed")
			return c.String(http.StatusInternalServerError, "サーバーエラーが発生しました")
		}

		return c.Redirect(http.StatusFound, "/users")
	}
}
