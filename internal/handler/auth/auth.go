package auth

import (
	"net/http"
	"os"
	"time"

	"futari-board/internal/api"
	"futari-board/internal/cache"
	"futari-board/internal/database"
	"futari-board/internal/service"
	"futari-board/internal/session"
	"futari-board/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

var (
	getUserByUsername = store.GetUserByUsername
	authenticateUser  = service.AuthenticateUser
	sessionCreate     = session.Create
	sessionDestroy    = session.Destroy
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// @Summary     ログインフォーム
// @Description ログインフォームを表示する
// @Tags        auth
// @Produce     html
// @Success     200 {string} string "login form"
// @Router      /login [get]
func ShowLoginHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "login.html", nil)
	}
}

// @Summary     ログイン
// @Description ユーザー名とパスワードを検証し、セッション Cookie を発行する
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     plain
// @Param       username formData string true "ユーザー名"
// @Param       password formData string true "パスワード"
// @Success     302 "トップページへリダイレクト"
// @Failure     400 {string} string "ユーザー名とパスワードは必須です"
// @Failure     401 {string} string "ログイン失敗"
// @Failure     500 {string} string "サーバーエラー"
// @Router      /login [post]
func LoginHandler(db database.DB, sessions cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.String(http.StatusBadRequest, "無効なフォームデータです")
		}
		if err := c.Validate(&req); err != nil {
			return c.String(http.StatusBadRequest, "ユーザー名とパスワードは必須です")
		}

		user, err := getUserByUsername(c.Request().Context(), db, req.Username)
		if err != nil {
			return c.String(http.StatusUnauthorized, "ログイン失敗")
		}
		if err := authenticateUser(c.Request().Context(), *user, req.Password); err != nil {
			return c.String(http.StatusUnauthorized, "ログイン失敗")
		}

		sid, err := sessionCreate(c.Request().Context(), sessions, user.ID)
		if err != nil {
			logger.Error().Err(err).Int("user_id", user.ID).Msg("create session failed")
			return c.String(http.StatusInternalServerError, "セッションの作成に失敗しました")
		}
		c.SetCookie(&http.Cookie{
			Name:     session.CookieName,
			Value:    sid,
			Path:     "/",
			HttpOnly: true,
			MaxAge:   int(session.TTL / time.Second),
		})
		return c.Redirect(http.StatusFound, "/")
	}
}

// @Summary     ログアウト
// @Description セッションを破棄して Cookie を失効させる
// @Tags        auth
// @Success     302 "ログインページへリダイレクト"
// @Router      /logout [get]
func LogoutHandler(sessions cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		if ck, err := c.Cookie(session.CookieName); err == nil && ck.Value != "" {
			if err := sessionDestroy(c.Request().Context(), sessions, ck.Value); err != nil {
				logger.Error().Err(err).Msg("destroy session failed")
			}
			c.SetCookie(&http.Cookie{
				Name:     session.CookieName,
				Value:    "",
				Path:     "/",
				HttpOnly: true,
				MaxAge:   -1,
			})
		}
		return c.Redirect(http.StatusFound, "/login")
	}
}
