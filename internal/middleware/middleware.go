package middleware

import (
	"net/http"

	"futari-board/internal/cache"
	"futari-board/internal/session"

	"github.com/labstack/echo/v4"
)

const (
	ContextUserKey    = "user_id"
	ContextSessionKey = "session_id"
)

// RequireLogin は有効なセッション Cookie を持たないリクエストを
// ハンドラに渡さず /login へ 302 で送り返す認証ゲート。
// 通過したリクエストには解決済みのユーザー ID とセッション ID を積む。
func RequireLogin(store cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ck, err := c.Cookie(session.CookieName)
			if err != nil || ck.Value == "" {
				return c.Redirect(http.StatusFound, "/login")
			}
			userID, err := session.Lookup(c.Request().Context(), store, ck.Value)
			if err != nil {
				return c.Redirect(http.StatusFound, "/login")
			}
			c.Set(ContextUserKey, userID)
			c.Set(ContextSessionKey, ck.Value)
			return next(c)
		}
	}
}

// CurrentUserID は RequireLogin が格納したユーザー ID を取り出す。
func CurrentUserID(c echo.Context) (int, bool) {
	id, ok := c.Get(ContextUserKey).(int)
	return id, ok
}

// SessionID は RequireLogin が格納したセッション ID を取り出す。
func SessionID(c echo.Context) string {
	sid, _ := c.Get(ContextSessionKey).(string)
	return sid
}
