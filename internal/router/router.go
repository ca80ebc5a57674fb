// File: internal/router/router.go
package router

import (
	"futari-board/internal/cache"
	"futari-board/internal/database"
	"futari-board/internal/handler"
	"futari-board/internal/handler/auth"
	"futari-board/internal/handler/inventory"
	"futari-board/internal/handler/todos"
	"futari-board/internal/handler/users"
	"futari-board/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// loginRateLimit はログイン試行の許容レート。総当たり対策。
var loginRateLimit = rate.Limit(5)

// Setup は全ルートを登録する。閲覧・更新ページはすべて
// RequireLogin のセッションゲートの内側に置く。
func Setup(e *echo.Echo, db database.DB, sessions cache.Cache) {
	requireLogin := middleware.RequireLogin(sessions)
	loginLimiter := echomw.RateLimiter(echomw.NewRateLimiterMemoryStore(loginRateLimit))

	e.GET("/ping", handler.PingHandler(db))

	e.GET("/users", users.ListUsersHandler(db))
	e.POST("/users", users.RegisterUserHandler(db))

	e.GET("/login", auth.ShowLoginHandler())
	e.POST("/login", auth.LoginHandler(db, sessions), loginLimiter)
	e.GET("/logout", auth.LogoutHandler(sessions))

	e.GET("/", todos.IndexHandler(db), requireLogin)
	e.POST("/add", todos.AddTodoHandler(db), requireLogin)
	e.GET("/delete/:id", todos.DeleteTodoHandler(db), requireLogin)

	inv := e.Group("/inventory", requireLogin)
	inv.GET("", inventory.ListInventoryHandler(db, sessions))
	inv.POST("/add", inventory.AddInventoryHandler(db, sessions))
	inv.POST("/update/:id", inventory.UpdateInventoryHandler(db, sessions))
	inv.GET("/delete/:id", inventory.DeleteInventoryHandler(db))
}
