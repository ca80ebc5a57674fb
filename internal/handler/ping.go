// File: internal/handler/ping.go
package handler

import (
	"net/http"

	"futari-board/internal/database"

	"github.com/labstack/echo/v4"
)

// PingHandler ヘルスチェック
// @Summary     Health Check
// @Description pong を返し、データベース接続を確認する
// @Tags        health
// @Produce     plain
// @Success     200 {string} string "pong"
// @Failure     500 {string} string "database unhealthy"
// @Router      /ping [get]
func PingHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.String(http.StatusInternalServerError, "database unhealthy")
		}
		return c.String(http.StatusOK, "pong")
	}
}
