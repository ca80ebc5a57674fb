// File: cmd/service/main.go
// @title        ふたりの暮らしボード
// @version      1.0
// @description  ふたり暮らし向けのタスクと在庫の管理アプリ
// @host         localhost:8080
// @BasePath     /
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"futari-board/internal/cache"
	"futari-board/internal/database"
	"futari-board/internal/router"
	"futari-board/internal/view"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "futari-board/docs" // swag が生成した docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newRenderer     = view.New
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("環境変数 DATABASE_URL が設定されていません")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return fmt.Errorf("環境変数 REDIS_ADDR が設定されていません")
	}

	redisIndex := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("無効な REDIS_DB: %v", err)
		}
		redisIndex = n
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := newPgxPool(context.Background(), dbURL)
	if err != nil {
		return fmt.Errorf("DB 接続失敗: %v", err)
	}
	defer db.Close()

	sessions, err := newRedisClient(redisAddr, redisPassword, redisIndex)
	if err != nil {
		return fmt.Errorf("Redis 接続失敗: %v", err)
	}
	defer sessions.Close()

	if err := runMigrationsFn(dbURL); err != nil {
		return fmt.Errorf("Migration 実行失敗: %v", err)
	}

	renderer, err := newRenderer()
	if err != nil {
		return fmt.Errorf("テンプレート読み込み失敗: %v", err)
	}

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Renderer = renderer
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, db, sessions)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, ":"+port)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
