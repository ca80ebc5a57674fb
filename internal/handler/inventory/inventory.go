package inventory

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"futari-board/internal/api"
	"futari-board/internal/cache"
	"futari-board/internal/database"
	"futari-board/internal/middleware"
	"futari-board/internal/model"
	"futari-board/internal/session"
	"futari-board/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const (
	msgUpdated      = "Inventory item updated successfully!"
	msgInvalidInput = "Invalid quantity or date format. Please check your input."
)

var (
	listInventoryByUser = store.ListInventoryByUser
	getInventoryItem    = store.GetInventoryItem
	createInventoryItem = store.CreateInventoryItem
	updateInventoryItem = store.UpdateInventoryItem
	deleteInventoryItem = store.DeleteInventoryItem
	setFlash            = session.SetFlash
	popFlash            = session.PopFlash
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func flashAndRedirect(c echo.Context, sessions cache.Cache, level, msg string) error {
	if sid := middleware.SessionID(c); sid != "" {
		if err := setFlash(c.Request().Context(), sessions, sid, session.Flash{Level: level, Message: msg}); err != nil {
			logger.Error().Err(err).Msg("set flash failed")
		}
	}
	return c.Redirect(http.StatusFound, "/inventory")
}

// @Summary     在庫一覧
// @Description ログイン中ユーザーの在庫とフラッシュメッセージを表示する
// @Tags        inventory
// @Produce     html
// @Success     200 {string} string "inventory view"
// @Failure     500 {string} string "サーバーエラー"
// @Router      /inventory [get]
func ListInventoryHandler(db database.DB, sessions cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		items, err := listInventoryByUser(c.Request().Context(), db, userID)
		if err != nil {
			logger.Error().Err(err).Int("user_id", userID).Msg("list inventory failed")
			return c.String(http.StatusInternalServerError, "サーバーエラーが発生しました")
		}
		data := map[string]any{"Items": items}
		if sid := middleware.SessionID(c); sid != "" {
			if f, ok := popFlash(c.Request().Context(), sessions, sid); ok {
				data["Flash"] = f
			}
		}
		return c.Render(http.StatusOK, "inventory.html", data)
	}
}

// @Summary     在庫追加
// @Description 在庫アイテムを追加する
// @Tags        inventory
// @Accept      application/x-www-form-urlencoded
// @Param       name        formData string true  "品名"
// @Param       quantity    formData string false "数量 (整数)"
// @Param       category    formData string false "カテゴリ"
// @Param       expire_date formData string false "期限 (YYYY-MM-DD)"
// @Success     302 "在庫一覧へリダイレクト"
// @Failure     400 {string} string "検証エラー"
// @Failure     500 {string} string "サーバーエラー"
// @Router      /inventory/add [post]
func AddInventoryHandler(db database.DB, sessions cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		var req api.CreateInventoryRequest
		if err := c.Bind(&req); err != nil {
			return c.String(http.StatusBadRequest, "無効なフォームデータです")
		}
		if err := c.Validate(&req); err != nil {
			return c.String(http.StatusBadRequest, "品名は必須です")
		}

		item := &model.Inventory{UserID: userID, ItemName: req.Name}
		if req.Quantity != "" {
			q, err := strconv.Atoi(req.Quantity)
			if err != nil {
				return flashAndRedirect(c, sessions, "danger", msgInvalidInput)
			}
			item.Quantity = q
		}
		if req.Category != "" {
			item.Category = &req.Category
		}
		if req.ExpireDate != "" {
			d, err := time.Parse("2006-01-02", req.ExpireDate)
			if err != nil {
				return flashAndRedirect(c, sessions, "danger", msgInvalidInput)
			}
			item.ExpireDate = &d
		}

		if _, err := createInventoryItem(c.Request().Context(), db, item); err != nil {
			logger.Error().Err(err).Int("user_id", userID).Msg("create inventory item failed")
			return c.String(http.StatusInternalServerError, "サーバーエラーが発生しました")
		}
		return c.Redirect(http.StatusFound, "/inventory")
	}
}

// @Summary     在庫の部分更新
// @Description quantity と expire_date を部分更新する。expire_date が空なら「期限なし」へクリアする
// @Tags        inventory
// @Accept      application/x-www-form-urlencoded
// @Param       id          path     int    true  "アイテム ID"
// @Param       quantity    formData string false "数量 (整数)"
// @Param       expire_date formData string false "期限 (YYYY-MM-DD)"
// @Success     302 "在庫一覧へリダイレクト"
// @Failure     400 {string} string "検証エラー"
// @Failure     500 {string} string "サーバーエラー"
// @Router      /inventory/update/{id} [post]
func UpdateInventoryHandler(db database.DB, sessions cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.String(http.StatusBadRequest, "IDが正しくありません")
		}
		var req api.UpdateInventoryRequest
		if err := c.Bind(&req); err != nil {
			return c.String(http.StatusBadRequest, "無効なフォームデータです")
		}

		ctx := c.Request().Context()
		item, err := getInventoryItem(ctx, db, id, userID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				// 存在しない・他人の行は黙って無視する
				return c.Redirect(http.StatusFound, "/inventory")
			}
			logger.Error().Err(err).Int("item_id", id).Msg("get inventory item failed")
			return c.String(http.StatusInternalServerError, "サーバーエラーが発生しました")
		}

		// 解析に失敗したら一切書き込まない。quantity の空は現状維持、
		// expire_date の空は「期限なし」への明示的クリア。
		if req.Quantity != "" {
			q, err := strconv.Atoi(req.Quantity)
			if err != nil {
				return flashAndRedirect(c, sessions, "danger", msgInvalidInput)
			}
			item.Quantity = q
		}
		if req.ExpireDate != "" {
			d, err := time.Parse("2006-01-02", req.ExpireDate)
			if err != nil {
				return flashAndRedirect(c, sessions, "danger", msgInvalidInput)
			}
			item.ExpireDate = &d
		} else {
			item.ExpireDate = nil
		}

		if err := updateInventoryItem(ctx, db, item); err != nil {
			logger.Error().Err(err).Int("item_id", id).Msg("update inventory item failed")
			return c.String(http.StatusInternalServerError, "サーバーエラーが発生しました")
		}
		return flashAndRedirect(c, sessions, "success", msgUpdated)
	}
}

// @Summary     在庫削除
// @Description ログイン中ユーザーの在庫アイテムを削除する。存在しない ID は何もしない
// @Tags        inventory
// @Param       id path int true "アイテム ID"
// @Success     302 "在庫一覧へリダイレクト"
// @Failure     400 {string} string "検証エラー"
// @Failure     500 {string} string "サーバーエラー"
// @Router      /inventory/delete/{id} [get]
func DeleteInventoryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.String(http.StatusBadRequest, "IDが正しくありません")
		}
		if err := deleteInventoryItem(c.Request().Context(), db, id, userID); err != nil {
			logger.Error().Err(err).Int("item_id", id).Msg("delete inventory item failed")
			return c.String(http.StatusInternalServerError, "サーバーエラーが発生しました")
		}
		return c.Redirect(http.StatusFound, "/inventory")
	}
}
