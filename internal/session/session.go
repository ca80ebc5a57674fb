// File: internal/session/session.go
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"futari-board/internal/cache"
)

const (
	// CookieName はセッション ID を載せる Cookie 名。
	CookieName = "session_id"

	// TTL はセッションと未読フラッシュの保持期間。
	TTL = 24 * time.Hour

	sessionPrefix = "session:"
	flashPrefix   = "flash:"
)

var randRead = rand.Read

// Flash は次のレンダリングで一度だけ表示するメッセージ。
// Level は "success" か "danger"。
type Flash struct {
	Level   string
	Message string
}

func newID() (string, error) {
	b := make([]byte, 16)
	if _, err := randRead(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Create はユーザー ID に紐づく不透明なセッション ID を発行して保存する。
func Create(ctx context.Context, store cache.Cache, userID int) (string, error) {
	sid, err := newID()
	if err != nil {
		return "", fmt.Errorf("Create: %w", err)
	}
	if err := store.Set(ctx, sessionPrefix+sid, strconv.Itoa(userID), TTL).Err(); err != nil {
		return "", fmt.Errorf("Create: %w", err)
	}
	return sid, nil
}

// Lookup はセッション ID からユーザー ID を引く。未登録なら error。
func Lookup(ctx context.Context, store cache.Cache, sid string) (int, error) {
	val, err := store.Get(ctx, sessionPrefix+sid).Result()
	if err != nil {
		return 0, fmt.Errorf("Lookup: %w", err)
	}
	userID, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("Lookup: %w", err)
	}
	return userID, nil
}

// Destroy はセッションと残っているフラッシュを破棄する。
func Destroy(ctx context.Context, store cache.Cache, sid string) error {
	if err := store.Del(ctx, sessionPrefix+sid, flashPrefix+sid).Err(); err != nil {
		return fmt.Errorf("Destroy: %w", err)
	}
	return nil
}

// SetFlash はセッションに対するフラッシュメッセージを登録する。
func SetFlash(ctx context.Context, store cache.Cache, sid string, f Flash) error {
	if err := store.Set(ctx, flashPrefix+sid, f.Level+"|"+f.Message, TTL).Err(); err != nil {
		return fmt.Errorf("SetFlash: %w", err)
	}
	return nil
}

// PopFlash はフラッシュを取り出して消す。なければ ok=false。
func PopFlash(ctx context.Context, store cache.Cache, sid string) (Flash, bool) {
	val, err := store.Get(ctx, flashPrefix+sid).Result()
	if err != nil {
		return Flash{}, false
	}
	_ = store.Del(ctx, flashPrefix+sid).Err()
	level, msg, _ := strings.Cut(val, "|")
	return Flash{Level: level, Message: msg}, true
}
