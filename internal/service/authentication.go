// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"

	"futari-board/internal/model"
)

// AuthenticateUser はユーザーの bcrypt ハッシュと平文パスワードを照合する。
// 平文のまま保存・比較する旧実装は踏襲しない。
func AuthenticateUser(ctx context.Context, user model.User, password string) error {
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return errors.New("invalid password")
	}
	return nil
}
