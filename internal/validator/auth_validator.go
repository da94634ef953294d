package validator

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"
)

var (
	// 入力が不正
	ErrInvalidInput = errors.New("invalid input")

	// パスワードが短い
	ErrWeakPassword = errors.New("password too short")

	// トークンが空
	ErrInvalidToken = errors.New("invalid token")
)

// パスワード最低文字数
const minPasswordLen = 8

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type authValidator struct{}

// Usecaseは interface を依存注入
func NewAuthValidator() usecase.AuthValidator {
	return &authValidator{}
}

// 会員登録の入力を検証（email重複はAPI側で判定）
func (v *authValidator) ValidateRegister(ctx context.Context, req model.RegisterRequest) error {
	if err := v.ValidateLogin(ctx, req.Email, req.Password); err != nil {
		return err
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return ErrInvalidInput
	}
	return v.ValidatePassword(ctx, req.Password)
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(ctx context.Context, email string, password string) error {
	email = strings.TrimSpace(email)

	// 必須チェック
	if email == "" || password == "" {
		return ErrInvalidInput
	}

	// email形式
	if !isEmailLike(email) {
		return ErrInvalidInput
	}

	return nil
}

func (v *authValidator) ValidateEmail(ctx context.Context, email string) error {
	if !isEmailLike(strings.TrimSpace(email)) {
		return ErrInvalidInput
	}
	return nil
}

func (v *authValidator) ValidatePassword(ctx context.Context, password string) error {
	if len(password) < minPasswordLen {
		return ErrWeakPassword
	}
	return nil
}

// メールのリンクなどで受け取ったトークン
func (v *authValidator) ValidateToken(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrInvalidToken
	}
	return nil
}

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	return emailRe.MatchString(s)
}
