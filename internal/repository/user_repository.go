package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// 認証・プロフィール（/auth）
type AuthRepository interface {
	Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error)
	Logout(ctx context.Context) error
	Refresh(ctx context.Context, refreshToken string) (model.AuthResponse, error)
	Profile(ctx context.Context) (model.User, error)
	UpdateProfile(ctx context.Context, u model.User) (model.User, error)
	ChangePassword(ctx context.Context, current string, next string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token string, newPassword string) error
	VerifyEmail(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, email string) error
}
