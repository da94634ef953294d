package store_test

import (
	"context"
	"time"

	"storefront/internal/domain/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, params *model.SearchParams) (model.Page[model.Product], error) {
	args := m.Called(ctx, params)
	page, _ := args.Get(0).(model.Page[model.Product])
	return page, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Search(ctx context.Context, query string, params *model.SearchParams) (model.Page[model.Product], error) {
	args := m.Called(ctx, query, params)
	page, _ := args.Get(0).(model.Page[model.Product])
	return page, args.Error(1)
}

func (m *ProductRepoMock) Featured(ctx context.Context, limit int) ([]model.Product, error) {
	args := m.Called(ctx, limit)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) ListByCategory(ctx context.Context, categoryID string, params *model.SearchParams) (model.Page[model.Product], error) {
	args := m.Called(ctx, categoryID, params)
	page, _ := args.Get(0).(model.Page[model.Product])
	return page, args.Error(1)
}

func (m *ProductRepoMock) Recommendations(ctx context.Context, productID string, limit int) ([]model.Product, error) {
	panic("not used in store tests")
}

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Category)
	return items, args.Error(1)
}

func (m *CategoryRepoMock) FindByID(ctx context.Context, id string) (model.Category, error) {
	panic("not used in store tests")
}

func (m *CategoryRepoMock) Featured(ctx context.Context, limit int) ([]model.Category, error) {
	panic("not used in store tests")
}

type AuthRepoMock struct{ mock.Mock }

func (m *AuthRepoMock) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(model.AuthResponse)
	return res, args.Error(1)
}

func (m *AuthRepoMock) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(model.AuthResponse)
	return res, args.Error(1)
}

func (m *AuthRepoMock) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *AuthRepoMock) Refresh(ctx context.Context, refreshToken string) (model.AuthResponse, error) {
	args := m.Called(ctx, refreshToken)
	res, _ := args.Get(0).(model.AuthResponse)
	return res, args.Error(1)
}

func (m *AuthRepoMock) Profile(ctx context.Context) (model.User, error) {
	args := m.Called(ctx)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *AuthRepoMock) UpdateProfile(ctx context.Context, u model.User) (model.User, error) {
	panic("not used in store tests")
}

func (m *AuthRepoMock) ChangePassword(ctx context.Context, current string, next string) error {
	panic("not used in store tests")
}

func (m *AuthRepoMock) ForgotPassword(ctx context.Context, email string) error {
	panic("not used in store tests")
}

func (m *AuthRepoMock) ResetPassword(ctx context.Context, token string, newPassword string) error {
	panic("not used in store tests")
}

func (m *AuthRepoMock) VerifyEmail(ctx context.Context, token string) error {
	panic("not used in store tests")
}

func (m *AuthRepoMock) ResendVerification(ctx context.Context, email string) error {
	panic("not used in store tests")
}

// =====================
// Fixtures
// =====================

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func product(id string, price string) model.Product {
	return model.Product{ID: id, Name: "Product " + id, Price: dec(price), InStock: true}
}

func ids(items []model.Product) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
