package usecase

import (
	"context"
	"net/http"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	logx "storefront/pkg/logger"

	"github.com/shopspring/decimal"
)

// 受け付ける支払い方法
const (
	PaymentCreditCard   = "credit_card"
	PaymentPayPal       = "paypal"
	PaymentBankTransfer = "bank_transfer"
)

var paymentMethods = map[string]struct{}{
	PaymentCreditCard:   {},
	PaymentPayPal:       {},
	PaymentBankTransfer: {},
}

// PaymentMethods は選べる支払い方法（表示順）
func PaymentMethods() []string {
	return []string{PaymentCreditCard, PaymentPayPal, PaymentBankTransfer}
}

// 注文一覧の上限
const maxOrderLimit = 50

// チェックアウトが触るカートの操作（store.Cart が満たす）
type CartSource interface {
	State() model.CartSnapshot
	ClearCart(ctx context.Context) model.CartSnapshot
}

// 送料・税の設定。FreeShippingOver が0なら送料無料にはならない。
type Pricing struct {
	TaxRate          decimal.Decimal
	ShippingFee      decimal.Decimal
	FreeShippingOver decimal.Decimal
}

type CheckoutUsecase struct {
	cart    CartSource
	orders  repo.OrderRepository
	pricing Pricing
}

// DI
func NewCheckoutUsecase(cart CartSource, orders repo.OrderRepository, pricing Pricing) *CheckoutUsecase {
	return &CheckoutUsecase{cart: cart, orders: orders, pricing: pricing}
}

type OrderSummary struct {
	Items        []model.CartItem `json:"items"`
	TotalItems   int              `json:"totalItems"`
	Subtotal     decimal.Decimal  `json:"subtotal"`
	Shipping     decimal.Decimal  `json:"shipping"`
	FreeShipping bool             `json:"freeShipping"`
	Tax          decimal.Decimal  `json:"tax"`
	Total        decimal.Decimal  `json:"total"`
}

// 金額計算。税は小数2桁に丸める。
func (p Pricing) Summarize(cart model.CartSnapshot) OrderSummary {
	out := OrderSummary{
		Items:      cart.Items,
		TotalItems: cart.TotalItems,
		Subtotal:   cart.TotalPrice,
		Shipping:   decimal.Zero,
		Tax:        decimal.Zero,
	}
	if len(cart.Items) == 0 {
		out.Total = decimal.Zero
		return out
	}

	if p.FreeShippingOver.IsPositive() && out.Subtotal.GreaterThanOrEqual(p.FreeShippingOver) {
		out.FreeShipping = true
	} else {
		out.Shipping = p.ShippingFee
	}
	out.Tax = out.Subtotal.Mul(p.TaxRate).Round(2)
	out.Total = out.Subtotal.Add(out.Shipping).Add(out.Tax)
	return out
}

// GET /checkout
func (u *CheckoutUsecase) Summary() OrderSummary {
	return u.pricing.Summarize(u.cart.State())
}

type PlaceOrderInput struct {
	ShippingAddress model.Address
	// nil なら配送先と同じ
	BillingAddress *model.Address
	PaymentMethod  string
}

type PlaceOrderOutput struct {
	Order   model.Order  `json:"order"`
	Summary OrderSummary `json:"summary"`
}

// POST /checkout
func (u *CheckoutUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (PlaceOrderOutput, error) {
	cart := u.cart.State()
	if len(cart.Items) == 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}
	for _, it := range cart.Items {
		if !it.InStock {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "out of stock: "+it.Name)
		}
	}

	shipping := in.ShippingAddress
	shipping.Type = model.AddressShipping
	if missing := shipping.MissingFields(); len(missing) > 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid shipping address: "+strings.Join(missing, ", "))
	}

	billing := shipping
	if in.BillingAddress != nil {
		billing = *in.BillingAddress
		if missing := billing.MissingFields(); len(missing) > 0 {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid billing address: "+strings.Join(missing, ", "))
		}
	}
	billing.Type = model.AddressBilling

	method := strings.TrimSpace(in.PaymentMethod)
	if _, ok := paymentMethods[method]; !ok {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid payment method")
	}

	summary := u.pricing.Summarize(cart)
	lines := make([]model.OrderLine, 0, len(cart.Items))
	for _, it := range cart.Items {
		lines = append(lines, model.OrderLine{ProductID: it.ID, Quantity: it.Quantity})
	}

	order, err := u.orders.Create(ctx, model.CreateOrderRequest{
		Items:           lines,
		ShippingAddress: shipping,
		BillingAddress:  billing,
		PaymentMethod:   method,
	})
	if err != nil {
		logx.Warn().Err(err).Int("lines", len(lines)).Msg("checkout: create order failed")
		return PlaceOrderOutput{}, fromRemote(err)
	}

	//注文が通った後だけカートを空にする
	u.cart.ClearCart(ctx)
	logx.Info().Str("order_id", order.ID).Str("total", summary.Total.StringFixed(2)).Msg("checkout: order placed")

	return PlaceOrderOutput{Order: order, Summary: summary}, nil
}

// GET /orders
func (u *CheckoutUsecase) ListOrders(ctx context.Context, page int, limit int) (model.Page[model.Order], error) {
	if page < 0 || limit < 0 {
		return model.Page[model.Order]{}, NewHTTPError(http.StatusBadRequest, "invalid paging")
	}
	if limit > maxOrderLimit {
		limit = maxOrderLimit
	}
	out, err := u.orders.List(ctx, page, limit)
	if err != nil {
		return model.Page[model.Order]{}, fromRemote(err)
	}
	return out, nil
}

// GET /orders/:id
func (u *CheckoutUsecase) GetOrder(ctx context.Context, orderID string) (model.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	o, err := u.orders.FindByID(ctx, orderID)
	if err != nil {
		return model.Order{}, fromRemote(err)
	}
	return o, nil
}

// POST /orders/:id/cancel
// 発送済み以降は送る前に弾く
func (u *CheckoutUsecase) CancelOrder(ctx context.Context, orderID string, reason string) (model.Order, error) {
	current, err := u.GetOrder(ctx, orderID)
	if err != nil {
		return model.Order{}, err
	}
	if !current.Status.Cancellable() {
		return model.Order{}, NewHTTPError(http.StatusConflict, "order cannot be cancelled")
	}
	o, err := u.orders.Cancel(ctx, current.ID, strings.TrimSpace(reason))
	if err != nil {
		return model.Order{}, fromRemote(err)
	}
	return o, nil
}

// GET /orders/:id/tracking
func (u *CheckoutUsecase) TrackOrder(ctx context.Context, orderID string) (model.OrderTracking, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return model.OrderTracking{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	t, err := u.orders.Track(ctx, orderID)
	if err != nil {
		return model.OrderTracking{}, fromRemote(err)
	}
	return t, nil
}

// POST /orders/:id/return
func (u *CheckoutUsecase) RequestReturn(ctx context.Context, orderID string, lines []model.ReturnLine) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if len(lines) == 0 {
		return NewHTTPError(http.StatusBadRequest, "no items")
	}
	for _, l := range lines {
		if strings.TrimSpace(l.ItemID) == "" || l.Quantity <= 0 {
			return NewHTTPError(http.StatusBadRequest, "invalid return item")
		}
	}
	if err := u.orders.RequestReturn(ctx, orderID, lines); err != nil {
		return fromRemote(err)
	}
	return nil
}
