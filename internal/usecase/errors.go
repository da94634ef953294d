package usecase

import (
	"errors"
	"fmt"
	"net/http"

	"storefront/internal/infra/gateway"
	repo "storefront/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// fromRemote はゲートウェイのエラーをページ層向けのステータスに寄せる
func fromRemote(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	ae, ok := gateway.AsAPIError(err)
	if !ok {
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	switch ae.Kind {
	case gateway.KindUnauthorized:
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	case gateway.KindForbidden:
		return NewHTTPError(http.StatusForbidden, "forbidden")
	case gateway.KindClient:
		//バックエンドの文言をそのまま返す（400/409/422など）
		return NewHTTPError(ae.Status, ae.Message)
	default:
		//5xx・通信失敗・デコード失敗
		return NewHTTPError(http.StatusBadGateway, "upstream error")
	}
}
