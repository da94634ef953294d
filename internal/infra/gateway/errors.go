package gateway

import (
	"errors"
	"fmt"
	"net/http"

	repo "storefront/internal/repository"
)

// ErrorKind はAPI呼び出し失敗の分類。
type ErrorKind string

const (
	KindTransport    ErrorKind = "transport"
	KindClient       ErrorKind = "client"
	KindUnauthorized ErrorKind = "unauthorized"
	KindForbidden    ErrorKind = "forbidden"
	KindServer       ErrorKind = "server"
	KindDecode       ErrorKind = "decode"
)

// APIError はゲートウェイが返すエラー。Status は応答が無い場合 0。
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// 404 は repository.ErrNotFound として扱える
func (e *APIError) Is(target error) bool {
	return target == repo.ErrNotFound && e.Status == http.StatusNotFound
}

func kindForStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusForbidden:
		return KindForbidden
	case status >= 500:
		return KindServer
	default:
		return KindClient
	}
}

func newStatusError(status int, message string) *APIError {
	if message == "" {
		message = http.StatusText(status)
	}
	if message == "" {
		message = "request failed"
	}
	return &APIError{Kind: kindForStatus(status), Status: status, Message: message}
}

// AsAPIError は errors.As のラッパー
func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsUnauthorized は401由来かどうか
func IsUnauthorized(err error) bool {
	ae, ok := AsAPIError(err)
	return ok && ae.Kind == KindUnauthorized
}
