package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/internal/domain/model"
	logx "storefront/pkg/logger"
)

const defaultTimeout = 10 * time.Second

type Options struct {
	BaseURL string
	Timeout time.Duration
	Tokens  TokenSource
	// 401を受けたときに呼ばれる。nil なら何もしない。
	OnUnauthorized func(ctx context.Context)
	// 共有したい場合だけ指定。nil なら Timeout で作る。
	HTTPClient *http.Client
}

// Client はREST APIへの薄いラッパー。リトライもキャッシュもしない。
type Client struct {
	httpClient     *http.Client
	baseURL        string
	tokens         TokenSource
	onUnauthorized func(ctx context.Context)
}

func NewClient(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, errors.New("base URL is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{
		httpClient:     hc,
		baseURL:        base,
		tokens:         opts.Tokens,
		onUnauthorized: opts.OnUnauthorized,
	}, nil
}

// エラー応答の本文（{message} か {error}）
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in any, out any) error {
	var bodyReader io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			logx.Warn().Err(err).Msg("failed to read auth token")
		} else if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logx.Error().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return &APIError{Kind: KindTransport, Message: "network error: unable to reach server", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Kind: KindTransport, Status: resp.StatusCode, Message: "failed to read response", Err: err}
	}

	if resp.StatusCode >= 400 {
		return c.handleErrorResponse(ctx, method, path, resp.StatusCode, respBody)
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &APIError{Kind: KindDecode, Status: resp.StatusCode, Message: "invalid response from server", Err: err}
	}
	return nil
}

func (c *Client) handleErrorResponse(ctx context.Context, method, path string, status int, body []byte) error {
	var eb errorBody
	_ = json.Unmarshal(body, &eb)
	msg := eb.Message
	if msg == "" {
		msg = eb.Error
	}
	apiErr := newStatusError(status, msg)

	switch apiErr.Kind {
	case KindUnauthorized:
		if c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
	case KindForbidden:
		logx.Warn().Str("method", method).Str("path", path).Msg("access forbidden")
	case KindServer:
		logx.Error().Int("status", status).Str("method", method).Str("path", path).
			Bytes("body", body).Msg("server error")
	}
	return apiErr
}

// data部分だけ返す
func call[T any](ctx context.Context, c *Client, method, path string, query url.Values, in any) (T, error) {
	var env model.Envelope[T]
	if err := c.do(ctx, method, path, query, in, &env); err != nil {
		var zero T
		return zero, err
	}
	return env.Data, nil
}

func callPage[T any](ctx context.Context, c *Client, path string, query url.Values) (model.Page[T], error) {
	var page model.Page[T]
	if err := c.do(ctx, http.MethodGet, path, query, nil, &page); err != nil {
		return model.Page[T]{}, err
	}
	if page.Data == nil {
		page.Data = []T{}
	}
	return page, nil
}

func seg(id string) string {
	return url.PathEscape(id)
}
