package model

// APIの共通レスポンス {data, success, message?}
type Envelope[T any] struct {
	Data    T      `json:"data"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ページング付きレスポンス {data: T[], pagination}
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}
