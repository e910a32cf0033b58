package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized 调用方 Key 校验失败
	ErrUnauthorized = errors.New("You are not authorized")

	// ErrRateLimited 上游返回 429,IP 被临时封禁,不做任何自动重试
	ErrRateLimited = errors.New("Too many requests, your IP has been blocked by DeepL temporarily, please don't request it frequently in a short time.")
)

// UpstreamStatusError 上游返回了非 2xx、非 429 的状态码
type UpstreamStatusError struct {
	Status int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("upstream responded with status %d", e.Status)
}

// GatewayError 网络传输失败,或上游 2xx 响应体不是合法 JSON
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string {
	return "bad gateway: " + e.Err.Error()
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
