package pkg

import (
	"context"
	"net/http"
	"time"

	"github.com/imroc/req/v3"
)

const (
	probeURL     = "https://www.deepl.com/"
	probeTimeout = 15 * time.Second
)

// CheckEgress 检查客户端(连同它绑定的代理)能否访问 DeepL 前端。
// 池内客户端超时很长,这里单独给探测一个短超时。
func CheckEgress(client *req.Client) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	resp, err := client.R().SetContext(ctx).Get(probeURL)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	return resp.StatusCode < http.StatusInternalServerError, nil
}
