package service

import (
	"fmt"
	"net"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/imroc/req/v3"
	lop "github.com/samber/lo/parallel"
)

const (
	requestTimeout = 360 * time.Second
	connectTimeout = 10 * time.Second
	keepAlive      = 75 * time.Second
)

// 伪装成 DeepL 网页端的固定请求头
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
	"Accept":          "*/*",
	"Accept-Language": "en-US,en;q=0.9",
	"Accept-Encoding": "gzip, deflate, br",
	"Origin":          "https://www.deepl.com",
	"Referer":         "https://www.deepl.com/",
}

// ClientPool 出站客户端池,每个代理地址一个客户端,游标轮询
type ClientPool struct {
	cursor  uint32
	clients []*req.Client
}

// NewClientPool 按代理地址建池;未提供代理时只建一个直连客户端
func NewClientPool(proxies []string) (*ClientPool, error) {
	if len(proxies) == 0 {
		return &ClientPool{clients: []*req.Client{buildClient("")}}, nil
	}
	for _, proxy := range proxies {
		u, err := url.Parse(proxy)
		if err != nil || u.Scheme == "" {
			return nil, fmt.Errorf("invalid proxy url: %q", proxy)
		}
	}
	clients := lop.Map(proxies, func(proxy string, _ int) *req.Client {
		return buildClient(proxy)
	})
	return &ClientPool{clients: clients}, nil
}

func buildClient(proxy string) *req.Client {
	dialer := &net.Dialer{
		Timeout:   connectTimeout,
		KeepAlive: keepAlive,
	}
	client := req.NewClient().
		SetCommonHeaders(browserHeaders).
		SetTimeout(requestTimeout).
		SetDial(dialer.DialContext).
		SetRedirectPolicy(req.NoRedirectPolicy())
	if proxy != "" {
		client.SetProxyURL(proxy)
	}
	return client
}

// next 轮询返回下一个客户端;池长为 1 时不碰游标。
// 游标用 CAS 重试推进,并发下绝不互相阻塞,偶尔的顺序偏移可以接受。
func (p *ClientPool) next() *req.Client {
	if len(p.clients) == 1 {
		return p.clients[0]
	}
	size := uint32(len(p.clients))
	for {
		old := atomic.LoadUint32(&p.cursor)
		idx := (old + 1) % size
		if atomic.CompareAndSwapUint32(&p.cursor, old, idx) {
			return p.clients[idx]
		}
	}
}

// Clients 返回池内全部客户端,供启动时的出口探测遍历
func (p *ClientPool) Clients() []*req.Client {
	return p.clients
}

// Size 池内客户端数量
func (p *ClientPool) Size() int {
	return len(p.clients)
}
