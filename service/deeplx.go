package service

import (
	"context"
	"encoding/json"
	"net/http"

	"deeplx-relay/domain"
)

const upstreamEndpoint = "https://api.deepl.com/jsonrpc"

type TranslateService interface {
	Translate(ctx context.Context, trReq domain.TranslateRequest) (domain.TranslateResponse, error)
}

// DeepLXService 把入站请求伪装成 DeepL 网页端调用后转发
type DeepLXService struct {
	pool      *ClientPool
	dlSession string
	endpoint  string
}

func NewDeepLXService(pool *ClientPool, dlSession string) *DeepLXService {
	return &DeepLXService{
		pool:      pool,
		dlSession: dlSession,
		endpoint:  upstreamEndpoint,
	}
}

func (d *DeepLXService) Translate(ctx context.Context, trReq domain.TranslateRequest) (domain.TranslateResponse, error) {
	body, id, err := buildUpstreamBody(trReq)
	if err != nil {
		return domain.TranslateResponse{}, err
	}

	// 请求体已按 id 做过空格改写,必须用字符串原样发出
	resp, err := d.pool.next().R().
		SetContext(ctx).
		SetContentType("application/json").
		SetHeader("Cookie", "dl_session="+d.dlSession+";").
		SetBodyString(body).
		Post(d.endpoint)
	if err != nil {
		return domain.TranslateResponse{}, &domain.GatewayError{Err: err}
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return domain.TranslateResponse{}, domain.ErrRateLimited
	}
	if !resp.IsSuccessState() {
		return domain.TranslateResponse{}, &domain.UpstreamStatusError{Status: resp.StatusCode}
	}

	raw, err := resp.ToBytes()
	if err != nil {
		return domain.TranslateResponse{}, &domain.GatewayError{Err: err}
	}
	var upstream map[string]any
	if err := json.Unmarshal(raw, &upstream); err != nil {
		return domain.TranslateResponse{}, &domain.GatewayError{Err: err}
	}

	data, alternatives := extractTranslation(upstream)
	return domain.TranslateResponse{
		Code:         http.StatusOK,
		ID:           id,
		Data:         data,
		Alternatives: alternatives,
		SourceLang:   trReq.SourceLang,
		TargetLang:   trReq.TargetLang,
		Method:       "Free",
	}, nil
}
