package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"deeplx-relay/domain"
)

func newTestService(t *testing.T, endpoint string) *DeepLXService {
	t.Helper()
	clientPool, err := NewClientPool(nil)
	if err != nil {
		t.Fatalf("NewClientPool failed: %v", err)
	}
	svc := NewDeepLXService(clientPool, "test-session")
	svc.endpoint = endpoint
	return svc
}

func TestTranslate_Success(t *testing.T) {
	var gotBody string
	var gotCookie, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		gotCookie = r.Header.Get("Cookie")
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":{"texts":[{"text":"Hallo","alternatives":[{"text":"Hi"},{"text":"Hey"}]}]}}`))
	}))
	defer server.Close()

	svc := newTestService(t, server.URL)
	resp, err := svc.Translate(context.Background(), domain.TranslateRequest{
		Text: "hello", SourceLang: "EN", TargetLang: "DE",
	})
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	if resp.Code != http.StatusOK || resp.Method != "Free" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
	if resp.Data != "Hallo" {
		t.Errorf("data = %q, want Hallo", resp.Data)
	}
	if !reflect.DeepEqual(resp.Alternatives, []string{"Hi", "Hey"}) {
		t.Errorf("alternatives = %v", resp.Alternatives)
	}
	if resp.SourceLang != "EN" || resp.TargetLang != "DE" {
		t.Errorf("langs echoed wrong: %+v", resp)
	}
	if resp.ID%1000 != 1 {
		t.Errorf("id %d does not end in 001", resp.ID)
	}

	if gotContentType != "application/json" {
		t.Errorf("content type = %q", gotContentType)
	}
	if gotCookie != "dl_session=test-session;" {
		t.Errorf("cookie = %q", gotCookie)
	}
	// 发出的请求体必须保留序列化后的空格改写
	if !strings.Contains(gotBody, `"method": "`) && !strings.Contains(gotBody, `"method" : "`) {
		t.Errorf("body lost the formatting variance: %s", gotBody)
	}
	if !strings.Contains(gotBody, `"hello"`) {
		t.Errorf("body does not carry the text: %s", gotBody)
	}
}

func TestTranslate_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		// 故意返回非 JSON,429 分支解析它就会失败
		w.Write([]byte("slow down"))
	}))
	defer server.Close()

	svc := newTestService(t, server.URL)
	_, err := svc.Translate(context.Background(), domain.TranslateRequest{Text: "hello", SourceLang: "EN", TargetLang: "ZH"})
	if !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestTranslate_UpstreamStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	svc := newTestService(t, server.URL)
	_, err := svc.Translate(context.Background(), domain.TranslateRequest{Text: "hello", SourceLang: "EN", TargetLang: "ZH"})

	var statusErr *domain.UpstreamStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected UpstreamStatusError, got %v", err)
	}
	if statusErr.Status != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", statusErr.Status)
	}
}

func TestTranslate_NonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	svc := newTestService(t, server.URL)
	_, err := svc.Translate(context.Background(), domain.TranslateRequest{Text: "hello", SourceLang: "EN", TargetLang: "ZH"})

	var gatewayErr *domain.GatewayError
	if !errors.As(err, &gatewayErr) {
		t.Fatalf("expected GatewayError, got %v", err)
	}
}

func TestTranslate_NetworkFailure(t *testing.T) {
	// 不可达端口
	svc := newTestService(t, "http://127.0.0.1:1")
	_, err := svc.Translate(context.Background(), domain.TranslateRequest{Text: "hello", SourceLang: "EN", TargetLang: "ZH"})

	var gatewayErr *domain.GatewayError
	if !errors.As(err, &gatewayErr) {
		t.Fatalf("expected GatewayError, got %v", err)
	}
}
