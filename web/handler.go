package web

import (
	"errors"
	"net/http"

	"deeplx-relay/domain"
	"deeplx-relay/service"

	"github.com/gin-gonic/gin"
)

type TranslateHandler struct {
	service service.TranslateService
	apiKey  string
}

func NewTranslateHandler(service service.TranslateService, apiKey string) *TranslateHandler {
	return &TranslateHandler{service: service, apiKey: apiKey}
}

func (h *TranslateHandler) Index(c *gin.Context) {
	c.String(http.StatusOK, "DeepL Free API. Go to /translate with POST.")
}

func (h *TranslateHandler) Translate(c *gin.Context) {
	var request domain.TranslateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": err.Error()})
		return
	}
	request.ApplyDefaults()

	result, err := h.service.Translate(c.Request.Context(), request)
	if err != nil {
		status := classifyStatus(err)
		c.JSON(status, gin.H{"code": status, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// classifyStatus 错误分类到对外状态码:
// 429 限流、502 网关/网络、500 上游状态异常及其余本地错误
func classifyStatus(err error) int {
	var gatewayErr *domain.GatewayError
	var statusErr *domain.UpstreamStatusError
	switch {
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.As(err, &gatewayErr):
		return http.StatusBadGateway
	case errors.As(err, &statusErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func (h *TranslateHandler) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/", h.Index)
	engine.POST("/translate", BearerAuth(h.apiKey), h.Translate)
}
