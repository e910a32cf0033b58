package web

import (
	"net/http"
	"strings"
	"time"

	"deeplx-relay/domain"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// BearerAuth 校验调用方的 Bearer Key。未配置 Key 时全部放行;
// 配置后缺失或不完全相等都在上游调用发生前拒绝。
func BearerAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, bearerPrefix) || auth[len(bearerPrefix):] != apiKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": domain.ErrUnauthorized.Error(),
			})
			return
		}
		c.Next()
	}
}

// CORS 与网页端一致:任意来源、任意方法、带凭证,预检缓存一小时
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	})
}
