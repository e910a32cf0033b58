package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"deeplx-relay/channel"
	"deeplx-relay/cron"
	"deeplx-relay/pkg"
	"deeplx-relay/service"
	"deeplx-relay/web"

	"github.com/gin-gonic/gin"
	"github.com/sourcegraph/conc/pool"
	"github.com/ycvk/endless"
)

func runServe(cfg *Config) error {
	clientPool, err := service.NewClientPool(cfg.Proxies)
	if err != nil {
		return err
	}
	if cfg.APIKey != "" {
		log.Println("API key is required")
	}

	// 注册服务
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	r.Use(web.CORS())
	translateService := service.NewDeepLXService(clientPool, cfg.DLSession)
	handler := web.NewTranslateHandler(translateService, cfg.APIKey)
	handler.RegisterRoutes(r)

	go func() {
		log.Println("starting server at", cfg.Bind)
		var err error
		if cfg.TLSCert != "" && cfg.TLSKey != "" {
			err = endless.ListenAndServeTLS(cfg.Bind, cfg.TLSCert, cfg.TLSKey, r)
		} else {
			err = endless.ListenAndServe(cfg.Bind, r)
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("web服务启动失败: ", err)
		}
	}()

	if cfg.Probe {
		probeEgress(clientPool)
		cron.StartTimer(24*time.Hour, func() {
			probeEgress(clientPool)
		})
	}

	waitForExit()
	return nil
}

// probeEgress 并发检查池内每个客户端的出口连通性,只记日志不摘除
func probeEgress(clientPool *service.ClientPool) {
	clients := clientPool.Clients()
	var reachable atomic.Int32

	p := pool.New().WithMaxGoroutines(10)
	for i, client := range clients {
		p.Go(func() {
			ok, err := pkg.CheckEgress(client)
			if err != nil || !ok {
				log.Printf("egress client #%d cannot reach deepl.com: %v", i, err)
				return
			}
			reachable.Add(1)
		})
	}
	p.Wait()

	log.Printf("egress probe: %d/%d clients reachable", reachable.Load(), len(clients))
}

// waitForExit 监听退出信号
func waitForExit() {
	osSig := make(chan os.Signal, 1)
	signal.Notify(osSig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	sig := <-osSig
	log.Println("收到退出信号: ", sig)
	channel.Quit <- sig
}
