package cron

import (
	"log"
	"time"

	"deeplx-relay/channel"
)

// StartTimer 周期执行 f,触发点对齐到自然日零点,收到退出信号后停止
func StartTimer(t time.Duration, f func()) {
	go func() {
		for {
			now := time.Now()
			next := now.Add(t)
			next = time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, next.Location())
			timer := time.NewTimer(next.Sub(now))
			select {
			case <-channel.Quit:
				timer.Stop()
				log.Println("定时任务已退出")
				return
			case <-timer.C:
				f()
			}
		}
	}()
}
