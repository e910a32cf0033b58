package channel

import "os"

// Quit 进程退出广播,定时任务监听它停表
var Quit = make(chan os.Signal, 1)
