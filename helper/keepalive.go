package helper

import (
	"net/http"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

var keepAliveCron *cron.Cron

// StartKeepAlive tự ping /health để host free-tier (Render) không đưa
// bot vào trạng thái ngủ. Không có APP_URL (chạy local) thì bỏ qua.
func StartKeepAlive(appURL string) {
	if appURL == "" {
		return
	}

	keepAliveCron = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := keepAliveCron.AddFunc("*/14 * * * *", func() { pingSelf(appURL) })
	if err != nil {
		log.Error("Lỗi khởi tạo keep-alive cron: ", err)
		return
	}

	keepAliveCron.Start()
	log.Info("✅ Keep-alive cron started (mỗi 14 phút)")
}

func pingSelf(appURL string) {
	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Get(appURL + "/health")
	if err != nil {
		log.Warn("Keep-alive ping lỗi: ", err)
		return
	}
	resp.Body.Close()
}

func StopKeepAlive() {
	if keepAliveCron != nil {
		keepAliveCron.Stop()
	}
}
