package helper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lunchbot/constants"
	"lunchbot/menu"
	"lunchbot/telegram"
	"lunchbot/utils"

	"github.com/go-co-op/gocron/v2"
	log "github.com/sirupsen/logrus"
)

var menuScheduler gocron.Scheduler

// StartMenuReminder tự động đăng menu vào group lúc 10:00 sáng mỗi ngày
// có menu, để mọi người nhớ đặt trước giờ cơm
func StartMenuReminder(bot *telegram.Client, chatID string) {
	if chatID == "" {
		return
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(utils.Location()),
	)
	if err != nil {
		log.Error("Lỗi khởi tạo scheduler nhắc menu: ", err)
		return
	}

	menuScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(10, 0, 0),
			),
		),
		gocron.NewTask(func() { AnnounceMenu(bot, chatID) }),
	)
	if err != nil {
		log.Error("Lỗi đăng ký job nhắc menu: ", err)
		return
	}

	s.Start()
	log.Info("✅ Menu reminder scheduler started (10:00 ICT)")
}

// AnnounceMenu gửi menu hôm nay vào group, Chủ nhật thì im lặng
func AnnounceMenu(bot *telegram.Client, chatID string) {
	today := utils.Today()
	m, err := menu.ForDate(today)
	if err != nil || m == nil {
		return
	}

	lines := make([]string, 0, len(m))
	for i, dish := range m {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, utils.EscapeMarkdown(dish)))
	}
	text := fmt.Sprintf(constants.MSG_MENU_HEADER, strings.Join(lines, "\n"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := bot.SendMessage(ctx, chatID, text); err != nil {
		log.Error("Lỗi gửi menu tự động: ", err)
	}
}

func StopMenuReminder() {
	if menuScheduler != nil {
		if err := menuScheduler.Shutdown(); err != nil {
			log.Error("Lỗi dừng scheduler nhắc menu: ", err)
		}
	}
}
