package main

import (
	"context"
	"time"

	"lunchbot/cache"
	"lunchbot/command"
	"lunchbot/config"
	"lunchbot/database"
	"lunchbot/handler"
	"lunchbot/helper"
	"lunchbot/logger"
	"lunchbot/router"
	"lunchbot/store"
	"lunchbot/telegram"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

func main() {
	logger.Setup()

	app := fiber.New()

	var orderStore store.OrderStore
	switch config.ConfigOr("STORAGE_DRIVER", "postgres") {
	case "file":
		fs, err := store.NewFileStore(config.ConfigOr("ORDERS_FILE", "orders.json"))
		if err != nil {
			log.Fatal("Lỗi mở file orders: ", err)
		}
		orderStore = fs
	default:
		database.ConnectDB()
		orderStore = store.NewGormStore(database.DB)
	}

	bot := telegram.NewClient(config.Config("BOT_TOKEN"))
	dedup := cache.NewDeduper(config.Config("REDIS_ADDR"))

	allowedGroup := config.Config("ALLOWED_GROUP_ID")
	cmdRouter := command.New(orderStore, command.Config{
		AllowedGroupID: allowedGroup,
		AdminUsername:  config.ConfigOr("ADMIN_USERNAME", "minhhy_p"),
	})

	webhook := &handler.Webhook{Router: cmdRouter, Bot: bot, Dedup: dedup}
	router.SetupRoutes(app, webhook, config.Config("WEBHOOK_SECRET"))

	helper.StartMenuReminder(bot, allowedGroup)
	defer helper.StopMenuReminder()

	appURL := config.Config("APP_URL")
	helper.StartKeepAlive(appURL)
	defer helper.StopKeepAlive()

	if appURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := bot.SetWebhook(ctx, appURL); err != nil {
			log.Warn("Lỗi thiết lập webhook: ", err)
		}
		cancel()
	} else {
		log.Warn("Chưa có APP_URL, cần thiết lập webhook thủ công")
	}

	port := config.ConfigOr("PORT", "3000")
	log.Fatal(app.Listen(":" + port))
}
