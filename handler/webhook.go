package handler

import (
	"strconv"
	"strings"

	"lunchbot/cache"
	"lunchbot/command"
	"lunchbot/model"
	"lunchbot/telegram"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// Webhook nhận update từ Telegram, đưa qua command router rồi gửi trả lời.
// Luôn trả "ok" cho Telegram kể cả khi xử lý lỗi, để Telegram không
// deliver lại update cũ mãi.
type Webhook struct {
	Router *command.Router
	Bot    *telegram.Client
	Dedup  *cache.Deduper
}

func (h *Webhook) Handle(c *fiber.Ctx) error {
	var update telegram.Update
	if err := c.BodyParser(&update); err != nil {
		log.Warn("Body webhook không parse được: ", err)
		return c.SendString("ok")
	}

	if update.Message == nil || strings.TrimSpace(update.Message.Text) == "" {
		return c.SendString("ok")
	}

	ctx := c.UserContext()
	if h.Dedup.Seen(ctx, update.UpdateID) {
		log.WithField("updateId", update.UpdateID).Info("Bỏ qua update đã xử lý")
		return c.SendString("ok")
	}

	msg := model.IncomingMessage{
		Text:     strings.TrimSpace(update.Message.Text),
		ChatID:   chatID(update.Message),
		Username: username(update.Message),
	}
	log.WithFields(log.Fields{
		"chatId":   msg.ChatID,
		"username": msg.Username,
	}).Infof("Tin nhắn: %q", msg.Text)

	reply := h.Router.Handle(ctx, msg)
	if reply != "" {
		if err := h.Bot.SendMessage(ctx, msg.ChatID, reply); err != nil {
			log.WithField("chatId", msg.ChatID).Error("Lỗi gửi tin nhắn: ", err)
		}
	}
	return c.SendString("ok")
}

func chatID(m *telegram.Message) string {
	return strconv.FormatInt(m.Chat.ID, 10)
}

func username(m *telegram.Message) string {
	if m.From == nil {
		return "Unknown"
	}
	if m.From.Username != "" {
		return m.From.Username
	}
	if m.From.FirstName != "" {
		return m.From.FirstName
	}
	return "Unknown"
}
