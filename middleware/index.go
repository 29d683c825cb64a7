package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// VerifyTelegramSecret so khớp secret token Telegram gắn kèm mỗi webhook
// call (header X-Telegram-Bot-Api-Secret-Token). Không cấu hình secret
// thì cho qua hết.
func VerifyTelegramSecret(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Next()
		}
		if c.Get("X-Telegram-Bot-Api-Secret-Token") != secret {
			return c.SendStatus(fiber.StatusForbidden)
		}
		return c.Next()
	}
}
