package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config đọc biến môi trường, ưu tiên file .env nếu có
func Config(key string) string {
	// Bỏ qua lỗi nếu không có file .env (chạy trên server dùng env thật)
	_ = godotenv.Load(".env")
	return os.Getenv(key)
}

// ConfigOr trả về giá trị mặc định nếu biến môi trường rỗng
func ConfigOr(key, def string) string {
	if v := Config(key); v != "" {
		return v
	}
	return def
}
