package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Deduper chặn update Telegram gửi lại: Telegram sẽ deliver lại update
// nếu webhook trả lời chậm hoặc lỗi, không chặn thì một lệnh /order có
// thể bị ghi hai lần. Không có Redis thì deduper thành no-op.
type Deduper struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDeduper(addr string) *Deduper {
	d := &Deduper{ttl: 24 * time.Hour}
	if addr != "" {
		d.rdb = redis.NewClient(&redis.Options{Addr: addr})
	}
	return d
}

// Seen trả về true nếu update này đã xử lý rồi. Redis lỗi thì coi như
// chưa thấy, thà trả lời trùng còn hơn nuốt lệnh của user.
func (d *Deduper) Seen(ctx context.Context, updateID int64) bool {
	if d == nil || d.rdb == nil {
		return false
	}
	fresh, err := d.rdb.SetNX(ctx, fmt.Sprintf("lunchbot:update:%d", updateID), 1, d.ttl).Result()
	if err != nil {
		log.Warn("Lỗi Redis khi dedup update: ", err)
		return false
	}
	return !fresh
}
