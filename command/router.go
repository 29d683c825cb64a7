package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lunchbot/constants"
	"lunchbot/menu"
	"lunchbot/model"
	"lunchbot/store"
	"lunchbot/summary"
	"lunchbot/utils"
	"lunchbot/validate"

	log "github.com/sirupsen/logrus"
)

// Config là cấu hình truyền vào Router lúc khởi tạo, không đọc từ env
// bên trong để test được
type Config struct {
	AllowedGroupID string
	AdminUsername  string
}

// Router nhận một tin nhắn đã rút gọn và trả về text trả lời.
// Stateless, mọi dữ liệu nằm trong store.
type Router struct {
	store store.OrderStore
	cfg   Config
	now   func() time.Time
}

func New(s store.OrderStore, cfg Config) *Router {
	return &Router{store: s, cfg: cfg, now: time.Now}
}

// WithClock thay đồng hồ của router, dùng trong test để ghim "hôm nay"
func (r *Router) WithClock(now func() time.Time) *Router {
	r.now = now
	return r
}

// Handle xử lý một tin nhắn và trả về nội dung trả lời,
// chuỗi rỗng nghĩa là không trả lời gì
func (r *Router) Handle(ctx context.Context, msg model.IncomingMessage) string {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return ""
	}

	today := utils.DateOf(r.now())
	todayMenu, err := menu.ForDate(today)
	if err != nil {
		log.WithField("date", today).Error("Không resolve được menu: ", err)
		return constants.MSG_FETCH_FAILED
	}

	// /getchatid chạy trước filter group để admin lấy được id group mới
	if text == "/getchatid" && msg.Username == r.cfg.AdminUsername {
		return fmt.Sprintf(constants.MSG_CHAT_ID, msg.ChatID)
	}

	if msg.ChatID != r.cfg.AllowedGroupID {
		log.WithField("chatId", msg.ChatID).Info("Tin nhắn từ chat không được phép")
		return constants.MSG_NOT_PERMITTED
	}

	// Các lệnh không tham số phải khớp nguyên văn
	switch text {
	case "/guide":
		return constants.MSG_GUIDE
	case "/menu":
		return r.handleMenu(todayMenu)
	case "/resetdata":
		if msg.Username != r.cfg.AdminUsername {
			return fmt.Sprintf(constants.MSG_UNRECOGNIZED, text)
		}
		return r.handleReset(ctx)
	case "/myorders":
		return r.handleMyOrders(ctx, today, msg.Username)
	case "/summary":
		return r.handleSummary(ctx, today)
	case "/fullsummary":
		return r.handleFullSummary(ctx, today)
	}

	cmd, args := splitCommand(text)
	switch cmd {
	case "/order":
		return r.handleOrder(ctx, today, todayMenu, msg.Username, args)
	case "/removeorder":
		return r.handleRemove(ctx, today, todayMenu, msg.Username, args)
	}

	return fmt.Sprintf(constants.MSG_UNRECOGNIZED, text)
}

// splitCommand tách lệnh và phần tham số phía sau
func splitCommand(text string) (string, string) {
	cmd, args, found := strings.Cut(text, " ")
	if !found {
		return text, ""
	}
	return cmd, args
}

func (r *Router) handleMenu(m menu.Menu) string {
	if m == nil {
		return constants.MSG_MENU_SUNDAY
	}

	if len(m) == 0 {
		return fmt.Sprintf(constants.MSG_MENU_HEADER, constants.MSG_MENU_EMPTY)
	}
	lines := make([]string, 0, len(m))
	for i, dish := range m {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, utils.EscapeMarkdown(dish)))
	}
	return fmt.Sprintf(constants.MSG_MENU_HEADER, strings.Join(lines, "\n"))
}

func (r *Router) handleOrder(ctx context.Context, today string, m menu.Menu, username, args string) string {
	if m == nil {
		return constants.MSG_ORDER_SUNDAY
	}
	if strings.TrimSpace(args) == "" {
		return constants.MSG_ORDER_USAGE
	}

	intent, err := ParseOrder(args)
	switch {
	case errors.Is(err, ErrEmptyDish):
		return constants.MSG_ORDER_NO_DISH
	case errors.Is(err, ErrMalformedCommand):
		return constants.MSG_ORDER_BAD_FORM
	case errors.Is(err, ErrInvalidQuantity):
		return fmt.Sprintf(constants.MSG_ORDER_BAD_QTY, MaxQuantity)
	case err != nil:
		return constants.MSG_ORDER_USAGE
	}

	dish, found := menu.FindDish(intent.DishText, m)
	if !found {
		return fmt.Sprintf(constants.MSG_DISH_NOT_FOUND, utils.EscapeMarkdown(intent.DishText))
	}

	order := model.Order{
		Date:      today,
		Username:  username,
		Dish:      dish,
		Quantity:  intent.Quantity,
		LessRice:  intent.LessRice,
		CreatedAt: r.now(),
	}
	if err := validate.Order(&order); err != nil {
		log.WithField("username", username).Error("Đơn không hợp lệ: ", err)
		return constants.MSG_ORDER_FAILED
	}
	if err := r.store.Insert(ctx, &order); err != nil {
		log.WithField("username", username).Error("Lỗi thêm đơn đặt hàng: ", err)
		return constants.MSG_ORDER_FAILED
	}

	riceNote := ""
	if order.LessRice {
		riceNote = constants.LESS_RICE_SUFFIX
	}
	return fmt.Sprintf(constants.MSG_ORDER_OK, order.Quantity, utils.EscapeMarkdown(dish), riceNote, utils.EscapeMarkdown(username))
}

func (r *Router) handleMyOrders(ctx context.Context, today, username string) string {
	orders, err := r.store.UserOrders(ctx, today, username)
	if err != nil {
		log.WithField("username", username).Error("Lỗi lấy đơn đặt hàng của user: ", err)
		return constants.MSG_FETCH_FAILED
	}
	if len(orders) == 0 {
		return fmt.Sprintf(constants.MSG_MYORDERS_EMPTY, today)
	}

	lines := make([]string, 0, len(orders))
	for i, o := range orders {
		note := ""
		if o.LessRice {
			note = constants.LESS_RICE_SUFFIX
		}
		lines = append(lines, fmt.Sprintf("%d. %s: %d phần%s", i+1, utils.EscapeMarkdown(o.Dish), o.Quantity, note))
	}
	return fmt.Sprintf(constants.MSG_MYORDERS_HEADER, utils.EscapeMarkdown(username), today, strings.Join(lines, "\n"))
}

func (r *Router) handleRemove(ctx context.Context, today string, m menu.Menu, username, args string) string {
	if strings.TrimSpace(args) == "" {
		return constants.MSG_REMOVE_USAGE
	}

	dishText, err := ParseRemove(args)
	if err != nil {
		return constants.MSG_REMOVE_USAGE
	}

	// Món phải thuộc menu hôm nay, Chủ nhật menu nil nên luôn rơi vào đây
	dish, found := menu.FindDish(dishText, m)
	if !found {
		return fmt.Sprintf(constants.MSG_REMOVE_NOT_FOUND, utils.EscapeMarkdown(dishText))
	}

	deleted, err := r.store.DeleteUserDish(ctx, today, username, dish)
	if err != nil {
		log.WithField("username", username).Error("Lỗi xóa đơn đặt hàng: ", err)
		return constants.MSG_REMOVE_FAILED
	}
	if deleted == 0 {
		return fmt.Sprintf(constants.MSG_REMOVE_NOTHING, utils.EscapeMarkdown(dishText))
	}
	return fmt.Sprintf(constants.MSG_REMOVE_OK, utils.EscapeMarkdown(dish), utils.EscapeMarkdown(username))
}

func (r *Router) handleSummary(ctx context.Context, today string) string {
	orders, err := r.store.DayOrders(ctx, today)
	if err != nil {
		log.Error("Lỗi lấy tổng hợp đơn đặt hàng: ", err)
		return constants.MSG_FETCH_FAILED
	}

	counts := summary.Day(orders)
	if len(counts) == 0 {
		return fmt.Sprintf(constants.MSG_SUMMARY_HEADER, today, constants.MSG_SUMMARY_EMPTY)
	}

	lines := make([]string, 0, len(counts))
	for _, c := range counts {
		lines = append(lines, fmt.Sprintf("- %s: %d phần", c.Key, c.Quantity))
	}
	return fmt.Sprintf(constants.MSG_SUMMARY_HEADER, today, strings.Join(lines, "\n"))
}

func (r *Router) handleFullSummary(ctx context.Context, today string) string {
	orders, err := r.store.DayOrdersByUser(ctx, today)
	if err != nil {
		log.Error("Lỗi lấy tổng hợp đơn đặt hàng đầy đủ: ", err)
		return constants.MSG_FETCH_FAILED
	}

	users := summary.FullDay(orders)
	if len(users) == 0 {
		return fmt.Sprintf(constants.MSG_SUMMARY_HEADER, today, constants.MSG_SUMMARY_EMPTY)
	}

	blocks := make([]string, 0, len(users))
	for _, u := range users {
		lines := make([]string, 0, len(u.Items))
		for _, item := range u.Items {
			note := ""
			if item.LessRice {
				note = constants.LESS_RICE_SUFFIX
			}
			lines = append(lines, fmt.Sprintf("- %s: %d phần%s", utils.EscapeMarkdown(item.Dish), item.Quantity, note))
		}
		blocks = append(blocks, fmt.Sprintf(constants.MSG_SUMMARY_USER, utils.EscapeMarkdown(u.Username), strings.Join(lines, "\n")))
	}
	return fmt.Sprintf(constants.MSG_SUMMARY_HEADER, today, strings.Join(blocks, "\n\n"))
}

func (r *Router) handleReset(ctx context.Context) string {
	if err := r.store.DeleteAll(ctx); err != nil {
		log.Error("Lỗi reset dữ liệu: ", err)
		return constants.MSG_RESET_FAILED
	}
	return constants.MSG_RESET_OK
}
