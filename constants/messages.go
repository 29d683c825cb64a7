package constants

// Các câu trả lời gửi về Telegram (parse_mode Markdown)

const (
	MSG_NOT_PERMITTED = "ℹ️ Bot chỉ hoạt động trong group được phép. Liên hệ admin để biết thêm."

	// Dùng với fmt.Sprintf(lệnh gốc)
	MSG_UNRECOGNIZED = "ℹ️ Lệnh \"%s\" không hợp lệ. Dùng /menu, /order, /myorders, /removeorder, /summary, /guide."

	MSG_MENU_SUNDAY = "📋 **Hôm nay là Chủ nhật**\n\n🚫 Không có menu đặt cơm hôm nay!\n\n📅 Menu sẽ có vào:\n- **Menu 246**: Thứ 2, 4, 6\n- **Menu 357**: Thứ 3, 5, 7"
	MSG_MENU_HEADER = "📋 **Menu hôm nay**:\n%s"
	MSG_MENU_EMPTY  = "Chưa có món ăn nào trong menu!"

	MSG_ORDER_SUNDAY    = "🚫 **Hôm nay là Chủ nhật**\n\nKhông thể đặt cơm hôm nay! Menu sẽ có vào thứ 2-7."
	MSG_ORDER_USAGE     = "❗ Dùng đúng format: /order <tên món> [số lượng] [itcom]\nVí dụ: /order Thịt chiên 2 itcom"
	MSG_ORDER_NO_DISH   = "❗ Vui lòng nhập tên món ăn!\nDùng: /order <tên món> [số lượng] [itcom]"
	MSG_ORDER_BAD_FORM  = "❗ Format sai! Dùng: /order <tên món> [số lượng] [itcom]\nVí dụ: /order Thịt chiên 2 itcom"
	MSG_ORDER_BAD_QTY   = "❗ Số lượng phải là số nguyên dương (tối đa %d)!\nDùng: /order <tên món> [số lượng] [itcom]"
	MSG_DISH_NOT_FOUND  = "❌ Không có món \"%s\" trong menu! Dùng /menu để xem danh sách."
	MSG_ORDER_OK        = "🍽️ Đã đặt %d phần \"%s\"%s cho %s!"
	MSG_ORDER_FAILED    = "❌ Lỗi khi đặt món! Vui lòng thử lại."
	MSG_MYORDERS_EMPTY  = "📜 Bạn chưa đặt món nào hôm nay (%s)!"
	MSG_MYORDERS_HEADER = "📜 **Đơn đặt hàng của %s hôm nay (%s)**:\n%s"

	MSG_REMOVE_USAGE     = "❗ Dùng đúng format: /removeorder <tên món>\nVí dụ: /removeorder Thịt chiên"
	MSG_REMOVE_NOT_FOUND = "⚠️ Không có món \"%s\" trong menu hoặc hôm nay không có menu!"
	MSG_REMOVE_OK        = "✅ Đã xóa đơn \"%s\" của %s!"
	MSG_REMOVE_NOTHING   = "⚠️ Bạn chưa đặt món \"%s\" hôm nay!"
	MSG_REMOVE_FAILED    = "❌ Lỗi khi xóa món! Vui lòng thử lại."

	MSG_SUMMARY_HEADER = "📊 **Tổng hợp đơn đặt hàng hôm nay (%s)**:\n%s"
	MSG_SUMMARY_EMPTY  = "Chưa có đơn đặt hàng nào hôm nay!"
	MSG_SUMMARY_USER   = "👤 **%s**:\n%s"
	MSG_FETCH_FAILED   = "❌ Lỗi khi lấy dữ liệu! Vui lòng thử lại."

	MSG_RESET_OK     = "🗑️ Đã xóa toàn bộ dữ liệu đơn đặt hàng!"
	MSG_RESET_FAILED = "❌ Lỗi khi reset dữ liệu!"

	MSG_CHAT_ID = "🆔 ID của group này là: `%s`"

	// Hậu tố hiển thị khi đặt ít cơm
	LESS_RICE_SUFFIX = " (ít cơm)"
)

const MSG_GUIDE = `📖 **Hướng dẫn đặt và hủy món cho người mới**:

1. **Xem danh sách món ăn**:
   - Gõ: /menu
   - Ví dụ: Xem các món như Thịt chiên, Thịt kho chả...

2. **Đặt món**:
   - Gõ: /order <tên món> [số lượng] [itcom]
   - Trong đó:
     - <tên món>: Tên món trong menu (VD: Thịt chiên).
     - [số lượng]: Số phần, mặc định là 1 (VD: 2).
     - [itcom]: Thêm nếu muốn ít cơm.
   - Ví dụ:
     - /order Thịt chiên → Đặt 1 phần.
     - /order Thịt kho chả 2 → Đặt 2 phần Thịt kho chả.
     - /order Thịt chiên 1 itcom → Đặt 1 phần ít cơm.

3. **Xem đơn đã đặt**:
   - Gõ: /myorders
   - Ví dụ: Xem bạn đã đặt 2 phần Thịt chiên (ít cơm) hôm nay.

4. **Hủy món**:
   - Gõ: /removeorder <tên món>
   - Ví dụ: /removeorder Thịt chiên → Xóa tất cả đơn Thịt chiên của bạn hôm nay.

5. **Xem tổng hợp đơn hàng**:
   - Gõ: /summary hoặc /fullsummary
   - Ví dụ: Xem tất cả món mọi người đã đặt hôm nay.

💡 **Lưu ý**:
- Tên món phải đúng với menu (dùng /menu để kiểm tra).
- Đặt hoặc hủy món chỉ áp dụng trong ngày hôm nay.
- Có thắc mắc? Gõ /guide để xem lại hướng dẫn!`
