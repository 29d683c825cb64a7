package telegram

// Payload webhook của Telegram, chỉ khai báo các field bot dùng tới

type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	MessageID int64  `json:"message_id"`
	Text      string `json:"text"`
	Chat      Chat   `json:"chat"`
	From      *User  `json:"from"`
}

type Chat struct {
	ID int64 `json:"id"`
}

type User struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
}
