package models

import "time"

// User is a messaging-platform account seen by the bot.
type User struct {
	ID          int64
	TelegramID  int64
	Username    string
	IsModerator bool
	CreatedAt   time.Time
}
