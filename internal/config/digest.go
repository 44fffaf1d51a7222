package config

// DigestConfig controls the scheduled daily recap.
type DigestConfig struct {
	Enabled        bool   `envconfig:"DIGEST_ENABLED" default:"false"`
	Hour           int    `envconfig:"DIGEST_HOUR" default:"9"`
	TelegramToken  string `envconfig:"TELEGRAM_TOKEN"`
	TelegramChatID int64  `envconfig:"TELEGRAM_CHAT_ID"`
}
