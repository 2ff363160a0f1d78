package config

type Bot struct {
	Token        string  `env:"BOT_TOKEN"         json:"-"`
	ChatID       int64   `env:"BOT_CHAT_ID"`
	AllowedChats []int64 `env:"BOT_ALLOWED_CHATS" envSeparator:","`
}

func (b Bot) Enabled() bool {
	return b.Token != ""
}
