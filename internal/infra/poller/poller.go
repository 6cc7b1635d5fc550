// Package poller выбирает способ получения обновлений Telegram.
package poller

import (
	"gopkg.in/telebot.v4"

	"github.com/ibrokhimov/matembot/internal/infra/config"
)

// New создает Poller в зависимости от режима: webhook или лонгпуллинг.
func New(cfg *config.Config) telebot.Poller {
	if cfg.TelegramBot.Mode == "webhook" {
		return &telebot.Webhook{
			Listen: cfg.TelegramBot.ListenAddr,
			Endpoint: &telebot.WebhookEndpoint{
				PublicURL: cfg.TelegramBot.WebhookURL,
			},
		}
	}
	return &telebot.LongPoller{Timeout: cfg.PollIntervalDuration()}
}
