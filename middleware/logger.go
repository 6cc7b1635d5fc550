package middleware

import (
	"encoding/json"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v4"
)

// Logger возвращает middleware, логирующее входящие обновления Telegram
// на уровне Debug. Обновление сериализуется в JSON целиком.
func Logger(log *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			data, _ := json.Marshal(c.Update())
			log.Debug("incoming update", zap.ByteString("update", data))
			return next(c)
		}
	}
}

// UserActions возвращает middleware, логирующее действие пользователя в
// структурированном виде: идентификатор, тип действия и полезную нагрузку.
func UserActions(log *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			err := next(c)
			user := c.Sender()
			if user == nil {
				return err
			}
			var action, payload string
			if cb := c.Callback(); cb != nil {
				action, payload = "callback", cb.Data
			} else if msg := c.Message(); msg != nil {
				action, payload = "message", msg.Text
			} else {
				action = "unknown"
			}
			log.Debug("user action",
				zap.Int64("user_id", user.ID),
				zap.String("action", action),
				zap.String("payload", payload),
				zap.Error(err))
			return err
		}
	}
}
