package middleware

import (
	tele "gopkg.in/telebot.v4"

	"github.com/ibrokhimov/matembot/internal/database/userlock"
)

// Serialize возвращает middleware, выполняющее все обработчики одного
// пользователя строго последовательно, в порядке поступления обновлений.
// Обработчики читают и перезаписывают запись пользователя целиком, поэтому
// два быстрых нажатия без этой блокировки могли бы потерять друг друга.
// Разные пользователи обрабатываются параллельно.
func Serialize(locks *userlock.Keyed) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			user := c.Sender()
			if user == nil {
				return next(c)
			}
			locks.Lock(user.ID)
			defer locks.Unlock(user.ID)
			return next(c)
		}
	}
}
