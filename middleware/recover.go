package middleware

import (
	"errors"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v4"
)

// Recover возвращает middleware, перехватывающее панику в обработчике.
// Паника логируется и преобразуется в ошибку, чтобы цепочка обработчиков
// корректно завершилась, а бот продолжил обслуживать остальных.
func Recover(log *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					var e error
					switch x := r.(type) {
					case error:
						e = x
					case string:
						e = errors.New(x)
					default:
						e = errors.New("unknown panic")
					}
					log.Error("recovered from panic", zap.Error(e))
					err = e
				}
			}()
			return next(c)
		}
	}
}
