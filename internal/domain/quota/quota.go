// Package quota ограничивает число тестовых попыток в день.
package quota

import (
	"errors"
	"time"
)

// DailyLimit — максимум попыток на пользователя в календарные сутки.
const DailyLimit = 3

// DateLayout — формат календарной даты в записи пользователя.
const DateLayout = "2006-01-02"

// ErrQuotaExceeded возвращается, когда дневной лимит уже исчерпан.
var ErrQuotaExceeded = errors.New("daily test limit exceeded")

// Counter — часть записи пользователя, которой владеет квота.
// Инвариант: Count имеет смысл только при Date == сегодня; чтение со
// вчерашней датой обязано сначала сбросить счетчик.
type Counter struct {
	Date  string
	Count int
}

// CheckAndReserve выполняет проверку и резервирование попытки одним шагом.
// При устаревшей дате счетчик сбрасывается, при достижении лимита
// возвращается ErrQuotaExceeded, иначе попытка резервируется. Вызывающая
// сторона обязана держать блокировку пользователя и сохранить запись только
// вместе с созданием сессии.
func CheckAndReserve(c *Counter, today time.Time) error {
	day := today.Format(DateLayout)
	if c.Date != day {
		c.Count = 0
	}
	if c.Count >= DailyLimit {
		return ErrQuotaExceeded
	}
	c.Count++
	c.Date = day
	return nil
}
