package model

import "time"

// TestResult — итог одной пройденной тестовой сессии. Список результатов
// пользователя только пополняется, записи никогда не изменяются.
type TestResult struct {
	Subject string    `json:"subject"`
	Score   int       `json:"score"`
	Total   int       `json:"total"`
	Date    time.Time `json:"date"`
}

// Percentage возвращает процент правильных ответов.
func (r TestResult) Percentage() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.Total) * 100
}
