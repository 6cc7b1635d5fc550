package model

// Question — вопрос теста из статического пула. Пул загружается один раз
// при старте и не изменяется. ID вопросов распределены по диапазонам
// сложности (1..10, 11..20 и т.д.), что используется при выборке.
type Question struct {
	ID          int      `json:"id"`
	Text        string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation,omitempty"`
}
