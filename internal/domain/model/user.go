package model

// WaitingFor помечает, что следующее свободное текстовое сообщение пользователя
// предназначено конкретному обработчику, а не общему роутеру.
type WaitingFor string

const (
	WaitingNone      WaitingFor = ""
	WaitingPhone     WaitingFor = "phone"
	WaitingBroadcast WaitingFor = "broadcast"
)

// UserRecord представляет запись пользователя. Одна запись на пользователя,
// ключ — Telegram ID. Запись создается при первом контакте и никогда не удаляется.
type UserRecord struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`

	// Поля анкеты. Пустое значение означает, что шаг еще не пройден.
	ClassLevel  string `json:"class,omitempty"`
	School      string `json:"school,omitempty"`
	Phone       string `json:"phone,omitempty"`
	GroupJoined bool   `json:"group_joined,omitempty"`

	// Поля дневного лимита попыток. TestCountToday имеет смысл только
	// когда LastTestDate равен сегодняшней дате (формат "2006-01-02").
	LastTestDate   string `json:"last_test_date,omitempty"`
	TestCountToday int    `json:"test_count_today,omitempty"`

	WaitingFor WaitingFor `json:"waiting_for,omitempty"`

	// CurrentTest присутствует только пока тест в процессе.
	CurrentTest *ActiveQuizSession `json:"current_test,omitempty"`
}

// ActiveQuizSession — активная тестовая сессия, не более одной на пользователя.
// Инвариант: CurrentQuestion == len(Answers) вне шага обработки ответа.
type ActiveQuizSession struct {
	Subject         string         `json:"subject"`
	Score           int            `json:"score"`
	CurrentQuestion int            `json:"current_question"`
	Questions       []Question     `json:"questions"`
	Answers         []AnswerRecord `json:"answers"`
	QuestionMessage *MessageRef    `json:"question_message,omitempty"`
}

// AnswerRecord — один ответ пользователя в рамках сессии.
type AnswerRecord struct {
	QuestionID  int    `json:"question_id"`
	UserAnswer  int    `json:"user_answer"`
	Correct     int    `json:"correct_answer"`
	IsCorrect   bool   `json:"is_correct"`
	Explanation string `json:"explanation"`
}
