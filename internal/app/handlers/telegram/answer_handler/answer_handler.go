package answer_handler

import (
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/ibrokhimov/matembot/internal/app/handlers/telegram/ui"
	"github.com/ibrokhimov/matembot/internal/domain/model"
	"github.com/ibrokhimov/matembot/internal/domain/quiz"
)

// AnswerHandler обрабатывает нажатие варианта ответа в тесте.
type AnswerHandler struct {
	quiz *quiz.Service
}

// NewAnswerHandler возвращает структуру обработчика.
func NewAnswerHandler(quizService *quiz.Service) *AnswerHandler {
	return &AnswerHandler{quiz: quizService}
}

// Handle обрабатывает callback вида "answer_2". Нажатия без активной сессии
// (например, по кнопкам уже завершенного теста) молча игнорируются.
func (h *AnswerHandler) Handle(c tele.Context) error {
	data := strings.TrimPrefix(ui.CallbackData(c), model.AnswerPrefix)
	option, err := strconv.Atoi(data)
	if err != nil {
		return nil
	}
	return h.quiz.RecordAnswer(c.Sender().ID, option)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc.
func (h *AnswerHandler) GetHandlerFunc() tele.HandlerFunc {
	return func(c tele.Context) error {
		return h.Handle(c)
	}
}
