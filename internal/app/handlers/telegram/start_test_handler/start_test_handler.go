package start_test_handler

import (
	"errors"

	tele "gopkg.in/telebot.v4"

	"github.com/ibrokhimov/matembot/internal/domain/content"
	"github.com/ibrokhimov/matembot/internal/domain/quiz"
	"github.com/ibrokhimov/matembot/internal/domain/quota"
	"github.com/ibrokhimov/matembot/internal/messages"
	"github.com/ibrokhimov/matembot/internal/telegram"
)

// StartTestHandler запускает тестовую сессию по кнопке главного меню.
type StartTestHandler struct {
	quiz *quiz.Service
}

// NewStartTestHandler возвращает структуру обработчика.
func NewStartTestHandler(quizService *quiz.Service) *StartTestHandler {
	return &StartTestHandler{quiz: quizService}
}

// Handle запускает сессию. Ожидаемые бизнес-отказы показываются
// пользователю конкретным сообщением вместо меню; первый вопрос при успехе
// отправляет сам движок теста.
func (h *StartTestHandler) Handle(c tele.Context) error {
	err := h.quiz.StartSession(c.Sender().ID, content.DefaultSubject)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, quiz.ErrNotEligible):
		return h.reject(c, messages.OnboardingFirst)
	case errors.Is(err, quiz.ErrSessionActive):
		return h.reject(c, messages.TestAlreadyActive)
	case errors.Is(err, quota.ErrQuotaExceeded):
		return h.reject(c, messages.QuotaExceeded)
	case errors.Is(err, quiz.ErrNoQuestions):
		return h.reject(c, messages.NoQuestions)
	case errors.Is(err, quiz.ErrInsufficientQuestions):
		return h.reject(c, messages.InsufficientQuestions)
	default:
		return err
	}
}

func (h *StartTestHandler) reject(c tele.Context, text string) error {
	return c.Edit(text, telegram.Markup(messages.MainMenuKeyboard()))
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc.
func (h *StartTestHandler) GetHandlerFunc() tele.HandlerFunc {
	return func(c tele.Context) error {
		return h.Handle(c)
	}
}
