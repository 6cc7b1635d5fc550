package class_handler

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/ibrokhimov/matembot/internal/app/handlers/telegram/ui"
	"github.com/ibrokhimov/matembot/internal/domain/content"
	"github.com/ibrokhimov/matembot/internal/domain/model"
	"github.com/ibrokhimov/matembot/internal/domain/onboarding"
	"github.com/ibrokhimov/matembot/internal/messages"
)

// ClassHandler обрабатывает выбор класса на шаге анкеты.
type ClassHandler struct {
	onboarding *onboarding.Service
	content    *content.Registry
}

// NewClassHandler возвращает структуру обработчика.
func NewClassHandler(onboardingService *onboarding.Service, reg *content.Registry) *ClassHandler {
	return &ClassHandler{onboarding: onboardingService, content: reg}
}

// Handle обрабатывает callback вида "class_7": сохраняет класс и переводит
// пользователя к выбору школы, редактируя то же сообщение.
func (h *ClassHandler) Handle(c tele.Context) error {
	class := strings.TrimPrefix(ui.CallbackData(c), model.ClassPrefix)
	if err := h.onboarding.SelectClass(c.Sender().ID, class); err != nil {
		return err
	}
	return c.Edit(
		fmt.Sprintf(messages.SchoolPrompt, class),
		ui.SchoolKeyboard(h.content),
	)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc.
func (h *ClassHandler) GetHandlerFunc() tele.HandlerFunc {
	return func(c tele.Context) error {
		return h.Handle(c)
	}
}
