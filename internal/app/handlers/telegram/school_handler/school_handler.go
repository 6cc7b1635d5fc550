package school_handler

import (
	"errors"
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/ibrokhimov/matembot/internal/app/handlers/telegram/ui"
	"github.com/ibrokhimov/matembot/internal/domain/model"
	"github.com/ibrokhimov/matembot/internal/domain/onboarding"
	"github.com/ibrokhimov/matembot/internal/messages"
)

// SchoolHandler обрабатывает выбор школы на шаге анкеты.
type SchoolHandler struct {
	onboarding *onboarding.Service
}

// NewSchoolHandler возвращает структуру обработчика.
func NewSchoolHandler(onboardingService *onboarding.Service) *SchoolHandler {
	return &SchoolHandler{onboarding: onboardingService}
}

// Handle обрабатывает callback вида "school_12": сохраняет школу и
// запрашивает телефон. Нажатие до выбора класса игнорируется: состояние
// анкеты строго упорядочено.
func (h *SchoolHandler) Handle(c tele.Context) error {
	key := strings.TrimPrefix(ui.CallbackData(c), model.SchoolPrefix)
	school, err := h.onboarding.SelectSchool(c.Sender().ID, key)
	if err != nil {
		if errors.Is(err, onboarding.ErrOutOfOrder) {
			return c.Respond(&tele.CallbackResponse{Text: messages.OnboardingFirst})
		}
		return err
	}
	if err := c.Edit(fmt.Sprintf(messages.PhonePromptFmt, school)); err != nil {
		return err
	}
	// Reply-клавиатуру нельзя прикрепить к отредактированному сообщению,
	// кнопка отправки контакта уходит отдельным сообщением.
	return c.Send(messages.ShareContactButton, ui.ContactKeyboard())
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc.
func (h *SchoolHandler) GetHandlerFunc() tele.HandlerFunc {
	return func(c tele.Context) error {
		return h.Handle(c)
	}
}
