package group_handler

import (
	"errors"

	tele "gopkg.in/telebot.v4"

	"github.com/ibrokhimov/matembot/internal/app/handlers/telegram/ui"
	"github.com/ibrokhimov/matembot/internal/domain/onboarding"
	"github.com/ibrokhimov/matembot/internal/messages"
)

// GroupHandler обрабатывает кнопку проверки членства в группе.
type GroupHandler struct {
	onboarding *onboarding.Service
}

// NewGroupHandler возвращает структуру обработчика.
func NewGroupHandler(onboardingService *onboarding.Service) *GroupHandler {
	return &GroupHandler{onboarding: onboardingService}
}

// Handle проверяет членство. Подтверждение завершает анкету и открывает
// главное меню; отказ показывает всплывающее уведомление с тем же
// приглашением. Ошибка прав бота — терминальная проблема конфигурации,
// пользователь получает явное сообщение, повторной проверки не происходит.
func (h *GroupHandler) Handle(c tele.Context) error {
	userID := c.Sender().ID
	member, err := h.onboarding.ConfirmGroup(userID)
	if err != nil {
		if errors.Is(err, onboarding.ErrAuthorization) {
			return c.Send(messages.GroupCheckFailed)
		}
		if errors.Is(err, onboarding.ErrOutOfOrder) {
			return c.Respond(&tele.CallbackResponse{Text: messages.OnboardingFirst})
		}
		return err
	}
	if !member {
		return c.Respond(&tele.CallbackResponse{Text: messages.NotGroupMember, ShowAlert: true})
	}

	rec, err := h.onboarding.EnsureRecord(userID, c.Sender().FirstName, c.Sender().LastName, c.Sender().Username)
	if err != nil {
		return err
	}
	text, rm := ui.MainMenu(rec)
	return c.Edit(text, rm, tele.ModeMarkdown)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc.
func (h *GroupHandler) GetHandlerFunc() tele.HandlerFunc {
	return func(c tele.Context) error {
		return h.Handle(c)
	}
}
