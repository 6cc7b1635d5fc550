package contact_handler

import (
	"errors"

	tele "gopkg.in/telebot.v4"

	"github.com/ibrokhimov/matembot/internal/app/handlers/telegram/ui"
	"github.com/ibrokhimov/matembot/internal/domain/onboarding"
	"github.com/ibrokhimov/matembot/internal/messages"
)

// ContactHandler принимает телефон, отправленный кнопкой "поделиться
// контактом".
type ContactHandler struct {
	onboarding *onboarding.Service
	inviteLink string
}

// NewContactHandler возвращает структуру обработчика.
func NewContactHandler(onboardingService *onboarding.Service, inviteLink string) *ContactHandler {
	return &ContactHandler{onboarding: onboardingService, inviteLink: inviteLink}
}

// Handle сохраняет номер из контакта и переводит пользователя к шагу
// проверки членства в группе.
func (h *ContactHandler) Handle(c tele.Context) error {
	contact := c.Message().Contact
	if contact == nil {
		return nil
	}
	err := h.onboarding.SubmitContact(c.Sender().ID, contact.PhoneNumber)
	if errors.Is(err, onboarding.ErrOutOfOrder) {
		return c.Send(messages.OnboardingFirst)
	}
	if err != nil {
		return err
	}
	text, rm := ui.GroupPrompt(h.inviteLink)
	return c.Send(text, rm)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc.
func (h *ContactHandler) GetHandlerFunc() tele.HandlerFunc {
	return func(c tele.Context) error {
		return h.Handle(c)
	}
}
