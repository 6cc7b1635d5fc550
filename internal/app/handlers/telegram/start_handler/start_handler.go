package start_handler

import (
	"fmt"

	tele "gopkg.in/telebot.v4"

	"github.com/ibrokhimov/matembot/internal/app/handlers/telegram/ui"
	"github.com/ibrokhimov/matembot/internal/domain/content"
	"github.com/ibrokhimov/matembot/internal/domain/onboarding"
	"github.com/ibrokhimov/matembot/internal/messages"
)

// StartHandler обрабатывает команду /start: создает запись пользователя и
// показывает либо очередной шаг анкеты, либо главное меню.
type StartHandler struct {
	onboarding *onboarding.Service
	content    *content.Registry
	inviteLink string
}

// NewStartHandler возвращает структуру обработчика.
func NewStartHandler(onboardingService *onboarding.Service, reg *content.Registry, inviteLink string) *StartHandler {
	return &StartHandler{onboarding: onboardingService, content: reg, inviteLink: inviteLink}
}

// Handle обрабатывает команду /start.
func (h *StartHandler) Handle(c tele.Context) error {
	user := c.Sender()
	rec, err := h.onboarding.EnsureRecord(user.ID, user.FirstName, user.LastName, user.Username)
	if err != nil {
		return err
	}

	switch onboarding.StepOf(rec) {
	case onboarding.StepClass:
		return c.Send(
			fmt.Sprintf(messages.ClassPromptFmt, user.FirstName),
			ui.ClassKeyboard(),
		)
	case onboarding.StepSchool:
		return c.Send(
			fmt.Sprintf(messages.SchoolPrompt, rec.ClassLevel),
			ui.SchoolKeyboard(h.content),
		)
	case onboarding.StepPhone:
		return c.Send(
			fmt.Sprintf(messages.PhonePromptFmt, rec.School),
			ui.ContactKeyboard(),
		)
	case onboarding.StepGroup:
		text, rm := ui.GroupPrompt(h.inviteLink)
		return c.Send(text, rm)
	default:
		// Анкета уже пройдена: /start просто открывает главное меню.
		text, rm := ui.MainMenu(rec)
		return c.Send(text, rm, tele.ModeMarkdown)
	}
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc.
func (h *StartHandler) GetHandlerFunc() tele.HandlerFunc {
	return func(c tele.Context) error {
		return h.Handle(c)
	}
}
