package text_handler

import (
	"errors"
	"fmt"

	tele "gopkg.in/telebot.v4"

	"github.com/ibrokhimov/matembot/internal/app/handlers/telegram/ui"
	"github.com/ibrokhimov/matembot/internal/database"
	"github.com/ibrokhimov/matembot/internal/domain/broadcast"
	"github.com/ibrokhimov/matembot/internal/domain/model"
	"github.com/ibrokhimov/matembot/internal/domain/onboarding"
	"github.com/ibrokhimov/matembot/internal/messages"
)

// TextHandler маршрутизирует свободный текст по флагу ожидания в записи
// пользователя: телефон анкеты, текст рассылки или подсказка про кнопки.
type TextHandler struct {
	store      database.Store
	onboarding *onboarding.Service
	broadcast  *broadcast.Service
	isAdmin    func(userID int64) bool
	inviteLink string
}

// NewTextHandler возвращает структуру обработчика.
func NewTextHandler(
	store database.Store,
	onboardingService *onboarding.Service,
	broadcastService *broadcast.Service,
	isAdmin func(userID int64) bool,
	inviteLink string,
) *TextHandler {
	return &TextHandler{
		store:      store,
		onboarding: onboardingService,
		broadcast:  broadcastService,
		isAdmin:    isAdmin,
		inviteLink: inviteLink,
	}
}

// Handle обрабатывает входящее текстовое сообщение.
func (h *TextHandler) Handle(c tele.Context) error {
	userID := c.Sender().ID
	rec, err := h.store.GetOrCreate(userID)
	if err != nil {
		return err
	}

	switch rec.WaitingFor {
	case model.WaitingPhone:
		return h.handlePhone(c, userID)
	case model.WaitingBroadcast:
		return h.handleBroadcast(c, userID)
	}

	// Во время теста свободный текст не участвует в сценарии.
	if rec.CurrentTest != nil {
		return c.Send(messages.UseButtonsHint)
	}
	text, rm := ui.MainMenu(rec)
	return c.Send(text, rm, tele.ModeMarkdown)
}

func (h *TextHandler) handlePhone(c tele.Context, userID int64) error {
	err := h.onboarding.SubmitPhone(userID, c.Text())
	switch {
	case errors.Is(err, onboarding.ErrInvalidPhone):
		return c.Send(messages.InvalidPhone)
	case errors.Is(err, onboarding.ErrOutOfOrder):
		return c.Send(messages.OnboardingFirst)
	case err != nil:
		return err
	}
	text, rm := ui.GroupPrompt(h.inviteLink)
	return c.Send(text, rm)
}

func (h *TextHandler) handleBroadcast(c tele.Context, userID int64) error {
	if !h.isAdmin(userID) {
		return c.Send(messages.NotAllowed)
	}
	sent, failed, err := h.broadcast.Broadcast(userID, broadcast.Content{Text: c.Text()})
	if err != nil {
		return err
	}
	return c.Send(fmt.Sprintf(messages.BroadcastSummaryFmt, sent, failed))
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc.
func (h *TextHandler) GetHandlerFunc() tele.HandlerFunc {
	return func(c tele.Context) error {
		return h.Handle(c)
	}
}
