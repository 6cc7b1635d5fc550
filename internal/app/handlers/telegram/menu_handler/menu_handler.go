package menu_handler

import (
	tele "gopkg.in/telebot.v4"

	"github.com/ibrokhimov/matembot/internal/app/handlers/telegram/ui"
	"github.com/ibrokhimov/matembot/internal/database"
)

// MenuHandler возвращает пользователя в главное меню.
type MenuHandler struct {
	store database.Store
}

// NewMenuHandler возвращает структуру обработчика.
func NewMenuHandler(store database.Store) *MenuHandler {
	return &MenuHandler{store: store}
}

// Handle редактирует текущее сообщение в главное меню.
func (h *MenuHandler) Handle(c tele.Context) error {
	rec, err := h.store.GetOrCreate(c.Sender().ID)
	if err != nil {
		return err
	}
	text, rm := ui.MainMenu(rec)
	return c.Edit(text, rm, tele.ModeMarkdown)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc.
func (h *MenuHandler) GetHandlerFunc() tele.HandlerFunc {
	return func(c tele.Context) error {
		return h.Handle(c)
	}
}
