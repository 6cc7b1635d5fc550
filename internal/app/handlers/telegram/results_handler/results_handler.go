package results_handler

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/ibrokhimov/matembot/internal/database"
	"github.com/ibrokhimov/matembot/internal/messages"
	"github.com/ibrokhimov/matembot/internal/telegram"
)

// Сколько последних результатов показывается в меню.
const lastResults = 5

// ResultsHandler показывает историю результатов пользователя.
type ResultsHandler struct {
	store database.Store
}

// NewResultsHandler возвращает структуру обработчика.
func NewResultsHandler(store database.Store) *ResultsHandler {
	return &ResultsHandler{store: store}
}

// Handle редактирует сообщение меню в список последних результатов.
func (h *ResultsHandler) Handle(c tele.Context) error {
	results, err := h.store.ResultsFor(c.Sender().ID)
	if err != nil {
		return err
	}
	rm := telegram.Markup(messages.MainMenuKeyboard())
	if len(results) == 0 {
		return c.Edit(messages.NoResults, rm)
	}

	if len(results) > lastResults {
		results = results[len(results)-lastResults:]
	}
	var b strings.Builder
	b.WriteString(messages.ResultsHeader)
	for i, res := range results {
		fmt.Fprintf(&b, messages.ResultRowFmt,
			i+1,
			capitalize(res.Subject),
			res.Score, res.Total,
			res.Percentage(),
			res.Date.Format("2006-01-02 15:04:05"),
		)
	}
	return c.Edit(b.String(), rm, tele.ModeMarkdown)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc.
func (h *ResultsHandler) GetHandlerFunc() tele.HandlerFunc {
	return func(c tele.Context) error {
		return h.Handle(c)
	}
}
