package broadcast_handler

import (
	"fmt"

	tele "gopkg.in/telebot.v4"

	"github.com/ibrokhimov/matembot/internal/database"
	"github.com/ibrokhimov/matembot/internal/domain/broadcast"
	"github.com/ibrokhimov/matembot/internal/domain/model"
	"github.com/ibrokhimov/matembot/internal/messages"
)

// BroadcastHandler запускает рассылку по команде оператора и принимает
// фотографии как содержимое рассылки.
type BroadcastHandler struct {
	store     database.Store
	broadcast *broadcast.Service
	isAdmin   func(userID int64) bool
}

// NewBroadcastHandler возвращает структуру обработчика.
func NewBroadcastHandler(store database.Store, broadcastService *broadcast.Service, isAdmin func(userID int64) bool) *BroadcastHandler {
	return &BroadcastHandler{store: store, broadcast: broadcastService, isAdmin: isAdmin}
}

// HandleCommand обрабатывает /broadcast: взводит у оператора флаг ожидания
// содержимого рассылки. Команда доступна только операторам.
func (h *BroadcastHandler) HandleCommand(c tele.Context) error {
	userID := c.Sender().ID
	if !h.isAdmin(userID) {
		return c.Send(messages.NotAllowed)
	}
	rec, err := h.store.GetOrCreate(userID)
	if err != nil {
		return err
	}
	rec.WaitingFor = model.WaitingBroadcast
	if err := h.store.Set(userID, rec); err != nil {
		return err
	}
	return c.Send(messages.BroadcastPrompt)
}

// HandlePhoto обрабатывает входящее фото: вне режима рассылки оно
// игнорируется, в режиме рассылки уходит всем пользователям с подписью.
func (h *BroadcastHandler) HandlePhoto(c tele.Context) error {
	userID := c.Sender().ID
	rec, err := h.store.GetOrCreate(userID)
	if err != nil {
		return err
	}
	if rec.WaitingFor != model.WaitingBroadcast {
		return nil
	}
	if !h.isAdmin(userID) {
		return c.Send(messages.NotAllowed)
	}

	photo := c.Message().Photo
	if photo == nil {
		return nil
	}
	content := broadcast.Content{
		PhotoID: photo.FileID,
		Caption: c.Message().Caption,
	}
	sent, failed, err := h.broadcast.Broadcast(userID, content)
	if err != nil {
		return err
	}
	return c.Send(fmt.Sprintf(messages.BroadcastSummaryFmt, sent, failed))
}
