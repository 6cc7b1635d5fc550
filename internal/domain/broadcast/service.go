// Package broadcast рассылает сообщение оператора всем известным
// пользователям за один проход, без повторов и пауз. Ошибка доставки одному
// получателю не прерывает рассылку остальным.
package broadcast

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ibrokhimov/matembot/internal/database"
	"github.com/ibrokhimov/matembot/internal/domain/model"
)

// Sender — транспортные операции рассылки.
type Sender interface {
	Send(chatID int64, text string, keyboard [][]model.Button) (model.MessageRef, error)
	SendPhoto(chatID int64, fileID, caption string) error
}

// Content — содержимое рассылки: либо текст, либо изображение с подписью.
type Content struct {
	Text    string
	PhotoID string
	Caption string
}

// Service выполняет рассылку.
type Service struct {
	store  database.Store
	sender Sender
	log    *zap.Logger
}

// NewService создает сервис рассылки.
func NewService(store database.Store, sender Sender, log *zap.Logger) *Service {
	return &Service{store: store, sender: sender, log: log}
}

// Broadcast доставляет content каждому известному пользователю, кроме самого
// оператора, и возвращает счетчики успехов и ошибок. Флаг ожидания ввода у
// оператора снимается безусловно, даже если часть доставок не удалась.
func (s *Service) Broadcast(operatorID int64, content Content) (sent, failed int, err error) {
	defer func() {
		if cerr := s.clearWaiting(operatorID); cerr != nil {
			s.log.Error("failed to clear operator waiting flag",
				zap.Int64("operator_id", operatorID), zap.Error(cerr))
		}
	}()

	ids, err := s.store.AllUserIDs()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list users: %w", err)
	}

	for _, id := range ids {
		if id == operatorID {
			continue
		}
		if derr := s.deliver(id, content); derr != nil {
			failed++
			s.log.Warn("broadcast delivery failed",
				zap.Int64("user_id", id), zap.Error(derr))
			continue
		}
		sent++
	}

	s.log.Info("broadcast finished",
		zap.Int64("operator_id", operatorID),
		zap.Int("sent", sent), zap.Int("failed", failed))
	return sent, failed, nil
}

func (s *Service) deliver(userID int64, content Content) error {
	if content.PhotoID != "" {
		return s.sender.SendPhoto(userID, content.PhotoID, content.Caption)
	}
	_, err := s.sender.Send(userID, content.Text, nil)
	return err
}

func (s *Service) clearWaiting(operatorID int64) error {
	rec, err := s.store.GetOrCreate(operatorID)
	if err != nil {
		return err
	}
	rec.WaitingFor = model.WaitingNone
	return s.store.Set(operatorID, rec)
}
