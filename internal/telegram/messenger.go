// Package telegram адаптирует telebot.v4 к портам доменных сервисов:
// отправке/редактированию сообщений и проверке членства в группе.
package telegram

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/telebot.v4"

	"github.com/ibrokhimov/matembot/internal/domain/model"
	"github.com/ibrokhimov/matembot/internal/domain/onboarding"
)

// Messenger реализует порты quiz.Messenger, broadcast.Sender и
// onboarding.MemberChecker поверх одного экземпляра бота.
type Messenger struct {
	bot *telebot.Bot
}

// NewMessenger создает адаптер.
func NewMessenger(bot *telebot.Bot) *Messenger {
	return &Messenger{bot: bot}
}

// Markup преобразует доменную клавиатуру в инлайн-клавиатуру telebot.
// Используется и адаптером, и обработчиками.
func Markup(keyboard [][]model.Button) *telebot.ReplyMarkup {
	if keyboard == nil {
		return nil
	}
	rows := make([][]telebot.InlineButton, 0, len(keyboard))
	for _, row := range keyboard {
		btns := make([]telebot.InlineButton, 0, len(row))
		for _, b := range row {
			btns = append(btns, telebot.InlineButton{Text: b.Text, Data: b.Data})
		}
		rows = append(rows, btns)
	}
	return &telebot.ReplyMarkup{InlineKeyboard: rows}
}

func sendOptions(keyboard [][]model.Button) *telebot.SendOptions {
	return &telebot.SendOptions{
		ParseMode:   telebot.ModeMarkdown,
		ReplyMarkup: Markup(keyboard),
	}
}

// Send отправляет сообщение и возвращает ссылку для последующего
// редактирования или удаления.
func (m *Messenger) Send(chatID int64, text string, keyboard [][]model.Button) (model.MessageRef, error) {
	msg, err := m.bot.Send(telebot.ChatID(chatID), text, sendOptions(keyboard))
	if err != nil {
		return model.MessageRef{}, fmt.Errorf("failed to send message: %w", err)
	}
	return model.MessageRef{ChatID: chatID, MessageID: msg.ID}, nil
}

// Edit редактирует ранее отправленное сообщение на месте.
func (m *Messenger) Edit(ref model.MessageRef, text string, keyboard [][]model.Button) error {
	msg := &telebot.Message{ID: ref.MessageID, Chat: &telebot.Chat{ID: ref.ChatID}}
	if _, err := m.bot.Edit(msg, text, sendOptions(keyboard)); err != nil {
		return fmt.Errorf("failed to edit message: %w", err)
	}
	return nil
}

// Delete удаляет ранее отправленное сообщение.
func (m *Messenger) Delete(ref model.MessageRef) error {
	msg := &telebot.Message{ID: ref.MessageID, Chat: &telebot.Chat{ID: ref.ChatID}}
	if err := m.bot.Delete(msg); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}

// SendPhoto отправляет изображение с подписью.
func (m *Messenger) SendPhoto(chatID int64, fileID, caption string) error {
	photo := &telebot.Photo{File: telebot.File{FileID: fileID}, Caption: caption}
	if _, err := m.bot.Send(telebot.ChatID(chatID), photo); err != nil {
		return fmt.Errorf("failed to send photo: %w", err)
	}
	return nil
}

// IsMember проверяет членство пользователя в группе. Ошибки прав бота
// (бот исключен из группы, группа не найдена, нет прав на просмотр)
// возвращаются как onboarding.ErrAuthorization: это ошибка конфигурации,
// а не отказ пользователя.
func (m *Messenger) IsMember(groupID, userID int64) (bool, error) {
	member, err := m.bot.ChatMemberOf(telebot.ChatID(groupID), &telebot.User{ID: userID})
	if err != nil {
		if isAuthorizationError(err) {
			return false, fmt.Errorf("%w: %s", onboarding.ErrAuthorization, err)
		}
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	switch member.Role {
	case telebot.Creator, telebot.Administrator, telebot.Member, telebot.Restricted:
		return true, nil
	default:
		return false, nil
	}
}

func isAuthorizationError(err error) bool {
	if errors.Is(err, telebot.ErrChatNotFound) ||
		errors.Is(err, telebot.ErrKickedFromGroup) ||
		errors.Is(err, telebot.ErrKickedFromSuperGroup) ||
		errors.Is(err, telebot.ErrNotStartedByUser) {
		return true
	}
	desc := strings.ToLower(err.Error())
	return strings.Contains(desc, "not enough rights") ||
		strings.Contains(desc, "forbidden") ||
		strings.Contains(desc, "member list is inaccessible")
}
