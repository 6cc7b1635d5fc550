// Package ui собирает клавиатуры и тексты, общие для нескольких
// телеграм-обработчиков.
package ui

import (
	"fmt"
	"math/rand"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/ibrokhimov/matembot/internal/domain/content"
	"github.com/ibrokhimov/matembot/internal/domain/model"
	"github.com/ibrokhimov/matembot/internal/domain/onboarding"
	"github.com/ibrokhimov/matembot/internal/messages"
	"github.com/ibrokhimov/matembot/internal/telegram"
)

// CallbackData возвращает callback-данные без служебных символов, которые
// telebot добавляет к кнопкам.
func CallbackData(c tele.Context) string {
	data := strings.TrimSpace(c.Callback().Data)
	data = strings.ReplaceAll(data, "\f", "")
	data = strings.ReplaceAll(data, "\\f", "")
	return data
}

// MainMenu возвращает текст и клавиатуру главного меню.
func MainMenu(rec model.UserRecord) (string, *tele.ReplyMarkup) {
	quote := messages.Quotes[rand.Intn(len(messages.Quotes))]
	name := rec.FirstName
	if name == "" {
		name = messages.DefaultUserName
	}
	text := fmt.Sprintf(messages.MainMenuFmt, quote, name)
	return text, telegram.Markup(messages.MainMenuKeyboard())
}

// ClassKeyboard — клавиатура выбора класса, по три кнопки в ряд.
func ClassKeyboard() *tele.ReplyMarkup {
	levels := onboarding.ClassLevels()
	var keyboard [][]model.Button
	for i := 0; i < len(levels); i += 3 {
		end := i + 3
		if end > len(levels) {
			end = len(levels)
		}
		var row []model.Button
		for _, lvl := range levels[i:end] {
			row = append(row, model.Button{
				Text: fmt.Sprintf(messages.ClassButtonFmt, lvl),
				Data: model.ClassPrefix + lvl,
			})
		}
		keyboard = append(keyboard, row)
	}
	return telegram.Markup(keyboard)
}

// SchoolKeyboard — клавиатура выбора школы, по две кнопки в ряд, плюс
// кнопка "другая школа".
func SchoolKeyboard(reg *content.Registry) *tele.ReplyMarkup {
	keys := reg.SchoolKeys()
	var keyboard [][]model.Button
	for i := 0; i < len(keys); i += 2 {
		end := i + 2
		if end > len(keys) {
			end = len(keys)
		}
		var row []model.Button
		for _, key := range keys[i:end] {
			row = append(row, model.Button{
				Text: fmt.Sprintf(messages.SchoolBtnFmt, key),
				Data: model.SchoolPrefix + key,
			})
		}
		keyboard = append(keyboard, row)
	}
	keyboard = append(keyboard, []model.Button{{
		Text: messages.OtherSchoolBtn,
		Data: model.SchoolPrefix + "other",
	}})
	return telegram.Markup(keyboard)
}

// ContactKeyboard — reply-клавиатура с кнопкой отправки контакта.
func ContactKeyboard() *tele.ReplyMarkup {
	rm := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	rm.Reply(rm.Row(rm.Contact(messages.ShareContactButton)))
	return rm
}

// GroupPrompt — текст приглашения в группу и клавиатура проверки членства.
func GroupPrompt(inviteLink string) (string, *tele.ReplyMarkup) {
	text := fmt.Sprintf(messages.GroupPromptFmt, inviteLink)
	return text, telegram.Markup(messages.CheckGroupKeyboard())
}
