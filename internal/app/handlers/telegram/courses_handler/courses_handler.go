package courses_handler

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/ibrokhimov/matembot/internal/app/handlers/telegram/ui"
	"github.com/ibrokhimov/matembot/internal/domain/content"
	"github.com/ibrokhimov/matembot/internal/domain/model"
	"github.com/ibrokhimov/matembot/internal/messages"
	"github.com/ibrokhimov/matembot/internal/telegram"
)

// Порядок уровней в карточке курса.
var levelOrder = []string{model.LevelLow, model.LevelMid, model.LevelHigh}

// CoursesHandler показывает каталог курсов и карточки отдельных курсов.
type CoursesHandler struct {
	content *content.Registry
}

// NewCoursesHandler возвращает структуру обработчика.
func NewCoursesHandler(reg *content.Registry) *CoursesHandler {
	return &CoursesHandler{content: reg}
}

// HandleList показывает список курсов.
func (h *CoursesHandler) HandleList(c tele.Context) error {
	var keyboard [][]model.Button
	for _, key := range h.content.CourseKeys() {
		course, _ := h.content.Course(key)
		keyboard = append(keyboard, []model.Button{{
			Text: course.Name,
			Data: model.CourseInfoPrefix + key,
		}})
	}
	keyboard = append(keyboard, []model.Button{{
		Text: messages.MainMenuButton,
		Data: model.MainMenuKey,
	}})
	return c.Edit(messages.CoursesIntro, telegram.Markup(keyboard), tele.ModeMarkdown)
}

// HandleDetails показывает карточку курса по callback "course_info_<key>".
func (h *CoursesHandler) HandleDetails(c tele.Context) error {
	key := strings.TrimPrefix(ui.CallbackData(c), model.CourseInfoPrefix)
	course, ok := h.content.Course(key)
	if !ok {
		return c.Edit(messages.CourseNotFound, telegram.Markup(messages.MainMenuKeyboard()))
	}

	var b strings.Builder
	fmt.Fprintf(&b, messages.CourseHeaderFmt, course.Name)
	for _, level := range levelOrder {
		lv, ok := course.Levels[level]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, messages.CourseLevelFmt,
			capitalize(level),
			orNotProvided(lv.Time),
			orNotProvided(lv.Teacher),
			orNotProvided(lv.Location),
			orNotProvided(lv.Price),
			orNotProvided(lv.Description),
		)
	}

	back := [][]model.Button{{{Text: messages.CoursesBackButton, Data: model.CoursesListKey}}}
	return c.Edit(b.String(), telegram.Markup(back), tele.ModeMarkdown)
}

func orNotProvided(v string) string {
	if v == "" {
		return messages.NotProvided
	}
	return v
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
