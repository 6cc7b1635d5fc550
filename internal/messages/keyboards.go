package messages

import "github.com/ibrokhimov/matembot/internal/domain/model"

// MainMenuKeyboard — клавиатура главного меню.
func MainMenuKeyboard() [][]model.Button {
	return [][]model.Button{
		{{Text: StartTestButton, Data: model.StartTestKey}},
		{{Text: CoursesButton, Data: model.CoursesListKey}},
		{{Text: ShowResultsButton, Data: model.ShowResultsKey}},
	}
}

// CheckGroupKeyboard — клавиатура подтверждения членства в группе.
func CheckGroupKeyboard() [][]model.Button {
	return [][]model.Button{
		{{Text: CheckGroupButton, Data: model.CheckGroupKey}},
	}
}
