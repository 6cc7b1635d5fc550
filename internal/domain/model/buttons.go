package model

// Константы callback-данных. Привязаны к логике роутера callback'ов,
// не следует менять значения без изменения обработчиков.
const (
	StartTestKey   = "start_test"
	CoursesListKey = "courses_list"
	ShowResultsKey = "show_results"
	MainMenuKey    = "main_menu"
	CheckGroupKey  = "check_group"

	ClassPrefix      = "class_"
	SchoolPrefix     = "school_"
	AnswerPrefix     = "answer_"
	CourseInfoPrefix = "course_info_"
)
