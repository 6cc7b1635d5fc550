package model

// Уровни знаний по результату теста. Значения совпадают с ключами уровней
// в courses.json.
const (
	LevelLow  = "boshlang'ich"
	LevelMid  = "o'rta"
	LevelHigh = "yuqori"
)

// Course — описание курса из статического справочника.
type Course struct {
	Name   string                 `json:"name"`
	Levels map[string]CourseLevel `json:"levels"`
}

// CourseLevel — параметры курса для конкретного уровня подготовки.
// Любое поле может отсутствовать в справочнике.
type CourseLevel struct {
	Time        string `json:"time,omitempty"`
	Teacher     string `json:"teacher,omitempty"`
	Location    string `json:"location,omitempty"`
	Price       string `json:"price,omitempty"`
	Description string `json:"description,omitempty"`
}
