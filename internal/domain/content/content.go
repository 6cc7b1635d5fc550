// Package content загружает статические справочники бота: пул вопросов по
// предметам, список школ и каталог курсов. Справочники читаются один раз
// при старте и далее только читаются.
package content

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/ibrokhimov/matembot/internal/domain/model"
)

// DefaultSubject — единственный предмет текущего пула вопросов.
const DefaultSubject = "matem"

// FallbackSchool — подпись для школы, отсутствующей в справочнике.
const FallbackSchool = "Boshqa maktab"

// Registry — неизменяемый набор справочников.
type Registry struct {
	questions map[string][]model.Question
	schools   map[string]string
	courses   map[string]model.Course
}

type schoolsFile struct {
	Schools map[string]string `json:"schools"`
}

// Load читает справочники из JSON-файлов и валидирует вопросы.
func Load(questionsFile, schoolsFile_, coursesFile string) (*Registry, error) {
	r := &Registry{}

	if err := readJSON(questionsFile, &r.questions); err != nil {
		return nil, err
	}
	for subject, pool := range r.questions {
		for _, q := range pool {
			if len(q.Options) < 2 {
				return nil, fmt.Errorf("question %d (%s): needs at least 2 options", q.ID, subject)
			}
			if q.Correct < 0 || q.Correct >= len(q.Options) {
				return nil, fmt.Errorf("question %d (%s): correct index %d out of range", q.ID, subject, q.Correct)
			}
		}
	}

	var sf schoolsFile
	if err := readJSON(schoolsFile_, &sf); err != nil {
		return nil, err
	}
	r.schools = sf.Schools
	if r.schools == nil {
		r.schools = make(map[string]string)
	}

	if err := readJSON(coursesFile, &r.courses); err != nil {
		return nil, err
	}

	return r, nil
}

func readJSON(filename string, v any) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return nil
}

// Questions возвращает пул вопросов предмета.
func (r *Registry) Questions(subject string) []model.Question {
	return r.questions[subject]
}

// SchoolName разрешает ключ школы в название. Для неизвестного ключа
// возвращается FallbackSchool.
func (r *Registry) SchoolName(key string) string {
	if name, ok := r.schools[key]; ok {
		return name
	}
	return FallbackSchool
}

// SchoolKeys возвращает отсортированные ключи школ для построения меню.
func (r *Registry) SchoolKeys() []string {
	keys := make([]string, 0, len(r.schools))
	for k := range r.schools {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Course возвращает курс по предмету.
func (r *Registry) Course(subject string) (model.Course, bool) {
	c, ok := r.courses[subject]
	return c, ok
}

// CourseKeys возвращает отсортированные ключи каталога курсов.
func (r *Registry) CourseKeys() []string {
	keys := make([]string, 0, len(r.courses))
	for k := range r.courses {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
