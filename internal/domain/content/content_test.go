package content

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibrokhimov/matembot/internal/domain/model"
)

func writeFile(t *testing.T, dir, name string, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func validFiles(t *testing.T) (string, string, string) {
	t.Helper()
	dir := t.TempDir()
	questions := writeFile(t, dir, "questions.json", map[string][]model.Question{
		"matem": {
			{ID: 1, Text: "2+2?", Options: []string{"3", "4"}, Correct: 1, Explanation: "2+2=4"},
			{ID: 15, Text: "3*3?", Options: []string{"9", "6", "12"}, Correct: 0},
		},
	})
	schools := writeFile(t, dir, "schools.json", map[string]map[string]string{
		"schools": {"12": "12-sonli maktab", "5": "5-sonli maktab"},
	})
	courses := writeFile(t, dir, "courses.json", map[string]model.Course{
		"matem": {
			Name: "Matematika kursi",
			Levels: map[string]model.CourseLevel{
				model.LevelLow: {Time: "15:00"},
			},
		},
	})
	return questions, schools, courses
}

func TestLoad(t *testing.T) {
	reg, err := Load(validFiles(t))
	require.NoError(t, err)

	pool := reg.Questions("matem")
	require.Len(t, pool, 2)
	assert.Equal(t, "2+2?", pool[0].Text)
	assert.Empty(t, reg.Questions("fizika"))

	course, ok := reg.Course("matem")
	require.True(t, ok)
	assert.Equal(t, "Matematika kursi", course.Name)
	_, ok = reg.Course("fizika")
	assert.False(t, ok)
}

func TestLoad_RejectsBadQuestions(t *testing.T) {
	dir := t.TempDir()
	schools := writeFile(t, dir, "schools.json", map[string]map[string]string{"schools": {}})
	courses := writeFile(t, dir, "courses.json", map[string]model.Course{})

	t.Run("too few options", func(t *testing.T) {
		questions := writeFile(t, dir, "q1.json", map[string][]model.Question{
			"matem": {{ID: 1, Text: "?", Options: []string{"a"}, Correct: 0}},
		})
		_, err := Load(questions, schools, courses)
		require.Error(t, err)
	})

	t.Run("correct index out of range", func(t *testing.T) {
		questions := writeFile(t, dir, "q2.json", map[string][]model.Question{
			"matem": {{ID: 1, Text: "?", Options: []string{"a", "b"}, Correct: 2}},
		})
		_, err := Load(questions, schools, courses)
		require.Error(t, err)
	})
}

func TestLoad_MissingFile(t *testing.T) {
	_, schools, courses := validFiles(t)
	_, err := Load("no/such/file.json", schools, courses)
	require.Error(t, err)
}

func TestSchoolName(t *testing.T) {
	reg, err := Load(validFiles(t))
	require.NoError(t, err)

	assert.Equal(t, "12-sonli maktab", reg.SchoolName("12"))
	assert.Equal(t, FallbackSchool, reg.SchoolName("other"))
	assert.Equal(t, FallbackSchool, reg.SchoolName(""))
}

func TestSchoolKeys_Sorted(t *testing.T) {
	reg, err := Load(validFiles(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"12", "5"}, reg.SchoolKeys())
}

func TestCourseKeys(t *testing.T) {
	reg, err := Load(validFiles(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"matem"}, reg.CourseKeys())
}
