package database

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibrokhimov/matembot/internal/domain/model"
)

func newTestJSONStore(t *testing.T) (*JSONStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewJSONStore(
		filepath.Join(dir, "user_data.json"),
		filepath.Join(dir, "results.json"),
	)
	require.NoError(t, err)
	return store, dir
}

func TestJSONStore_InitializesFiles(t *testing.T) {
	_, dir := newTestJSONStore(t)

	data, err := os.ReadFile(filepath.Join(dir, "user_data.json"))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestJSONStore_GetOrCreate(t *testing.T) {
	store, _ := newTestJSONStore(t)

	rec, err := store.GetOrCreate(42)
	require.NoError(t, err)
	assert.Equal(t, model.UserRecord{}, rec)

	ids, err := store.AllUserIDs()
	require.NoError(t, err)
	assert.Equal(t, []int64{42}, ids)
}

func TestJSONStore_SetRoundTrip(t *testing.T) {
	store, dir := newTestJSONStore(t)

	want := model.UserRecord{
		FirstName:      "Ali",
		ClassLevel:     "9",
		School:         "12-sonli maktab",
		Phone:          "+998901234567",
		GroupJoined:    true,
		LastTestDate:   "2025-03-10",
		TestCountToday: 2,
		WaitingFor:     model.WaitingBroadcast,
		CurrentTest: &model.ActiveQuizSession{
			Subject:         "matem",
			Score:           3,
			CurrentQuestion: 4,
			Questions: []model.Question{
				{ID: 7, Text: "savol", Options: []string{"a", "b"}, Correct: 1},
			},
			Answers: []model.AnswerRecord{
				{QuestionID: 7, UserAnswer: 1, Correct: 1, IsCorrect: true, Explanation: "yechim"},
			},
			QuestionMessage: &model.MessageRef{ChatID: 42, MessageID: 99},
		},
	}
	require.NoError(t, store.Set(42, want))

	got, err := store.GetOrCreate(42)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Запись переживает перезапуск: новый экземпляр читает те же файлы.
	reopened, err := NewJSONStore(
		filepath.Join(dir, "user_data.json"),
		filepath.Join(dir, "results.json"),
	)
	require.NoError(t, err)
	got, err = reopened.GetOrCreate(42)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestJSONStore_Results(t *testing.T) {
	store, _ := newTestJSONStore(t)

	date := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)
	require.NoError(t, store.AppendResult(42, model.TestResult{Subject: "matem", Score: 7, Total: 10, Date: date}))
	require.NoError(t, store.AppendResult(42, model.TestResult{Subject: "matem", Score: 9, Total: 10, Date: date.Add(time.Hour)}))

	results, err := store.ResultsFor(42)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 7, results[0].Score)
	assert.Equal(t, 9, results[1].Score)
	assert.True(t, results[0].Date.Equal(date))

	other, err := store.ResultsFor(43)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestJSONStore_AllUserIDs(t *testing.T) {
	store, _ := newTestJSONStore(t)
	for _, id := range []int64{1, 2, 3} {
		_, err := store.GetOrCreate(id)
		require.NoError(t, err)
	}
	ids, err := store.AllUserIDs()
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2, 3}, ids)
}
