package onboarding

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ibrokhimov/matembot/internal/database"
	"github.com/ibrokhimov/matembot/internal/domain/content"
	"github.com/ibrokhimov/matembot/internal/domain/model"
)

const testGroupID int64 = -100500

// fakeMembers отвечает на проверку членства заранее заданным результатом.
type fakeMembers struct {
	member bool
	err    error
	calls  int
}

func (f *fakeMembers) IsMember(groupID, userID int64) (bool, error) {
	f.calls++
	return f.member, f.err
}

func loadRegistry(t *testing.T) *content.Registry {
	t.Helper()
	dir := t.TempDir()
	write := func(name string, v any) string {
		data, err := json.Marshal(v)
		require.NoError(t, err)
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, data, 0o644))
		return path
	}
	questions := write("questions.json", map[string][]model.Question{})
	schools := write("schools.json", map[string]map[string]string{
		"schools": {"12": "12-sonli maktab", "24": "24-sonli maktab"},
	})
	courses := write("courses.json", map[string]model.Course{})

	reg, err := content.Load(questions, schools, courses)
	require.NoError(t, err)
	return reg
}

func newTestService(t *testing.T, members *fakeMembers) (*Service, *database.MemoryStore) {
	t.Helper()
	store := database.NewMemoryStore()
	svc := NewService(store, loadRegistry(t), members, testGroupID, zap.NewNop())
	return svc, store
}

func TestStepOf(t *testing.T) {
	assert.Equal(t, StepClass, StepOf(model.UserRecord{}))
	assert.Equal(t, StepSchool, StepOf(model.UserRecord{ClassLevel: "7"}))
	assert.Equal(t, StepPhone, StepOf(model.UserRecord{ClassLevel: "7", School: "x"}))
	assert.Equal(t, StepGroup, StepOf(model.UserRecord{ClassLevel: "7", School: "x", Phone: "+998901234567"}))

	ready := model.UserRecord{ClassLevel: "7", School: "x", Phone: "+998901234567", GroupJoined: true}
	assert.Equal(t, StepReady, StepOf(ready))
	assert.True(t, Ready(ready))
}

func TestEnsureRecord_UpdatesNameFields(t *testing.T) {
	svc, store := newTestService(t, &fakeMembers{})

	rec, err := svc.EnsureRecord(1, "Ali", "Valiyev", "alivali")
	require.NoError(t, err)
	assert.Equal(t, "Ali", rec.FirstName)

	// Повторный /start обновляет имя, но не трогает поля анкеты.
	require.NoError(t, svc.SelectClass(1, "9"))
	rec, err = svc.EnsureRecord(1, "Alisher", "", "alivali")
	require.NoError(t, err)
	assert.Equal(t, "Alisher", rec.FirstName)
	assert.Equal(t, "9", rec.ClassLevel)

	stored, _ := store.GetOrCreate(1)
	assert.Equal(t, "Alisher", stored.FirstName)
}

func TestSelectClass(t *testing.T) {
	svc, store := newTestService(t, &fakeMembers{})

	require.NoError(t, svc.SelectClass(1, "7"))
	rec, _ := store.GetOrCreate(1)
	assert.Equal(t, "7", rec.ClassLevel)

	// Повторный выбор перезаписывает значение.
	require.NoError(t, svc.SelectClass(1, "11"))
	rec, _ = store.GetOrCreate(1)
	assert.Equal(t, "11", rec.ClassLevel)

	require.Error(t, svc.SelectClass(1, "12"))
	require.Error(t, svc.SelectClass(1, ""))
}

func TestSelectSchool(t *testing.T) {
	svc, store := newTestService(t, &fakeMembers{})

	// Школа раньше класса нарушает порядок шагов.
	_, err := svc.SelectSchool(1, "12")
	require.ErrorIs(t, err, ErrOutOfOrder)

	require.NoError(t, svc.SelectClass(1, "9"))
	name, err := svc.SelectSchool(1, "12")
	require.NoError(t, err)
	assert.Equal(t, "12-sonli maktab", name)

	rec, _ := store.GetOrCreate(1)
	assert.Equal(t, "12-sonli maktab", rec.School)
	assert.Equal(t, model.WaitingPhone, rec.WaitingFor)
}

func TestSelectSchool_UnknownKeyFallsBack(t *testing.T) {
	svc, _ := newTestService(t, &fakeMembers{})
	require.NoError(t, svc.SelectClass(1, "9"))

	name, err := svc.SelectSchool(1, "other")
	require.NoError(t, err)
	assert.Equal(t, content.FallbackSchool, name)
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("+998901234567"))
	assert.True(t, ValidPhone("  +998901234567  "))
	assert.False(t, ValidPhone("998901234567"))
	assert.False(t, ValidPhone("+99890"))
	assert.False(t, ValidPhone(""))
}

func TestSubmitPhone(t *testing.T) {
	svc, store := newTestService(t, &fakeMembers{})
	require.NoError(t, svc.SelectClass(1, "9"))
	_, err := svc.SelectSchool(1, "12")
	require.NoError(t, err)

	require.ErrorIs(t, svc.SubmitPhone(1, "90 123 45 67"), ErrInvalidPhone)

	require.NoError(t, svc.SubmitPhone(1, " +998901234567 "))
	rec, _ := store.GetOrCreate(1)
	assert.Equal(t, "+998901234567", rec.Phone)
	assert.Equal(t, model.WaitingNone, rec.WaitingFor)
}

func TestSubmitPhone_BeforeSchool(t *testing.T) {
	svc, _ := newTestService(t, &fakeMembers{})
	require.ErrorIs(t, svc.SubmitPhone(1, "+998901234567"), ErrOutOfOrder)
}

func TestSubmitContact_TrustedAsIs(t *testing.T) {
	svc, store := newTestService(t, &fakeMembers{})
	require.NoError(t, svc.SelectClass(1, "9"))
	_, err := svc.SelectSchool(1, "12")
	require.NoError(t, err)

	// Номер из контакта Telegram принимается без проверки формата.
	require.NoError(t, svc.SubmitContact(1, "998901234567"))
	rec, _ := store.GetOrCreate(1)
	assert.Equal(t, "998901234567", rec.Phone)
}

func completeToGroupStep(t *testing.T, svc *Service) {
	t.Helper()
	require.NoError(t, svc.SelectClass(1, "9"))
	_, err := svc.SelectSchool(1, "12")
	require.NoError(t, err)
	require.NoError(t, svc.SubmitPhone(1, "+998901234567"))
}

func TestConfirmGroup(t *testing.T) {
	members := &fakeMembers{member: true}
	svc, store := newTestService(t, members)
	completeToGroupStep(t, svc)

	ok, err := svc.ConfirmGroup(1)
	require.NoError(t, err)
	assert.True(t, ok)

	rec, _ := store.GetOrCreate(1)
	assert.True(t, rec.GroupJoined)
	assert.True(t, Ready(rec))
}

func TestConfirmGroup_NotMember(t *testing.T) {
	members := &fakeMembers{member: false}
	svc, store := newTestService(t, members)
	completeToGroupStep(t, svc)

	ok, err := svc.ConfirmGroup(1)
	require.NoError(t, err)
	assert.False(t, ok)

	rec, _ := store.GetOrCreate(1)
	assert.False(t, rec.GroupJoined)
}

func TestConfirmGroup_BeforePhone(t *testing.T) {
	svc, _ := newTestService(t, &fakeMembers{member: true})
	_, err := svc.ConfirmGroup(1)
	require.ErrorIs(t, err, ErrOutOfOrder)
}

func TestConfirmGroup_AuthorizationError(t *testing.T) {
	members := &fakeMembers{err: ErrAuthorization}
	svc, store := newTestService(t, members)
	completeToGroupStep(t, svc)

	_, err := svc.ConfirmGroup(1)
	require.ErrorIs(t, err, ErrAuthorization)

	rec, _ := store.GetOrCreate(1)
	assert.False(t, rec.GroupJoined)
}

func TestConfirmGroup_TransientErrorWrapped(t *testing.T) {
	members := &fakeMembers{err: errors.New("telegram: timeout")}
	svc, _ := newTestService(t, members)
	completeToGroupStep(t, svc)

	_, err := svc.ConfirmGroup(1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAuthorization)
}
