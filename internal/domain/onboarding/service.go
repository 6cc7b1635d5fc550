// Package onboarding проводит пользователя по обязательной цепочке шагов
// анкеты: класс → школа → телефон → членство в группе. Пока цепочка не
// пройдена, тестирование недоступно.
package onboarding

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ibrokhimov/matembot/internal/database"
	"github.com/ibrokhimov/matembot/internal/domain/content"
	"github.com/ibrokhimov/matembot/internal/domain/model"
)

// Step — шаг анкеты. Шаги строго упорядочены, каждый открывает следующий.
type Step int

const (
	StepClass Step = iota
	StepSchool
	StepPhone
	StepGroup
	StepReady
)

var (
	// ErrOutOfOrder — попытка выполнить шаг раньше предыдущих.
	ErrOutOfOrder = errors.New("onboarding step out of order")
	// ErrInvalidPhone — телефон не прошел проверку формата.
	ErrInvalidPhone = errors.New("invalid phone format")
	// ErrAuthorization — у бота нет прав проверить членство в группе.
	// Требует вмешательства оператора, автоматически не повторяется.
	ErrAuthorization = errors.New("bot is not authorized to check group membership")
)

// MemberChecker проверяет членство пользователя в группе.
// Реализация обязана возвращать ErrAuthorization (обернутым), когда у бота
// недостаточно прав для проверки.
type MemberChecker interface {
	IsMember(groupID, userID int64) (bool, error)
}

// Классы, доступные для выбора.
var classLevels = []string{"5", "6", "7", "8", "9", "10", "11"}

// Service реализует машину состояний анкеты поверх хранилища записей.
type Service struct {
	store   database.Store
	content *content.Registry
	members MemberChecker
	groupID int64
	log     *zap.Logger
}

// NewService создает сервис анкеты.
func NewService(store database.Store, reg *content.Registry, members MemberChecker, groupID int64, log *zap.Logger) *Service {
	return &Service{store: store, content: reg, members: members, groupID: groupID, log: log}
}

// ClassLevels возвращает допустимые значения класса в порядке отображения.
func ClassLevels() []string {
	return classLevels
}

// StepOf выводит текущий шаг из полей записи.
func StepOf(rec model.UserRecord) Step {
	switch {
	case rec.ClassLevel == "":
		return StepClass
	case rec.School == "":
		return StepSchool
	case rec.Phone == "":
		return StepPhone
	case !rec.GroupJoined:
		return StepGroup
	default:
		return StepReady
	}
}

// Ready сообщает, пройдена ли анкета целиком.
func Ready(rec model.UserRecord) bool {
	return StepOf(rec) == StepReady
}

// EnsureRecord создает запись при первом контакте и обновляет
// информационные поля имени.
func (s *Service) EnsureRecord(userID int64, firstName, lastName, username string) (model.UserRecord, error) {
	rec, err := s.store.GetOrCreate(userID)
	if err != nil {
		return model.UserRecord{}, fmt.Errorf("failed to get user record: %w", err)
	}
	rec.FirstName = firstName
	rec.LastName = lastName
	rec.Username = username
	if err := s.store.Set(userID, rec); err != nil {
		return model.UserRecord{}, fmt.Errorf("failed to save user record: %w", err)
	}
	return rec, nil
}

// SelectClass сохраняет выбранный класс. Повторный выбор перезаписывает
// значение.
func (s *Service) SelectClass(userID int64, class string) error {
	valid := false
	for _, c := range classLevels {
		if c == class {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown class level %q", class)
	}
	rec, err := s.store.GetOrCreate(userID)
	if err != nil {
		return fmt.Errorf("failed to get user record: %w", err)
	}
	rec.ClassLevel = class
	if err := s.store.Set(userID, rec); err != nil {
		return fmt.Errorf("failed to save user record: %w", err)
	}
	return nil
}

// SelectSchool разрешает ключ школы через справочник и сохраняет название.
// Неизвестный ключ (включая "other") получает подпись FallbackSchool.
// Шаг доступен только после выбора класса.
func (s *Service) SelectSchool(userID int64, schoolKey string) (string, error) {
	rec, err := s.store.GetOrCreate(userID)
	if err != nil {
		return "", fmt.Errorf("failed to get user record: %w", err)
	}
	if rec.ClassLevel == "" {
		return "", ErrOutOfOrder
	}
	name := s.content.SchoolName(schoolKey)
	rec.School = name
	// Следующее свободное текстовое сообщение — номер телефона.
	rec.WaitingFor = model.WaitingPhone
	if err := s.store.Set(userID, rec); err != nil {
		return "", fmt.Errorf("failed to save user record: %w", err)
	}
	return name, nil
}

// ValidPhone проверяет формат свободно введенного номера: начинается с "+"
// и содержит не менее 12 символов.
func ValidPhone(raw string) bool {
	raw = strings.TrimSpace(raw)
	return strings.HasPrefix(raw, "+") && len(raw) >= 12
}

// SubmitPhone сохраняет номер из свободного текста. Неверный формат
// возвращает ErrInvalidPhone, обработчик отвечает повторным запросом.
func (s *Service) SubmitPhone(userID int64, raw string) error {
	if !ValidPhone(raw) {
		return ErrInvalidPhone
	}
	return s.setPhone(userID, strings.TrimSpace(raw))
}

// SubmitContact сохраняет номер из структурированного контакта.
// Формат не проверяется: контакту доверяем как есть.
func (s *Service) SubmitContact(userID int64, phone string) error {
	return s.setPhone(userID, phone)
}

func (s *Service) setPhone(userID int64, phone string) error {
	rec, err := s.store.GetOrCreate(userID)
	if err != nil {
		return fmt.Errorf("failed to get user record: %w", err)
	}
	if rec.School == "" {
		return ErrOutOfOrder
	}
	rec.Phone = phone
	rec.WaitingFor = model.WaitingNone
	if err := s.store.Set(userID, rec); err != nil {
		return fmt.Errorf("failed to save user record: %w", err)
	}
	return nil
}

// ConfirmGroup проверяет членство в группе. При подтверждении фиксирует
// GroupJoined и завершает анкету; отказ не меняет запись, обработчик
// повторяет приглашение. Ошибка прав бота возвращается как есть — она
// терминальна и не повторяется автоматически.
func (s *Service) ConfirmGroup(userID int64) (bool, error) {
	rec, err := s.store.GetOrCreate(userID)
	if err != nil {
		return false, fmt.Errorf("failed to get user record: %w", err)
	}
	if rec.Phone == "" {
		return false, ErrOutOfOrder
	}
	member, err := s.members.IsMember(s.groupID, userID)
	if err != nil {
		if errors.Is(err, ErrAuthorization) {
			s.log.Error("group membership check is not authorized",
				zap.Int64("group_id", s.groupID), zap.Error(err))
			return false, err
		}
		return false, fmt.Errorf("failed to check group membership: %w", err)
	}
	if !member {
		return false, nil
	}
	rec.GroupJoined = true
	if err := s.store.Set(userID, rec); err != nil {
		return false, fmt.Errorf("failed to save user record: %w", err)
	}
	return true, nil
}
