// Package quiz управляет жизненным циклом тестовой сессии: выборкой
// вопросов, доставкой, подсчетом очков и итоговой рекомендацией курса.
package quiz

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ibrokhimov/matembot/internal/database"
	"github.com/ibrokhimov/matembot/internal/domain/content"
	"github.com/ibrokhimov/matembot/internal/domain/model"
	"github.com/ibrokhimov/matembot/internal/domain/onboarding"
	"github.com/ibrokhimov/matembot/internal/domain/quota"
	"github.com/ibrokhimov/matembot/internal/messages"
)

var (
	// ErrNotEligible — пользователь не завершил анкету.
	ErrNotEligible = errors.New("user has not finished onboarding")
	// ErrSessionActive — у пользователя уже есть незавершенный тест.
	ErrSessionActive = errors.New("quiz session already active")
	// ErrNoQuestions — по предмету нет ни одного вопроса.
	ErrNoQuestions = errors.New("no questions for subject")
	// ErrInsufficientQuestions — хотя бы один диапазон ID пуст, собрать
	// полный тест невозможно.
	ErrInsufficientQuestions = errors.New("not enough questions to assemble a test")
)

// Messenger — транспортные операции, которые нужны движку теста.
type Messenger interface {
	Send(chatID int64, text string, keyboard [][]model.Button) (model.MessageRef, error)
	Edit(ref model.MessageRef, text string, keyboard [][]model.Button) error
	Delete(ref model.MessageRef) error
}

// Service реализует движок теста. Все методы должны вызываться под
// блокировкой пользователя: каждый из них — read-modify-write его записи.
type Service struct {
	store     database.Store
	content   *content.Registry
	messenger Messenger
	rnd       *rand.Rand
	now       func() time.Time
	log       *zap.Logger
}

// NewService создает движок теста.
func NewService(store database.Store, reg *content.Registry, m Messenger, rnd *rand.Rand, log *zap.Logger) *Service {
	return &Service{
		store:     store,
		content:   reg,
		messenger: m,
		rnd:       rnd,
		now:       time.Now,
		log:       log,
	}
}

// StartSession начинает новую сессию: проверяет анкету, резервирует дневную
// попытку, набирает вопросы и доставляет первый. Резерв попытки сохраняется
// только вместе с созданием сессии, поэтому неудачная выборка попытку не
// тратит.
func (s *Service) StartSession(userID int64, subject string) error {
	rec, err := s.store.GetOrCreate(userID)
	if err != nil {
		return fmt.Errorf("failed to get user record: %w", err)
	}
	if !onboarding.Ready(rec) {
		return ErrNotEligible
	}
	if rec.CurrentTest != nil {
		return ErrSessionActive
	}

	cnt := quota.Counter{Date: rec.LastTestDate, Count: rec.TestCountToday}
	if err := quota.CheckAndReserve(&cnt, s.now()); err != nil {
		return err
	}

	pool := s.content.Questions(subject)
	if len(pool) == 0 {
		return ErrNoQuestions
	}
	selected, ok := sampleStratified(pool, s.rnd, s.log)
	if !ok {
		return ErrInsufficientQuestions
	}

	rec.LastTestDate = cnt.Date
	rec.TestCountToday = cnt.Count
	rec.CurrentTest = &model.ActiveQuizSession{
		Subject:   subject,
		Questions: selected,
		Answers:   make([]model.AnswerRecord, 0, len(selected)),
	}
	if err := s.store.Set(userID, rec); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	s.log.Info("quiz session started",
		zap.Int64("user_id", userID),
		zap.String("subject", subject),
		zap.Int("attempt_today", cnt.Count))

	return s.DeliverCurrent(userID)
}

// DeliverCurrent показывает текущий вопрос сессии. Уже отправленное
// сообщение редактируется на месте, чтобы не засорять чат. Когда вопросы
// закончились, сессия завершается. Любая ошибка доставки фатальна для
// сессии: она снимается без подсчета оставшихся вопросов.
func (s *Service) DeliverCurrent(userID int64) error {
	rec, err := s.store.GetOrCreate(userID)
	if err != nil {
		return fmt.Errorf("failed to get user record: %w", err)
	}
	sess := rec.CurrentTest
	if sess == nil {
		return nil
	}
	if sess.CurrentQuestion >= len(sess.Questions) {
		return s.finishSession(userID, rec)
	}

	q := sess.Questions[sess.CurrentQuestion]
	text := fmt.Sprintf(messages.QuestionFmt, sess.CurrentQuestion+1, len(sess.Questions), q.Text)
	keyboard := make([][]model.Button, 0, len(q.Options))
	for i, opt := range q.Options {
		keyboard = append(keyboard, []model.Button{{
			Text: opt,
			Data: fmt.Sprintf("%s%d", model.AnswerPrefix, i),
		}})
	}

	if sess.QuestionMessage != nil {
		err = s.messenger.Edit(*sess.QuestionMessage, text, keyboard)
	} else {
		var ref model.MessageRef
		ref, err = s.messenger.Send(userID, text, keyboard)
		if err == nil {
			sess.QuestionMessage = &ref
			if serr := s.store.Set(userID, rec); serr != nil {
				return fmt.Errorf("failed to save question message ref: %w", serr)
			}
		}
	}
	if err != nil {
		return s.abandonSession(userID, rec, err)
	}
	return nil
}

// abandonSession снимает сессию после ошибки доставки и уведомляет
// пользователя. Возобновление не предусмотрено.
func (s *Service) abandonSession(userID int64, rec model.UserRecord, cause error) error {
	s.log.Error("question delivery failed, abandoning session",
		zap.Int64("user_id", userID), zap.Error(cause))
	rec.CurrentTest = nil
	if err := s.store.Set(userID, rec); err != nil {
		return fmt.Errorf("failed to drop session: %w", err)
	}
	if _, err := s.messenger.Send(userID, messages.TestDeliveryFailed, nil); err != nil {
		s.log.Warn("failed to notify user about abandoned session",
			zap.Int64("user_id", userID), zap.Error(err))
	}
	return fmt.Errorf("failed to deliver question: %w", cause)
}

// RecordAnswer применяет ответ на текущий вопрос и показывает следующий.
// Без активной сессии ответ молча игнорируется: запоздавшие нажатия после
// завершения теста ничего не меняют.
func (s *Service) RecordAnswer(userID int64, option int) error {
	rec, err := s.store.GetOrCreate(userID)
	if err != nil {
		return fmt.Errorf("failed to get user record: %w", err)
	}
	sess := rec.CurrentTest
	if sess == nil {
		return nil
	}
	if sess.CurrentQuestion >= len(sess.Questions) {
		return nil
	}
	q := sess.Questions[sess.CurrentQuestion]
	if option < 0 || option >= len(q.Options) {
		return nil
	}

	isCorrect := option == q.Correct
	if isCorrect {
		sess.Score++
	}
	explanation := q.Explanation
	if explanation == "" {
		explanation = messages.NoExplanation
	}
	sess.Answers = append(sess.Answers, model.AnswerRecord{
		QuestionID:  q.ID,
		UserAnswer:  option,
		Correct:     q.Correct,
		IsCorrect:   isCorrect,
		Explanation: explanation,
	})
	sess.CurrentQuestion++
	if err := s.store.Set(userID, rec); err != nil {
		return fmt.Errorf("failed to save answer: %w", err)
	}
	return s.DeliverCurrent(userID)
}

// finishSession подводит итог: фиксирует результат в истории, строит сводку
// с разборами неправильных ответов и рекомендацией курса, снимает сессию.
// Сессия снимается безусловно, даже если итоговое сообщение не доставилось.
func (s *Service) finishSession(userID int64, rec model.UserRecord) error {
	sess := rec.CurrentTest
	score, total := sess.Score, len(sess.Questions)

	percentage := 0.0
	if total > 0 {
		percentage = float64(score) / float64(total) * 100
	}
	level := model.LevelLow
	switch {
	case percentage >= 80:
		level = model.LevelHigh
	case percentage >= 50:
		level = model.LevelMid
	}

	result := model.TestResult{
		Subject: sess.Subject,
		Score:   score,
		Total:   total,
		Date:    s.now(),
	}
	if err := s.store.AppendResult(userID, result); err != nil {
		return fmt.Errorf("failed to append result: %w", err)
	}

	summary := s.buildSummary(sess, score, total, percentage, level)
	questionMsg := sess.QuestionMessage

	rec.CurrentTest = nil
	if err := s.store.Set(userID, rec); err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}

	s.log.Info("quiz session finished",
		zap.Int64("user_id", userID),
		zap.String("subject", sess.Subject),
		zap.Int("score", score),
		zap.Int("total", total),
		zap.String("level", level))

	if questionMsg != nil {
		if err := s.messenger.Delete(*questionMsg); err != nil {
			s.log.Warn("failed to delete question message",
				zap.Int64("user_id", userID), zap.Error(err))
		}
	}
	if _, err := s.messenger.Send(userID, summary, messages.MainMenuKeyboard()); err != nil {
		s.log.Error("failed to deliver test summary",
			zap.Int64("user_id", userID), zap.Error(err))
	}
	return nil
}

// buildSummary собирает итоговое сообщение: счет, разборы неправильных
// ответов в исходном порядке вопросов и рекомендацию курса по уровню.
func (s *Service) buildSummary(sess *model.ActiveQuizSession, score, total int, percentage float64, level string) string {
	var b strings.Builder
	fmt.Fprintf(&b, messages.ResultHeaderFmt, score, total, percentage, capitalize(level))

	wrote := false
	for i, ans := range sess.Answers {
		if ans.IsCorrect {
			continue
		}
		if !wrote {
			b.WriteString(messages.WrongAnswersHeader)
			wrote = true
		}
		q := sess.Questions[i]
		fmt.Fprintf(&b, messages.WrongAnswerFmt, q.Text, q.Options[q.Correct], ans.Explanation)
	}

	courseName := messages.UnknownCourse
	var lv model.CourseLevel
	if course, ok := s.content.Course(sess.Subject); ok {
		courseName = course.Name
		lv = course.Levels[level]
	}
	fmt.Fprintf(&b, messages.RecommendationFmt,
		courseName,
		orNotProvided(lv.Time),
		orNotProvided(lv.Teacher),
		orNotProvided(lv.Location),
		orNotProvided(lv.Price),
		orNotProvided(lv.Description),
	)
	return b.String()
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
