package quiz

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/ibrokhimov/matembot/internal/domain/model"
)

// Параметры стратифицированной выборки: вопросы с ID 1..100 разбиты на
// десять диапазонов по десять ID, из каждого берется один случайный вопрос.
// Диапазоны гарантируют покрытие тем от простых к сложным.
const (
	strataWidth = 10
	strataCount = 10
)

// sampleStratified выбирает по одному вопросу из каждого диапазона
// (i, i+10]. Пустой диапазон логируется и пропускается. Если собрано меньше
// strataCount вопросов, выборка считается неудавшейся: это дефект наполнения
// базы, а не ошибка пользователя.
func sampleStratified(pool []model.Question, rnd *rand.Rand, log *zap.Logger) ([]model.Question, bool) {
	selected := make([]model.Question, 0, strataCount)
	for i := 0; i < strataWidth*strataCount; i += strataWidth {
		var candidates []model.Question
		for _, q := range pool {
			if q.ID > i && q.ID <= i+strataWidth {
				candidates = append(candidates, q)
			}
		}
		if len(candidates) == 0 {
			log.Warn("question stratum is empty",
				zap.Int("from", i+1), zap.Int("to", i+strataWidth))
			continue
		}
		selected = append(selected, candidates[rnd.Intn(len(candidates))])
	}
	return selected, len(selected) == strataCount
}
