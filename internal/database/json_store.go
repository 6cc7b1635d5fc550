package database

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/ibrokhimov/matembot/internal/domain/model"
)

// JSONStore — реализация Store поверх двух JSON-файлов: записи пользователей
// и истории результатов. Каждая мутация перечитывает файл целиком и
// записывает новый снимок через временный файл и os.Rename, чтобы сбой между
// вычислением и записью не оставил файл в полузаписанном состоянии.
type JSONStore struct {
	usersFile   string
	resultsFile string
	mu          sync.Mutex
}

// NewJSONStore создает JSONStore, при необходимости инициализируя файлы
// пустыми объектами.
func NewJSONStore(usersFile, resultsFile string) (*JSONStore, error) {
	for _, f := range []string{usersFile, resultsFile} {
		if err := os.MkdirAll(filepath.Dir(f), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data dir: %w", err)
		}
		if _, err := os.Stat(f); os.IsNotExist(err) {
			if err := writeFileAtomic(f, []byte("{}")); err != nil {
				return nil, fmt.Errorf("failed to init %s: %w", f, err)
			}
		}
	}
	return &JSONStore{usersFile: usersFile, resultsFile: resultsFile}, nil
}

// Ключи сериализуются строками: JSON-объект не допускает числовых ключей.
func loadJSON[V any](filename string) (map[int64]V, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	raw := make(map[string]V)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
		}
	}
	m := make(map[int64]V, len(raw))
	for k, v := range raw {
		id, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q in %s: %w", k, filename, err)
		}
		m[id] = v
	}
	return m, nil
}

func saveJSON[V any](filename string, m map[int64]V) error {
	raw := make(map[string]V, len(m))
	for k, v := range m {
		raw[strconv.FormatInt(k, 10)] = v
	}
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filename, err)
	}
	return writeFileAtomic(filename, data)
}

// writeFileAtomic записывает данные во временный файл в том же каталоге
// и атомарно подменяет целевой файл.
func writeFileAtomic(filename string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("failed to replace %s: %w", filename, err)
	}
	return nil
}

func (j *JSONStore) GetOrCreate(userID int64) (model.UserRecord, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	m, err := loadJSON[model.UserRecord](j.usersFile)
	if err != nil {
		return model.UserRecord{}, err
	}
	rec, ok := m[userID]
	if !ok {
		m[userID] = rec
		if err := saveJSON(j.usersFile, m); err != nil {
			return model.UserRecord{}, err
		}
	}
	return rec, nil
}

func (j *JSONStore) Set(userID int64, rec model.UserRecord) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	m, err := loadJSON[model.UserRecord](j.usersFile)
	if err != nil {
		return err
	}
	m[userID] = rec
	return saveJSON(j.usersFile, m)
}

func (j *JSONStore) AppendResult(userID int64, res model.TestResult) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	m, err := loadJSON[[]model.TestResult](j.resultsFile)
	if err != nil {
		return err
	}
	m[userID] = append(m[userID], res)
	return saveJSON(j.resultsFile, m)
}

func (j *JSONStore) ResultsFor(userID int64) ([]model.TestResult, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	m, err := loadJSON[[]model.TestResult](j.resultsFile)
	if err != nil {
		return nil, err
	}
	return m[userID], nil
}

func (j *JSONStore) AllUserIDs() ([]int64, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	m, err := loadJSON[model.UserRecord](j.usersFile)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	return ids, nil
}
