package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ibrokhimov/matembot/internal/domain/model"
)

// PostgresStore — реализация Store поверх PostgreSQL. Запись пользователя
// хранится целиком в JSONB-колонке, результаты — построчно в отдельной
// таблице. Контракт тот же, что у JSONStore.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore подключается к базе, проверяет соединение и создает
// недостающие таблицы.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	const op = "database.NewPostgresStore"

	connConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse database config: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(ctx, connConfig)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create database pool: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		return nil, fmt.Errorf("%s: failed to ping database: %w", op, err)
	}

	s := &PostgresStore{db: db}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS user_records (
			telegram_id BIGINT PRIMARY KEY,
			record      JSONB NOT NULL,
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS test_results (
			id          BIGSERIAL PRIMARY KEY,
			telegram_id BIGINT NOT NULL,
			subject     TEXT NOT NULL,
			score       INT NOT NULL,
			total       INT NOT NULL,
			passed_at   TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS test_results_telegram_id_idx
			ON test_results (telegram_id, passed_at);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// Close освобождает пул соединений.
func (s *PostgresStore) Close() {
	s.db.Close()
}

func (s *PostgresStore) GetOrCreate(userID int64) (model.UserRecord, error) {
	ctx := context.Background()
	var raw []byte
	err := s.db.QueryRow(ctx, "SELECT record FROM user_records WHERE telegram_id=$1", userID).Scan(&raw)
	if err == pgx.ErrNoRows {
		rec := model.UserRecord{}
		if err := s.Set(userID, rec); err != nil {
			return model.UserRecord{}, err
		}
		return rec, nil
	}
	if err != nil {
		return model.UserRecord{}, fmt.Errorf("failed to get user record: %w", err)
	}
	var rec model.UserRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return model.UserRecord{}, fmt.Errorf("failed to decode user record: %w", err)
	}
	return rec, nil
}

func (s *PostgresStore) Set(userID int64, rec model.UserRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode user record: %w", err)
	}
	_, err = s.db.Exec(context.Background(), `
		INSERT INTO user_records (telegram_id, record, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (telegram_id)
		DO UPDATE SET record = EXCLUDED.record, updated_at = now()
	`, userID, raw)
	if err != nil {
		return fmt.Errorf("failed to set user record: %w", err)
	}
	return nil
}

func (s *PostgresStore) AppendResult(userID int64, res model.TestResult) error {
	_, err := s.db.Exec(context.Background(),
		"INSERT INTO test_results (telegram_id, subject, score, total, passed_at) VALUES ($1, $2, $3, $4, $5)",
		userID, res.Subject, res.Score, res.Total, res.Date)
	if err != nil {
		return fmt.Errorf("failed to append result: %w", err)
	}
	return nil
}

func (s *PostgresStore) ResultsFor(userID int64) ([]model.TestResult, error) {
	rows, err := s.db.Query(context.Background(),
		"SELECT subject, score, total, passed_at FROM test_results WHERE telegram_id=$1 ORDER BY passed_at", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var out []model.TestResult
	for rows.Next() {
		var r model.TestResult
		if err := rows.Scan(&r.Subject, &r.Score, &r.Total, &r.Date); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read results: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) AllUserIDs() ([]int64, error) {
	rows, err := s.db.Query(context.Background(), "SELECT telegram_id FROM user_records")
	if err != nil {
		return nil, fmt.Errorf("failed to query user ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user ids: %w", err)
	}
	return ids, nil
}
