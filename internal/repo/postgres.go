package repo

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/taskbook/internal/model"
)

//go:embed migrations/*.up.sql
var migrations embed.FS

// PostgresStore keeps the list in the tasks table, ordered by position.
type PostgresStore struct { // Хранилище поверх пула соединений
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate creates the tables if they do not exist yet.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	schema, err := migrations.ReadFile("migrations/001_create_tasks.up.sql")
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, string(schema))
	return s.mapError(err)
}

func (s *PostgresStore) ReadTaskList(ctx context.Context) ([]model.Task, bool, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT name, priority, email, description, done, tags, reminder
		FROM tasks
		ORDER BY position
	`)
	if err != nil {
		return nil, false, s.mapError(err)
	}
	defer rows.Close()

	var stored []storedTask
	for rows.Next() {
		var (
			st                          storedTask
			name, priority, description string
			done                        string
		)
		if err := rows.Scan(&name, &priority, &st.Email, &description, &done, &st.Tags, &st.Reminder); err != nil {
			return nil, false, s.mapError(err)
		}
		st.Name, st.Priority, st.Description, st.Done = &name, &priority, &description, &done
		stored = append(stored, st)
	}
	if err := rows.Err(); err != nil {
		return nil, false, s.mapError(err)
	}

	tasks, err := toModelList(stored)
	if err != nil {
		return nil, true, err
	}
	return tasks, true, nil
}

// SaveTaskList replaces every row in one transaction.
func (s *PostgresStore) SaveTaskList(ctx context.Context, tasks []model.Task) error {
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "DELETE FROM tasks"); err != nil {
			return err
		}
		batch := &pgx.Batch{}
		for i, st := range fromModelList(tasks) {
			batch.Queue(`
				INSERT INTO tasks (position, name, priority, email, description, done, tags, reminder)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			`, i, *st.Name, *st.Priority, st.Email, *st.Description, *st.Done, st.Tags, st.Reminder)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	return s.mapError(err)
}

func (s *PostgresStore) ReadStatistics(ctx context.Context) (model.Statistics, bool, error) {
	var stats model.Statistics
	err := s.pool.QueryRow(ctx, `
		SELECT tasks_added, tasks_completed, tasks_deleted
		FROM statistics
		WHERE id = 1
	`).Scan(&stats.TasksAdded, &stats.TasksCompleted, &stats.TasksDeleted)

	if errors.Is(err, pgx.ErrNoRows) {
		return stats, false, nil
	}
	if err != nil {
		return stats, false, s.mapError(err)
	}
	if err := checkStatistics(stats); err != nil {
		return model.Statistics{}, true, err
	}
	return stats, true, nil
}

func (s *PostgresStore) SaveStatistics(ctx context.Context, stats model.Statistics) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO statistics (id, tasks_added, tasks_completed, tasks_deleted)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET tasks_added = EXCLUDED.tasks_added,
		    tasks_completed = EXCLUDED.tasks_completed,
		    tasks_deleted = EXCLUDED.tasks_deleted,
		    updated_at = now()
	`, stats.TasksAdded, stats.TasksCompleted, stats.TasksDeleted)
	return s.mapError(err)
}

// mapError: ошибки данных (нарушение ограничений, неверный тип) -> ErrDataFormat, остальное -> ErrIO
func (s *PostgresStore) mapError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code[:2] {
		case "22", "23":
			return fmt.Errorf("%w: %w", ErrDataFormat, err)
		}
	}
	return fmt.Errorf("%w: %w", ErrIO, err)
}
