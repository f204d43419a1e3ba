package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BuzzLyutic/taskbook/internal/model"
)

const (
	TaskFileName       = "tasks.json"
	StatisticsFileName = "stats.json"
)

type taskFile struct {
	Tasks []storedTask `json:"tasks"`
}

// JSONStore keeps the task list and statistics as two JSON files in one directory.
type JSONStore struct {
	taskPath  string
	statsPath string
}

func NewJSONStore(dataDir string) *JSONStore {
	return &JSONStore{
		taskPath:  filepath.Join(dataDir, TaskFileName),
		statsPath: filepath.Join(dataDir, StatisticsFileName),
	}
}

func (s *JSONStore) TaskPath() string { return s.taskPath }

func (s *JSONStore) ReadTaskList(ctx context.Context) ([]model.Task, bool, error) {
	var f taskFile
	found, err := readJSON(s.taskPath, &f)
	if err != nil || !found {
		return nil, found, err
	}
	tasks, err := toModelList(f.Tasks)
	if err != nil {
		return nil, true, fmt.Errorf("%s: %w", s.taskPath, err)
	}
	return tasks, true, nil
}

func (s *JSONStore) SaveTaskList(ctx context.Context, tasks []model.Task) error {
	return writeJSON(s.taskPath, taskFile{Tasks: fromModelList(tasks)})
}

func (s *JSONStore) ReadStatistics(ctx context.Context) (model.Statistics, bool, error) {
	var stats model.Statistics
	found, err := readJSON(s.statsPath, &stats)
	if err != nil || !found {
		return model.Statistics{}, found, err
	}
	if err := checkStatistics(stats); err != nil {
		return model.Statistics{}, true, fmt.Errorf("%s: %w", s.statsPath, err)
	}
	return stats, true, nil
}

func (s *JSONStore) SaveStatistics(ctx context.Context, stats model.Statistics) error {
	return writeJSON(s.statsPath, stats)
}

// readJSON reports found=false for a missing file.
func readJSON(path string, v any) (bool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return true, fmt.Errorf("%w: %s: %w", ErrDataFormat, path, err)
	}
	return true, nil
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	// Пишем во временный файл и переименовываем, чтобы не оставить файл наполовину записанным
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
