package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/taskbook/internal/command"
	"github.com/BuzzLyutic/taskbook/internal/model"
	"github.com/BuzzLyutic/taskbook/internal/parser"
	"github.com/BuzzLyutic/taskbook/internal/repo"
)

// TaskService runs commands one at a time against the task list it owns and
// saves the result after every change.
type TaskService struct {
	mu      sync.Mutex
	model   *model.Manager
	storage repo.Storage
	logger  *zap.Logger
}

// NewTaskService loads the saved list and statistics. Unreadable data is
// logged and replaced with an empty list; storage I/O errors are returned.
func NewTaskService(ctx context.Context, storage repo.Storage, logger *zap.Logger) (*TaskService, error) {
	s := &TaskService{
		model:   model.NewManager(),
		storage: storage,
		logger:  logger,
	}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	s.model.Subscribe(func(e model.Event) {
		s.logger.Debug("task list changed", zap.String("event", string(e.Kind)))
	})
	return s, nil
}

func (s *TaskService) load(ctx context.Context) error {
	tasks, found, err := s.storage.ReadTaskList(ctx)
	switch {
	case errors.Is(err, repo.ErrDataFormat):
		s.logger.Warn("task data is not in the correct format, starting with an empty task list", zap.Error(err))
		tasks = nil
	case err != nil:
		return fmt.Errorf("read task list: %w", err)
	case !found:
		s.logger.Info("no saved task list found, starting with an empty task list")
	}

	stats, _, err := s.storage.ReadStatistics(ctx)
	switch {
	case errors.Is(err, repo.ErrDataFormat):
		s.logger.Warn("statistics are not in the correct format, resetting them", zap.Error(err))
		stats = model.Statistics{}
	case err != nil:
		return fmt.Errorf("read statistics: %w", err)
	}

	if err := s.model.Load(tasks, stats); err != nil {
		s.logger.Warn("saved task list contains duplicates, starting with an empty task list", zap.Error(err))
		return s.model.Load(nil, stats)
	}
	return nil
}

// Outcome is a command result plus the filtered view right after the command,
// taken under the same lock.
type Outcome struct {
	command.Result
	Tasks []model.Task
}

// Execute parses input and runs it. Parse and command errors are returned
// unchanged so callers can match them with errors.Is.
func (s *TaskService) Execute(ctx context.Context, input string) (Outcome, error) {
	cmd, err := parser.Parse(input)
	if err != nil {
		s.logger.Debug("rejected input", zap.String("input", input), zap.Error(err))
		return Outcome{}, err
	}
	return s.Run(ctx, cmd)
}

// Run executes an already-built command.
func (s *TaskService) Run(ctx context.Context, cmd command.Command) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := cmd.Execute(s.model)
	if err != nil {
		s.logger.Info("command failed", zap.String("command", fmt.Sprintf("%T", cmd)), zap.Error(err))
		return Outcome{}, err
	}

	if command.Mutates(cmd) {
		if err := s.save(ctx); err != nil {
			s.logger.Error("failed to save task list", zap.Error(err))
			return Outcome{}, err
		}
	}
	s.logger.Info("command executed", zap.String("command", fmt.Sprintf("%T", cmd)))
	return Outcome{Result: res, Tasks: s.model.FilteredTaskList()}, nil
}

func (s *TaskService) save(ctx context.Context) error {
	if err := s.storage.SaveTaskList(ctx, s.model.Tasks()); err != nil {
		return fmt.Errorf("save task list: %w", err)
	}
	if err := s.storage.SaveStatistics(ctx, s.model.Statistics()); err != nil {
		return fmt.Errorf("save statistics: %w", err)
	}
	return nil
}

// FilteredTasks is the list the user currently sees.
func (s *TaskService) FilteredTasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.FilteredTaskList()
}

func (s *TaskService) Statistics() model.Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.Statistics()
}
