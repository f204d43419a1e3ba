package repo

import (
	"context"
	"errors"

	"github.com/BuzzLyutic/taskbook/internal/model"
)

var (
	ErrDataFormat = errors.New("data format error")
	ErrIO         = errors.New("storage i/o error")
)

// TaskListStorage хранит весь список задач целиком.
// found is false when nothing has been saved yet.
type TaskListStorage interface {
	ReadTaskList(ctx context.Context) (tasks []model.Task, found bool, err error)
	SaveTaskList(ctx context.Context, tasks []model.Task) error
}

type StatisticsStorage interface {
	ReadStatistics(ctx context.Context) (stats model.Statistics, found bool, err error)
	SaveStatistics(ctx context.Context, stats model.Statistics) error
}

type Storage interface {
	TaskListStorage
	StatisticsStorage
}
