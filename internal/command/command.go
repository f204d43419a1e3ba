package command

import (
	"errors"
	"fmt"

	"github.com/BuzzLyutic/taskbook/internal/model"
)

var (
	ErrInvalidIndex  = errors.New("The task index provided is invalid")
	ErrNoFieldEdited = errors.New("At least one field to edit must be provided.")
)

// Command is one unit of work against the model.
type Command interface {
	Execute(m model.Model) (Result, error)
}

// Result is what a command reports back to the user.
type Result struct {
	Feedback string `json:"feedback"`
	ShowHelp bool   `json:"show_help"`
	Exit     bool   `json:"exit"`
}

func NewResult(format string, args ...any) Result {
	return Result{Feedback: fmt.Sprintf(format, args...)}
}

// Index is a 1-based position in the displayed list.
type Index struct {
	zeroBased int
}

func IndexFromOneBased(n int) (Index, error) {
	if n < 1 {
		return Index{}, ErrInvalidIndex
	}
	return Index{zeroBased: n - 1}, nil
}

func IndexFromZeroBased(n int) (Index, error) {
	if n < 0 {
		return Index{}, ErrInvalidIndex
	}
	return Index{zeroBased: n}, nil
}

func (i Index) ZeroBased() int { return i.zeroBased }
func (i Index) OneBased() int  { return i.zeroBased + 1 }

// resolve picks the task at i in the currently filtered view.
func resolve(m model.Model, i Index) (model.Task, error) {
	shown := m.FilteredTaskList()
	if i.zeroBased >= len(shown) {
		return model.Task{}, ErrInvalidIndex
	}
	return shown[i.zeroBased], nil
}
