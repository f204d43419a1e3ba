package command

import (
	"github.com/BuzzLyutic/taskbook/internal/model"
)

const (
	AddCommandWord = "add"
	AddUsage       = AddCommandWord + ": Adds a task to the task list. " +
		"Parameters: n/NAME p/PRIORITY d/DESCRIPTION [e/EMAIL] [s/DONE] [r/REMINDER] [t/TAG]...\n" +
		"Example: " + AddCommandWord + " n/Math Homework p/1 d/Chapter 5, Pages 1 - 3 t/school"
	AddSuccess = "New task added: %s"
)

type AddCommand struct {
	toAdd model.Task
}

func NewAddCommand(t model.Task) AddCommand {
	return AddCommand{toAdd: t}
}

func (c AddCommand) Execute(m model.Model) (Result, error) {
	if m.HasTask(c.toAdd) {
		return Result{}, model.ErrDuplicateTask
	}
	if err := m.AddTask(c.toAdd); err != nil {
		return Result{}, err
	}
	return NewResult(AddSuccess, c.toAdd), nil
}

func (c AddCommand) Task() model.Task { return c.toAdd }

func (c AddCommand) Equal(other AddCommand) bool {
	return c.toAdd.Equals(other.toAdd)
}
