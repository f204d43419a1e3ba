package command

import (
	"strings"

	"github.com/BuzzLyutic/taskbook/internal/model"
)

const (
	DeleteCommandWord = "delete"
	DeleteUsage       = DeleteCommandWord + ": Deletes the task identified by the index number used in the displayed task list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + DeleteCommandWord + " 1"
	DeleteSuccess = "Deleted Task: %s"

	ListCommandWord = "list"
	ListUsage       = ListCommandWord + ": Lists all tasks."
	ListSuccess     = "Listed all tasks"

	FindCommandWord = "find"
	FindUsage       = FindCommandWord + ": Finds all tasks whose names contain any of " +
		"the specified keywords (case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + FindCommandWord + " math essay"
	FindSuccess = "%d tasks listed!"

	ClearCommandWord = "clear"
	ClearUsage       = ClearCommandWord + ": Removes every task."
	ClearSuccess     = "Task list has been cleared!"

	StatsCommandWord = "stats"
	StatsUsage       = StatsCommandWord + ": Shows how many tasks were added, completed and deleted."

	HelpCommandWord = "help"
	HelpUsage       = HelpCommandWord + ": Shows program usage instructions."

	ExitCommandWord = "exit"
	ExitUsage       = ExitCommandWord + ": Exits the program."
	ExitFeedback    = "Exiting task list as requested ..."
)

type DeleteCommand struct {
	index Index
}

func NewDeleteCommand(i Index) DeleteCommand {
	return DeleteCommand{index: i}
}

func (c DeleteCommand) Execute(m model.Model) (Result, error) {
	t, err := resolve(m, c.index)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeleteTask(t); err != nil {
		return Result{}, err
	}
	return NewResult(DeleteSuccess, t), nil
}

type ListCommand struct{}

func (ListCommand) Execute(m model.Model) (Result, error) {
	m.UpdateFilteredTaskList(model.ShowAll)
	return NewResult(ListSuccess), nil
}

type FindCommand struct {
	predicate model.NameContainsKeywords
}

func NewFindCommand(p model.NameContainsKeywords) FindCommand {
	return FindCommand{predicate: p}
}

func (c FindCommand) Execute(m model.Model) (Result, error) {
	m.UpdateFilteredTaskList(c.predicate)
	return NewResult(FindSuccess, len(m.FilteredTaskList())), nil
}

func (c FindCommand) Equal(other FindCommand) bool {
	return c.predicate.Equal(other.predicate)
}

type ClearCommand struct{}

func (ClearCommand) Execute(m model.Model) (Result, error) {
	if err := m.SetTasks(nil); err != nil {
		return Result{}, err
	}
	m.UpdateFilteredTaskList(model.ShowAll)
	return NewResult(ClearSuccess), nil
}

type StatsCommand struct{}

func (StatsCommand) Execute(m model.Model) (Result, error) {
	return Result{Feedback: m.Statistics().String()}, nil
}

type HelpCommand struct{}

func (HelpCommand) Execute(model.Model) (Result, error) {
	return Result{Feedback: Usage(), ShowHelp: true}, nil
}

type ExitCommand struct{}

func (ExitCommand) Execute(model.Model) (Result, error) {
	return Result{Feedback: ExitFeedback, Exit: true}, nil
}

// Usage lists the usage text of every command.
func Usage() string {
	return strings.Join([]string{
		AddUsage, EditUsage, DeleteUsage, ListUsage, FindUsage,
		ClearUsage, StatsUsage, HelpUsage, ExitUsage,
	}, "\n\n")
}

// Mutates reports whether running c may change what has to be persisted.
func Mutates(c Command) bool {
	switch c.(type) {
	case AddCommand, EditCommand, DeleteCommand, ClearCommand:
		return true
	}
	return false
}
