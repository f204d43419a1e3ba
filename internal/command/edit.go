package command

import (
	"github.com/BuzzLyutic/taskbook/internal/model"
)

const (
	EditCommandWord = "edit"
	EditUsage       = EditCommandWord + ": Edits the details of the task identified " +
		"by the index number used in the displayed task list. " +
		"Existing values will be overwritten by the input values. " +
		"A reminder not given in the edit is removed.\n" +
		"Parameters: INDEX (must be a positive integer) " +
		"[n/NAME] [p/PRIORITY] [d/DESCRIPTION] [e/EMAIL] [s/DONE] [r/REMINDER] [t/TAG]...\n" +
		"Example: " + EditCommandWord + " 1 p/2 s/Y"
	EditSuccess = "Edited Task: %s"
)

type EditCommand struct {
	index      Index
	descriptor EditTaskDescriptor
}

// NewEditCommand fails with ErrNoFieldEdited if d sets nothing.
func NewEditCommand(index Index, d EditTaskDescriptor) (EditCommand, error) {
	if !d.IsAnyFieldEdited() {
		return EditCommand{}, ErrNoFieldEdited
	}
	return EditCommand{index: index, descriptor: d.Clone()}, nil
}

func (c EditCommand) Execute(m model.Model) (Result, error) {
	if !c.descriptor.IsAnyFieldEdited() {
		return Result{}, ErrNoFieldEdited
	}

	toEdit, err := resolve(m, c.index)
	if err != nil {
		return Result{}, err
	}

	edited := Merge(toEdit, c.descriptor)
	if !toEdit.IsSameTask(edited) && m.HasTask(edited) {
		return Result{}, model.ErrDuplicateTask
	}

	if err := m.SetTask(toEdit, edited); err != nil {
		return Result{}, err
	}
	m.UpdateFilteredTaskList(model.ShowAll)
	return NewResult(EditSuccess, edited), nil
}

func (c EditCommand) Equal(other EditCommand) bool {
	return c.index == other.index && c.descriptor.Equal(other.descriptor)
}

// Merge builds the replacement for original. Unset fields keep the original
// value, except the reminder, which is taken from d as is: a descriptor
// without a reminder yields a task without one.
func Merge(original model.Task, d EditTaskDescriptor) model.Task {
	return model.NewTaskWithOptionals(
		d.Name.OrElse(original.Name()),
		d.Priority.OrElse(original.Priority()),
		orElseOptional(d.Email, original.Email()),
		d.Description.OrElse(original.Description()),
		d.Done.OrElse(original.Done()),
		d.Tags.OrElse(original.Tags()),
		d.Reminder,
	)
}

func orElseOptional[T any](patch model.Optional[T], fallback model.Optional[T]) model.Optional[T] {
	if patch.IsPresent() {
		return patch
	}
	return fallback
}

// EditTaskDescriptor is a sparse set of new field values.
type EditTaskDescriptor struct {
	Name        model.Optional[model.Name]
	Priority    model.Optional[model.Priority]
	Email       model.Optional[model.Email]
	Description model.Optional[model.Description]
	Done        model.Optional[model.Done]
	Tags        model.Optional[model.TagSet]
	Reminder    model.Optional[model.Reminder]
}

func (d EditTaskDescriptor) IsAnyFieldEdited() bool {
	return d.Name.IsPresent() ||
		d.Priority.IsPresent() ||
		d.Email.IsPresent() ||
		d.Description.IsPresent() ||
		d.Done.IsPresent() ||
		d.Tags.IsPresent() ||
		d.Reminder.IsPresent()
}

// Clone copies d, including its tag set.
func (d EditTaskDescriptor) Clone() EditTaskDescriptor {
	c := d
	if tags, ok := d.Tags.Get(); ok {
		c.Tags = model.Some(model.NewTagSet(tags.Slice()...))
	}
	return c
}

func (d EditTaskDescriptor) Equal(other EditTaskDescriptor) bool {
	return model.EqualOptional(d.Name, other.Name) &&
		model.EqualOptional(d.Priority, other.Priority) &&
		model.EqualOptional(d.Email, other.Email) &&
		model.EqualOptional(d.Description, other.Description) &&
		model.EqualOptional(d.Done, other.Done) &&
		model.EqualOptionalFunc(d.Tags, other.Tags, model.TagSet.Equal) &&
		model.EqualOptionalFunc(d.Reminder, other.Reminder, model.Reminder.Equal)
}
