package model

import "strings"

// Task is an immutable to-do entry. Edits always produce a new Task.
type Task struct {
	name        Name
	priority    Priority
	email       Optional[Email]
	description Description
	done        Done
	tags        TagSet
	reminder    Optional[Reminder]
}

type TaskOption func(*Task)

func WithEmail(e Email) TaskOption {
	return func(t *Task) { t.email = Some(e) }
}

func WithReminder(r Reminder) TaskOption {
	return func(t *Task) { t.reminder = Some(r) }
}

// withOptionals sets email and reminder from already-optional values.
func withOptionals(email Optional[Email], reminder Optional[Reminder]) TaskOption {
	return func(t *Task) {
		t.email = email
		t.reminder = reminder
	}
}

func NewTask(name Name, priority Priority, description Description, done Done, tags TagSet, opts ...TaskOption) Task {
	t := Task{
		name:        name,
		priority:    priority,
		description: description,
		done:        done,
		tags:        NewTagSet(tags.Slice()...),
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// NewPendingTask builds a task that is not done yet.
func NewPendingTask(name Name, priority Priority, description Description, tags TagSet, opts ...TaskOption) Task {
	return NewTask(name, priority, description, DefaultDone(), tags, opts...)
}

// NewTaskWithOptionals is NewTask taking email and reminder as optionals.
func NewTaskWithOptionals(name Name, priority Priority, email Optional[Email], description Description,
	done Done, tags TagSet, reminder Optional[Reminder]) Task {
	return NewTask(name, priority, description, done, tags, withOptionals(email, reminder))
}

func (t Task) Name() Name                   { return t.name }
func (t Task) Priority() Priority           { return t.priority }
func (t Task) Email() Optional[Email]       { return t.email }
func (t Task) Description() Description     { return t.description }
func (t Task) Done() Done                   { return t.done }
func (t Task) Tags() TagSet                 { return t.tags }
func (t Task) Reminder() Optional[Reminder] { return t.reminder }

// IsSameTask is the weak identity used for duplicate detection: name, priority,
// done flag and description. Email, tags and reminder are not part of identity.
func (t Task) IsSameTask(other Task) bool {
	return t.name == other.name &&
		t.priority == other.priority &&
		t.done == other.done &&
		t.description == other.description
}

// Equals compares every field.
func (t Task) Equals(other Task) bool {
	return t.IsSameTask(other) &&
		EqualOptional(t.email, other.email) &&
		t.tags.Equal(other.tags) &&
		EqualOptionalFunc(t.reminder, other.reminder, Reminder.Equal)
}

func (t Task) String() string {
	var b strings.Builder
	b.WriteString(t.name.String())
	b.WriteString(" Priority: ")
	b.WriteString(t.priority.String())
	b.WriteString(" Done: ")
	b.WriteString(t.done.String())
	if e, ok := t.email.Get(); ok {
		b.WriteString(" Email: ")
		b.WriteString(e.String())
	}
	b.WriteString(" Description: ")
	b.WriteString(t.description.String())
	b.WriteString(" Tags: ")
	b.WriteString(t.tags.String())
	if r, ok := t.reminder.Get(); ok {
		b.WriteString(" Reminder: ")
		b.WriteString(r.String())
	}
	return b.String()
}
