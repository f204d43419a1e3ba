// Package testutil builds tasks for tests. Invalid input panics.
package testutil

import (
	"github.com/BuzzLyutic/taskbook/internal/model"
)

const (
	DefaultName        = "Default homework"
	DefaultPriority    = "1"
	DefaultDescription = "Default Pages 1 and 2"
	DefaultDone        = "N"
)

type TaskBuilder struct {
	name        string
	priority    string
	email       string
	description string
	done        string
	tags        []string
	reminder    string
}

func NewTaskBuilder() *TaskBuilder {
	return &TaskBuilder{
		name:        DefaultName,
		priority:    DefaultPriority,
		description: DefaultDescription,
		done:        DefaultDone,
	}
}

// From starts from an existing task.
func From(t model.Task) *TaskBuilder {
	b := &TaskBuilder{
		name:        t.Name().Value(),
		priority:    t.Priority().Value(),
		description: t.Description().Value(),
		done:        t.Done().Value(),
		tags:        t.Tags().Names(),
	}
	if e, ok := t.Email().Get(); ok {
		b.email = e.Value()
	}
	if r, ok := t.Reminder().Get(); ok {
		b.reminder = r.String()
	}
	return b
}

func (b *TaskBuilder) WithName(v string) *TaskBuilder        { b.name = v; return b }
func (b *TaskBuilder) WithPriority(v string) *TaskBuilder    { b.priority = v; return b }
func (b *TaskBuilder) WithEmail(v string) *TaskBuilder       { b.email = v; return b }
func (b *TaskBuilder) WithDescription(v string) *TaskBuilder { b.description = v; return b }
func (b *TaskBuilder) WithDone(v string) *TaskBuilder        { b.done = v; return b }
func (b *TaskBuilder) WithReminder(v string) *TaskBuilder    { b.reminder = v; return b }

func (b *TaskBuilder) WithTags(tags ...string) *TaskBuilder {
	b.tags = append([]string(nil), tags...)
	return b
}

func (b *TaskBuilder) Build() model.Task {
	var opts []model.TaskOption
	if b.email != "" {
		opts = append(opts, model.WithEmail(must(model.NewEmail(b.email))))
	}
	if b.reminder != "" {
		opts = append(opts, model.WithReminder(must(model.NewReminder(b.reminder))))
	}
	return model.NewTask(
		must(model.NewName(b.name)),
		must(model.NewPriority(b.priority)),
		must(model.NewDescription(b.description)),
		must(model.NewDone(b.done)),
		must(model.ParseTagSet(b.tags...)),
		opts...,
	)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Typical tasks shared by tests.
func MathHomework() model.Task {
	return NewTaskBuilder().WithName("Math Homework").WithPriority("1").WithDescription("Ch5").Build()
}

func EssayDraft() model.Task {
	return NewTaskBuilder().WithName("Essay Draft").WithPriority("3").
		WithDescription("Intro and outline").WithEmail("tutor@example.com").WithTags("school").Build()
}

func Groceries() model.Task {
	return NewTaskBuilder().WithName("Buy groceries").WithPriority("5").
		WithDescription("Milk, eggs").WithTags("home", "errands").WithReminder("2026-10-20 18:00").Build()
}

func TypicalTasks() []model.Task {
	return []model.Task{MathHomework(), EssayDraft(), Groceries()}
}

// TypicalManager returns a manager loaded with TypicalTasks.
func TypicalManager() *model.Manager {
	m := model.NewManager()
	if err := m.Load(TypicalTasks(), model.Statistics{}); err != nil {
		panic(err)
	}
	return m
}
