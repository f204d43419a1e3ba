package repo

import (
	"fmt"

	"github.com/BuzzLyutic/taskbook/internal/model"
)

const missingFieldFormat = "Task's %s field is missing!"

// storedTask is the persisted shape of a task; every field is kept as the raw
// string the value objects are built from.
type storedTask struct {
	Name        *string  `json:"name"`
	Priority    *string  `json:"priority"`
	Email       *string  `json:"email,omitempty"`
	Description *string  `json:"description"`
	Done        *string  `json:"done"`
	Tags        []string `json:"tags"`
	Reminder    *string  `json:"reminder,omitempty"`
}

func ptr(s string) *string { return &s }

func fromModel(t model.Task) storedTask {
	st := storedTask{
		Name:        ptr(t.Name().Value()),
		Priority:    ptr(t.Priority().Value()),
		Description: ptr(t.Description().Value()),
		Done:        ptr(t.Done().Value()),
		Tags:        t.Tags().Names(),
	}
	if e, ok := t.Email().Get(); ok {
		st.Email = ptr(e.Value())
	}
	if r, ok := t.Reminder().Get(); ok {
		st.Reminder = ptr(r.String())
	}
	return st
}

// toModel validates the stored fields. Failures wrap ErrDataFormat.
func (st storedTask) toModel() (model.Task, error) {
	if st.Name == nil {
		return model.Task{}, missingField("Name")
	}
	name, err := model.NewName(*st.Name)
	if err != nil {
		return model.Task{}, dataFormat(err)
	}
	if st.Priority == nil {
		return model.Task{}, missingField("Priority")
	}
	priority, err := model.NewPriority(*st.Priority)
	if err != nil {
		return model.Task{}, dataFormat(err)
	}
	if st.Description == nil {
		return model.Task{}, missingField("Description")
	}
	description, err := model.NewDescription(*st.Description)
	if err != nil {
		return model.Task{}, dataFormat(err)
	}
	done := model.DefaultDone()
	if st.Done != nil {
		if done, err = model.NewDone(*st.Done); err != nil {
			return model.Task{}, dataFormat(err)
		}
	}
	tags, err := model.ParseTagSet(st.Tags...)
	if err != nil {
		return model.Task{}, dataFormat(err)
	}

	var opts []model.TaskOption
	if st.Email != nil {
		e, err := model.NewEmail(*st.Email)
		if err != nil {
			return model.Task{}, dataFormat(err)
		}
		opts = append(opts, model.WithEmail(e))
	}
	if st.Reminder != nil {
		r, err := model.NewReminder(*st.Reminder)
		if err != nil {
			return model.Task{}, dataFormat(err)
		}
		opts = append(opts, model.WithReminder(r))
	}
	return model.NewTask(name, priority, description, done, tags, opts...), nil
}

func missingField(field string) error {
	return fmt.Errorf("%w: "+missingFieldFormat, ErrDataFormat, field)
}

func dataFormat(err error) error {
	return fmt.Errorf("%w: %w", ErrDataFormat, err)
}

// toModelList converts and checks that no two tasks share an identity.
func toModelList(stored []storedTask) ([]model.Task, error) {
	tasks := make([]model.Task, 0, len(stored))
	var list model.UniqueTaskList
	for _, st := range stored {
		t, err := st.toModel()
		if err != nil {
			return nil, err
		}
		if err := list.Add(t); err != nil {
			return nil, fmt.Errorf("%w: task list contains duplicate task(s)", ErrDataFormat)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func fromModelList(tasks []model.Task) []storedTask {
	out := make([]storedTask, len(tasks))
	for i, t := range tasks {
		out[i] = fromModel(t)
	}
	return out
}

// checkStatistics rejects counters that cannot come from real use.
func checkStatistics(stats model.Statistics) error {
	if stats.TasksAdded < 0 || stats.TasksCompleted < 0 || stats.TasksDeleted < 0 {
		return fmt.Errorf("%w: statistics counters must not be negative: %s", ErrDataFormat, stats)
	}
	return nil
}
