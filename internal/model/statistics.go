package model

import "fmt"

// Statistics counts what happened to the task list over its lifetime.
type Statistics struct {
	TasksAdded     int `json:"tasks_added"`
	TasksCompleted int `json:"tasks_completed"`
	TasksDeleted   int `json:"tasks_deleted"`
}

func (s Statistics) String() string {
	return fmt.Sprintf("Tasks added: %d, completed: %d, deleted: %d",
		s.TasksAdded, s.TasksCompleted, s.TasksDeleted)
}
