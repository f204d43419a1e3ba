package model

// UniqueTaskList keeps tasks in insertion order and rejects two tasks where
// IsSameTask holds.
type UniqueTaskList struct {
	tasks []Task
}

func (l *UniqueTaskList) Contains(t Task) bool {
	return l.indexOf(t, -1) >= 0
}

func (l *UniqueTaskList) Add(t Task) error {
	if l.Contains(t) {
		return ErrDuplicateTask
	}
	l.tasks = append(l.tasks, t)
	return nil
}

// Set replaces target in place. edited may share identity with target but not
// with any other task.
func (l *UniqueTaskList) Set(target, edited Task) error {
	i := l.position(target)
	if i < 0 {
		return ErrTaskNotFound
	}
	if l.indexOf(edited, i) >= 0 {
		return ErrDuplicateTask
	}
	l.tasks[i] = edited
	return nil
}

func (l *UniqueTaskList) Remove(t Task) error {
	i := l.position(t)
	if i < 0 {
		return ErrTaskNotFound
	}
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return nil
}

// SetAll replaces the contents, failing without change if tasks contain duplicates.
func (l *UniqueTaskList) SetAll(tasks []Task) error {
	for i := range tasks {
		for j := i + 1; j < len(tasks); j++ {
			if tasks[i].IsSameTask(tasks[j]) {
				return ErrDuplicateTask
			}
		}
	}
	l.tasks = append([]Task(nil), tasks...)
	return nil
}

func (l *UniqueTaskList) Len() int { return len(l.tasks) }

// Slice returns a copy of the tasks in order.
func (l *UniqueTaskList) Slice() []Task {
	return append([]Task(nil), l.tasks...)
}

// position finds the exact task (full equality).
func (l *UniqueTaskList) position(t Task) int {
	for i := range l.tasks {
		if l.tasks[i].Equals(t) {
			return i
		}
	}
	return -1
}

// indexOf finds a task with the same identity, skipping position skip.
func (l *UniqueTaskList) indexOf(t Task, skip int) int {
	for i := range l.tasks {
		if i != skip && l.tasks[i].IsSameTask(t) {
			return i
		}
	}
	return -1
}
