package model

// Model is what commands need from the task list.
type Model interface {
	HasTask(t Task) bool
	AddTask(t Task) error
	SetTask(target, edited Task) error
	DeleteTask(t Task) error
	SetTasks(tasks []Task) error
	FilteredTaskList() []Task
	UpdateFilteredTaskList(p Predicate)
	Statistics() Statistics
}

type EventKind string

const (
	EventAdded    EventKind = "added"
	EventReplaced EventKind = "replaced"
	EventDeleted  EventKind = "deleted"
	EventReset    EventKind = "reset"
	EventFiltered EventKind = "filtered"
)

// Event describes a change; Task is the task affected, if any.
type Event struct {
	Kind EventKind
	Task Task
}

// Manager owns the task list, the active filter and the statistics. It is not
// safe for concurrent use; callers serialize access.
type Manager struct {
	tasks     UniqueTaskList
	predicate Predicate
	stats     Statistics
	listeners []func(Event)
}

func NewManager() *Manager {
	return &Manager{predicate: ShowAll}
}

// Load replaces the list and statistics without notifying listeners or
// touching counters.
func (m *Manager) Load(tasks []Task, stats Statistics) error {
	if err := m.tasks.SetAll(tasks); err != nil {
		return err
	}
	m.stats = stats
	m.predicate = ShowAll
	return nil
}

// Subscribe registers fn to be called after every change, on the caller's goroutine.
func (m *Manager) Subscribe(fn func(Event)) {
	m.listeners = append(m.listeners, fn)
}

func (m *Manager) notify(e Event) {
	for _, fn := range m.listeners {
		fn(e)
	}
}

func (m *Manager) HasTask(t Task) bool {
	return m.tasks.Contains(t)
}

func (m *Manager) AddTask(t Task) error {
	if err := m.tasks.Add(t); err != nil {
		return err
	}
	m.stats.TasksAdded++
	m.predicate = ShowAll
	m.notify(Event{Kind: EventAdded, Task: t})
	return nil
}

func (m *Manager) SetTask(target, edited Task) error {
	if err := m.tasks.Set(target, edited); err != nil {
		return err
	}
	if !target.Done().IsDone() && edited.Done().IsDone() {
		m.stats.TasksCompleted++
	}
	m.notify(Event{Kind: EventReplaced, Task: edited})
	return nil
}

func (m *Manager) DeleteTask(t Task) error {
	if err := m.tasks.Remove(t); err != nil {
		return err
	}
	m.stats.TasksDeleted++
	m.notify(Event{Kind: EventDeleted, Task: t})
	return nil
}

func (m *Manager) SetTasks(tasks []Task) error {
	if err := m.tasks.SetAll(tasks); err != nil {
		return err
	}
	m.notify(Event{Kind: EventReset})
	return nil
}

// Tasks returns the whole list in order.
func (m *Manager) Tasks() []Task {
	return m.tasks.Slice()
}

// FilteredTaskList applies the current predicate to the list as it is now.
func (m *Manager) FilteredTaskList() []Task {
	out := make([]Task, 0, m.tasks.Len())
	for _, t := range m.tasks.tasks {
		if m.predicate.Test(t) {
			out = append(out, t)
		}
	}
	return out
}

func (m *Manager) UpdateFilteredTaskList(p Predicate) {
	if p == nil {
		p = ShowAll
	}
	m.predicate = p
	m.notify(Event{Kind: EventFiltered})
}

func (m *Manager) Predicate() Predicate {
	return m.predicate
}

func (m *Manager) Statistics() Statistics {
	return m.stats
}
