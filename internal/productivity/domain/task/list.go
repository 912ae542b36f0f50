package task

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrDuplicateID = errors.New("task id already exists")
)

// List is an immutable, ordered snapshot of tasks, most recently added first.
//
// The zero value is an empty list. No method modifies the receiver: every
// operation returns a new List backed by its own slice, so a snapshot handed
// out earlier never changes under its holder.
type List struct {
	tasks []Task
}

// NewList builds a snapshot from tasks in the given order.
func NewList(tasks ...Task) (List, error) {
	seen := make(map[uuid.UUID]struct{}, len(tasks))
	for _, t := range tasks {
		if _, ok := seen[t.ID()]; ok {
			return List{}, ErrDuplicateID
		}
		seen[t.ID()] = struct{}{}
	}
	return List{tasks: clone(tasks)}, nil
}

// Len returns the number of tasks.
func (l List) Len() int { return len(l.tasks) }

// At returns the task at position i. It panics if i is out of range.
func (l List) At(i int) Task { return l.tasks[i] }

// Tasks returns a copy of the tasks in order.
func (l List) Tasks() []Task { return clone(l.tasks) }

// Contains reports whether a task with the given ID exists.
func (l List) Contains(id uuid.UUID) bool {
	return l.indexOf(id) >= 0
}

// Find returns the task with the given ID.
func (l List) Find(id uuid.UUID) (Task, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return Task{}, false
	}
	return l.tasks[i], true
}

// Add returns a new list with t prepended.
func (l List) Add(t Task) (List, error) {
	if l.Contains(t.ID()) {
		return l, ErrDuplicateID
	}
	tasks := make([]Task, 0, len(l.tasks)+1)
	tasks = append(tasks, t)
	tasks = append(tasks, l.tasks...)
	return List{tasks: tasks}, nil
}

// Update returns a new list where the task matching id carries data.
// ID, CreatedAt and position are kept. If no task matches, the receiver is
// returned unchanged together with false.
func (l List) Update(id uuid.UUID, data Data) (List, bool) {
	return l.replace(id, func(t Task) Task { return t.WithData(data) })
}

// ToggleComplete returns a new list where the task matching id has its
// completion flag flipped. If no task matches, the receiver is returned
// unchanged together with false.
func (l List) ToggleComplete(id uuid.UUID) (List, bool) {
	return l.replace(id, Task.Toggled)
}

// Delete returns a new list without the task matching id, keeping the
// relative order of the others. If no task matches, the receiver is returned
// unchanged together with false.
func (l List) Delete(id uuid.UUID) (List, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return l, false
	}
	tasks := make([]Task, 0, len(l.tasks)-1)
	tasks = append(tasks, l.tasks[:i]...)
	tasks = append(tasks, l.tasks[i+1:]...)
	return List{tasks: tasks}, true
}

func (l List) replace(id uuid.UUID, fn func(Task) Task) (List, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return l, false
	}
	tasks := clone(l.tasks)
	tasks[i] = fn(tasks[i])
	return List{tasks: tasks}, true
}

func (l List) indexOf(id uuid.UUID) int {
	for i, t := range l.tasks {
		if t.ID() == id {
			return i
		}
	}
	return -1
}

func clone(tasks []Task) []Task {
	if len(tasks) == 0 {
		return nil
	}
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}
