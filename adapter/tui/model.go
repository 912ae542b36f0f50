package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/felixgeelhaar/tarefas/adapter/cli"
	"github.com/felixgeelhaar/tarefas/adapter/form"
	"github.com/felixgeelhaar/tarefas/internal/productivity/application/commands"
	"github.com/felixgeelhaar/tarefas/internal/productivity/application/queries"
	"github.com/felixgeelhaar/tarefas/internal/productivity/domain/value_objects"
	"github.com/felixgeelhaar/tarefas/pkg/observability"
	"github.com/google/uuid"
)

type mode int

const (
	modeList mode = iota
	modeForm
)

type field int

const (
	fieldTitle field = iota
	fieldDescription
	fieldPriority
	fieldCount
)

// editor holds the add/edit form state. taskID is uuid.Nil when adding.
type editor struct {
	taskID      uuid.UUID
	title       []rune
	description []rune
	priority    value_objects.Priority
	completed   *bool
	focus       field
	err         string
}

func (e editor) isNew() bool {
	return e.taskID == uuid.Nil
}

func (e editor) input() form.Input {
	return form.Input{
		Title:       string(e.title),
		Description: string(e.description),
		Priority:    e.priority.String(),
		Completed:   e.completed,
	}
}

// Model is the bubbletea model of the task list.
type Model struct {
	ctx    context.Context
	app    *cli.App
	tasks  []queries.TaskDTO
	cursor int
	mode   mode
	editor editor
	status string
	width  int
}

// NewModel creates a model showing the current list of app.
func NewModel(ctx context.Context, app *cli.App) *Model {
	m := &Model{ctx: ctx, app: app}
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode == modeForm {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case "a":
		m.openForm(editor{priority: m.app.Settings.DefaultPriority})
	case "e", "enter":
		if t, ok := m.selected(); ok {
			m.openEditor(t.ID)
		}
	case "d":
		if t, ok := m.selected(); ok {
			m.delete(t.ID)
		}
	case " ", "x":
		if t, ok := m.selected(); ok {
			m.toggle(t.ID)
		}
	}
	return m, nil
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := &m.editor
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.status = ""
		return m, nil
	case "enter":
		m.submit()
		return m, nil
	case "tab", "down":
		e.focus = (e.focus + 1) % fieldCount
		return m, nil
	case "shift+tab", "up":
		e.focus = (e.focus + fieldCount - 1) % fieldCount
		return m, nil
	}

	if e.focus == fieldPriority {
		switch msg.String() {
		case "left", "h":
			e.priority = e.priority.Prev()
		case "right", "l":
			e.priority = e.priority.Next()
		}
		return m, nil
	}

	target := &e.title
	if e.focus == fieldDescription {
		target = &e.description
	}
	switch msg.Type {
	case tea.KeyRunes:
		*target = append(*target, msg.Runes...)
	case tea.KeySpace:
		*target = append(*target, ' ')
	case tea.KeyBackspace:
		if n := len(*target); n > 0 {
			*target = (*target)[:n-1]
		}
	}
	return m, nil
}

func (m *Model) openForm(e editor) {
	if !e.priority.IsValid() {
		e.priority = value_objects.DefaultPriority
	}
	m.editor = e
	m.mode = modeForm
	m.status = ""
}

func (m *Model) openEditor(id uuid.UUID) {
	t, err := m.app.GetTaskHandler.Handle(m.ctx, queries.GetTaskQuery{TaskID: id})
	if err != nil {
		m.status = err.Error()
		m.refresh()
		return
	}
	in := form.FromTaskDTO(*t)
	priority, err := value_objects.ParsePriority(in.Priority)
	if err != nil {
		priority = value_objects.DefaultPriority
	}
	m.openForm(editor{
		taskID:      t.ID,
		title:       []rune(in.Title),
		description: []rune(in.Description),
		priority:    priority,
		completed:   in.Completed,
	})
}

func (m *Model) submit() {
	e := &m.editor
	data, err := e.input().ToData(m.app.Settings.DefaultPriority)
	if err != nil {
		var ve *form.ValidationError
		if errors.As(err, &ve) {
			e.err = ve.Error()
			switch ve.Field {
			case "title":
				e.focus = fieldTitle
			case "priority":
				e.focus = fieldPriority
			}
			return
		}
		m.fail(err)
		return
	}

	if e.isNew() {
		completed := data.Completed != nil && *data.Completed
		result, err := m.app.CreateTaskHandler.Handle(m.ctx, commands.CreateTaskCommand{
			Title:       data.Title,
			Description: data.Description,
			Priority:    data.Priority,
			Completed:   completed,
		})
		if err != nil {
			m.fail(err)
			return
		}
		m.cursor = 0
		m.status = fmt.Sprintf("Added %q", result.Task.Title())
	} else {
		result, err := m.app.UpdateTaskHandler.Handle(m.ctx, commands.UpdateTaskCommand{
			TaskID:      e.taskID,
			Title:       data.Title,
			Description: data.Description,
			Priority:    data.Priority,
			Completed:   data.Completed,
		})
		if err != nil {
			m.fail(err)
			return
		}
		if result.Found {
			m.status = fmt.Sprintf("Updated %q", result.Task.Title())
		} else {
			m.status = queries.ErrTaskNotFound.Error()
		}
	}

	m.mode = modeList
	m.refresh()
}

func (m *Model) delete(id uuid.UUID) {
	result, err := m.app.DeleteTaskHandler.Handle(m.ctx, commands.DeleteTaskCommand{TaskID: id})
	if err != nil {
		m.fail(err)
		return
	}
	if result.Found {
		m.status = fmt.Sprintf("Deleted %q", result.Task.Title())
	} else {
		m.status = queries.ErrTaskNotFound.Error()
	}
	m.refresh()
}

func (m *Model) toggle(id uuid.UUID) {
	result, err := m.app.ToggleTaskHandler.Handle(m.ctx, commands.ToggleTaskCommand{TaskID: id})
	if err != nil {
		m.fail(err)
		return
	}
	if !result.Found {
		m.status = queries.ErrTaskNotFound.Error()
	} else {
		m.status = ""
	}
	m.refresh()
}

func (m *Model) refresh() {
	tasks, err := m.app.ListTasksHandler.Handle(m.ctx, queries.ListTasksQuery{})
	if err != nil {
		m.fail(err)
		return
	}
	m.tasks = tasks
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) selected() (queries.TaskDTO, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return queries.TaskDTO{}, false
	}
	return m.tasks[m.cursor], true
}

// fail records an unexpected error. Store failures are shown in the status
// line and logged; the session stays open.
func (m *Model) fail(err error) {
	m.status = "error: " + err.Error()
	if m.app.Logger != nil {
		m.app.Logger.ErrorContext(m.ctx, "tui operation failed", observability.ErrorKey, err)
	}
}
