package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/felixgeelhaar/tarefas/internal/productivity/application/queries"
	"github.com/felixgeelhaar/tarefas/internal/productivity/domain/value_objects"
)

const defaultDateFormat = "2006-01-02 15:04"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	doneStyle     = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	focusStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	priorityStyle = map[value_objects.Priority]lipgloss.Style{
		value_objects.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		value_objects.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		value_objects.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
)

const emptyMessage = "No tasks yet. Press a to add one."

func (m *Model) View() string {
	if m.mode == modeForm {
		return m.formView()
	}
	return m.listView()
}

func (m *Model) listView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Tasks (%d)", len(m.tasks))))
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(mutedStyle.Render(emptyMessage))
		b.WriteString("\n")
	}

	for i, t := range m.tasks {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
		}
		b.WriteString(pointer)
		b.WriteString(renderTask(t, m.dateFormat()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render("a add • e edit • d delete • space toggle • q quit"))
	return b.String()
}

func renderTask(t queries.TaskDTO, dateFormat string) string {
	box := "[ ]"
	title := t.Title
	if t.Completed {
		box = "[x]"
		title = doneStyle.Render(title)
	}

	priority, err := value_objects.ParsePriority(t.Priority)
	badge := t.Priority
	if err == nil {
		badge = priorityStyle[priority].Render(priority.String())
	}

	return fmt.Sprintf("%s %s %s %s", box, title, badge, mutedStyle.Render(t.CreatedAt.Local().Format(dateFormat)))
}

func (m *Model) formView() string {
	e := m.editor
	heading := "New task"
	if !e.isNew() {
		heading = "Edit task"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n\n")
	b.WriteString(renderField("Title", string(e.title), e.focus == fieldTitle))
	b.WriteString(renderField("Description", string(e.description), e.focus == fieldDescription))

	var options []string
	for _, p := range value_objects.Priorities() {
		label := p.String()
		if p == e.priority {
			label = priorityStyle[p].Bold(true).Render("<" + label + ">")
		}
		options = append(options, label)
	}
	b.WriteString(renderField("Priority", strings.Join(options, " "), e.focus == fieldPriority))

	if e.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(e.err))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("tab next field • ←/→ priority • enter save • esc cancel"))
	box := boxStyle
	if m.width > 4 {
		box = box.Width(m.width - 4)
	}
	return box.Render(b.String())
}

func renderField(label, value string, focused bool) string {
	name := fmt.Sprintf("%-12s", label+":")
	if focused {
		return focusStyle.Render(name) + " " + value + cursorStyle.Render("▏") + "\n"
	}
	return mutedStyle.Render(name) + " " + value + "\n"
}

func (m *Model) dateFormat() string {
	if m.app.Settings.DateFormat != "" {
		return m.app.Settings.DateFormat
	}
	return defaultDateFormat
}
