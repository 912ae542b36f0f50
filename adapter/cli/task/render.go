package task

import (
	"fmt"
	"io"
	"strings"

	"github.com/felixgeelhaar/tarefas/internal/productivity/application/queries"
)

const shortIDLen = 8

func shortID(dto queries.TaskDTO) string {
	return dto.ID.String()[:shortIDLen]
}

func checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

func priorityBadge(priority string) string {
	switch priority {
	case "high":
		return "(!)"
	case "medium":
		return "(~)"
	case "low":
		return "(.)"
	default:
		return ""
	}
}

func printList(w io.Writer, tasks []queries.TaskDTO, dateFormat string) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks yet. Add one with: add <title>")
		return
	}

	fmt.Fprintf(w, "Tasks (%d):\n", len(tasks))
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, t := range tasks {
		fmt.Fprintf(w, "%s %s %s %s\n", checkbox(t.Completed), shortID(t), t.Title, priorityBadge(t.Priority))
		if t.Description != "" {
			fmt.Fprintf(w, "    %s\n", t.Description)
		}
		fmt.Fprintf(w, "    created %s\n", t.CreatedAt.Local().Format(dateFormat))
	}
}

func printTask(w io.Writer, t queries.TaskDTO, dateFormat string) {
	status := "Pending"
	if t.Completed {
		status = "Completed"
	}
	fmt.Fprintf(w, "Task: %s\n", t.ID)
	fmt.Fprintf(w, "  Title:       %s\n", t.Title)
	fmt.Fprintf(w, "  Status:      %s\n", status)
	fmt.Fprintf(w, "  Priority:    %s\n", t.Priority)
	if t.Description != "" {
		fmt.Fprintf(w, "  Description: %s\n", t.Description)
	}
	fmt.Fprintf(w, "  Created:     %s\n", t.CreatedAt.Local().Format(dateFormat))
}
