package tasks

import (
	"fmt"
	"strings"
)

// EmptyMessage is what Render returns for an empty list
const EmptyMessage = "Your task list is empty."

const rule = "------------------------------------------------------------"

// Render returns the printable listing of all tasks
func (s *Store) Render() string {
	return RenderTasks(s.tasks)
}

// RenderTasks formats tasks the way Render does
func RenderTasks(tasks []Task) string {
	if len(tasks) == 0 {
		return EmptyMessage
	}

	lines := make([]string, 0, len(tasks)*2+4)
	lines = append(lines, "\n"+rule, "TASK MANAGER - ALL TASKS", rule)
	for _, t := range tasks {
		lines = append(lines,
			fmt.Sprintf("%d. [%s] %s", t.ID, t.Marker(), t.Description),
			fmt.Sprintf("   Added on: %s", t.CreatedAt),
		)
	}
	lines = append(lines, rule+"\n")

	return strings.Join(lines, "\n")
}
